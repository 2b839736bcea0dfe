// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quotecalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Pricing contains price book settings
	Pricing PricingConfig `json:"pricing"`

	// Handoff contains handoff mailbox settings
	Handoff HandoffConfig `json:"handoff"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// PricingConfig contains price book settings
type PricingConfig struct {
	// Currency is the quote currency code
	Currency string `json:"currency"`

	// RulesFile is an optional HCL price book override file
	RulesFile string `json:"rules_file,omitempty"`
}

// HandoffConfig contains handoff mailbox settings
type HandoffConfig struct {
	// Backend is the mailbox backend (memory, redis)
	Backend string `json:"backend"`

	// RedisAddr is the Redis address for the redis backend
	RedisAddr string `json:"redis_addr,omitempty"`

	// Key is the mailbox slot key for the redis backend
	Key string `json:"key"`

	// TTLSeconds is how long an unread payload stays consumable
	TTLSeconds int `json:"ttl_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Pricing: PricingConfig{
			Currency: "USD",
		},
		Handoff: HandoffConfig{
			Backend:    "memory",
			RedisAddr:  "localhost:6379",
			Key:        "quotecalc:handoff",
			TTLSeconds: 1800, // 30 minutes
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
