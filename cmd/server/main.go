// Package main - Entry point for the quote calculator server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	redishandoff "quotecalc/adapters/handoff"
	"quotecalc/api"
	"quotecalc/core/engine"
	"quotecalc/core/handoff"
	"quotecalc/core/rules"
	"quotecalc/internal/config"
	"quotecalc/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "server address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	// Price book defects are fatal here, before any request is served.
	table := rules.Default()
	if cfg.Pricing.RulesFile != "" {
		loaded, err := rules.Load(cfg.Pricing.RulesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading price book: %v\n", err)
			os.Exit(1)
		}
		table = loaded
	}
	eng, err := engine.New(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error validating price book: %v\n", err)
		os.Exit(1)
	}

	ttl := time.Duration(cfg.Handoff.TTLSeconds) * time.Second
	var mailbox handoff.Mailbox
	switch cfg.Handoff.Backend {
	case "redis":
		mailbox = redishandoff.NewRedisMailbox(cfg.Handoff.RedisAddr, cfg.Handoff.Key, ttl)
	default:
		mailbox = handoff.NewMemoryMailbox(ttl)
	}

	server := api.NewServer(eng, mailbox, version)

	fmt.Printf("Quote calculator server v%s\n", version)
	fmt.Printf("  API: http://localhost%s\n", cfg.Server.Addr)
	fmt.Printf("  Handoff backend: %s\n", cfg.Handoff.Backend)

	if err := http.ListenAndServe(cfg.Server.Addr, server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
