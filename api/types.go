// Package api - API types for the quote calculator
// These types define the contract between the calculator UI, the
// contact-intake flow, and the engine.
package api

import (
	"github.com/shopspring/decimal"

	"quotecalc/core/types"
)

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	Selection types.Selection `json:"selection"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	// RequestID identifies this request in logs
	RequestID string `json:"request_id"`

	// Enterprise marks a quote-on-request outcome
	Enterprise bool `json:"enterprise"`

	// Quote carries the numeric quote for non-enterprise tiers
	Quote *types.Quote `json:"quote,omitempty"`

	// DurationMs is the server-side processing time
	DurationMs int64 `json:"duration_ms"`
}

// OptionsResponse exposes the closed enumerations for the UI to render
// as selectable controls
type OptionsResponse struct {
	Currency   types.Currency `json:"currency"`
	Categories []Option       `json:"categories"`
	Tiers      []TierOption   `json:"tiers"`
	Scales     []Option       `json:"scales"`
	Speeds     []Option       `json:"speeds"`
	AddOns     []AddOnOption  `json:"add_ons"`
}

// Option is one selectable enumeration member
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// TierOption is a tier with its feature manifest
type TierOption struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Priced   bool     `json:"priced"`
	Features []string `json:"features"`
}

// AddOnOption is a catalog add-on with its cost model
type AddOnOption struct {
	Key               string          `json:"key"`
	Label             string          `json:"label"`
	Cost              decimal.Decimal `json:"cost"`
	PerUnit           bool            `json:"per_unit"`
	FirstUnitIncluded bool            `json:"first_unit_included,omitempty"`
}

// HandoffRequest is the input to POST /handoff
type HandoffRequest struct {
	// Message is the summary text to pre-fill in the contact form
	Message string `json:"message"`

	// Locale is the UI locale tag
	Locale string `json:"locale"`
}

// HandoffResponse is the output of POST /handoff. The write is
// fire-and-forget, so accepted is always true once the request parses.
type HandoffResponse struct {
	Accepted bool `json:"accepted"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}
