// Package handoff - Cross-flow handoff mailbox
// The calculator and the contact-intake flow share a single-slot,
// best-effort mailbox: Put overwrites any pending payload (last writer
// wins), Take reads at most once and clears the slot. Delivery is never
// guaranteed; a failed write must not affect the displayed quote.
package handoff

import (
	"context"
	"time"
)

// SourceCalculator is the fixed payload source tag
const SourceCalculator = "calculator"

// DefaultTTL bounds how long an unread payload stays consumable.
// Stale payloads are dropped on Take so an old calculator session never
// leaks into an unrelated later visit.
const DefaultTTL = 30 * time.Minute

// Payload is the transient handoff value
type Payload struct {
	// Message is the quote summary text to pre-fill
	Message string `json:"message"`

	// Source identifies the writing flow
	Source string `json:"source"`

	// Locale is the UI locale tag at write time
	Locale string `json:"locale"`

	// CreatedAt timestamps the write for staleness checks on read
	CreatedAt time.Time `json:"created_at"`
}

// NewPayload builds a calculator payload stamped with the current time
func NewPayload(message, locale string) Payload {
	return Payload{
		Message:   message,
		Source:    SourceCalculator,
		Locale:    locale,
		CreatedAt: time.Now().UTC(),
	}
}

// Mailbox is a single-slot, at-most-once handoff channel
type Mailbox interface {
	// Put stores a payload, overwriting any pending one. Fire-and-forget:
	// callers tolerate errors and never retry.
	Put(ctx context.Context, p Payload) error

	// Take returns the pending payload and clears the slot. The second
	// return is false when the slot is empty or the payload went stale.
	Take(ctx context.Context) (Payload, bool, error)
}
