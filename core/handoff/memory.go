// Package handoff - In-memory mailbox
package handoff

import (
	"context"
	"sync"
	"time"
)

// MemoryMailbox is the default single-process mailbox backend
type MemoryMailbox struct {
	mu   sync.Mutex
	slot *Payload
	ttl  time.Duration

	// now is swappable for staleness tests
	now func() time.Time
}

// NewMemoryMailbox creates a memory mailbox with the given TTL.
// A zero TTL disables the staleness check.
func NewMemoryMailbox(ttl time.Duration) *MemoryMailbox {
	return &MemoryMailbox{ttl: ttl, now: time.Now}
}

// Put stores the payload, overwriting any pending one
func (m *MemoryMailbox) Put(_ context.Context, p Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slot = &p
	return nil
}

// Take returns the pending payload and clears the slot. Stale payloads
// are discarded and reported as absent.
func (m *MemoryMailbox) Take(_ context.Context) (Payload, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slot == nil {
		return Payload{}, false, nil
	}
	p := *m.slot
	m.slot = nil

	if m.ttl > 0 && m.now().Sub(p.CreatedAt) > m.ttl {
		return Payload{}, false, nil
	}
	return p, true, nil
}
