// Package handoff - Mailbox contract tests
package handoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryMailboxTakeOnce(t *testing.T) {
	ctx := context.Background()
	box := NewMemoryMailbox(DefaultTTL)

	require.NoError(t, box.Put(ctx, NewPayload("summary text", "en")))

	payload, ok, err := box.Take(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "summary text", payload.Message)
	require.Equal(t, SourceCalculator, payload.Source)
	require.Equal(t, "en", payload.Locale)
	require.False(t, payload.CreatedAt.IsZero())

	// The slot is cleared after one read.
	_, ok, err = box.Take(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryMailboxEmptyTake(t *testing.T) {
	box := NewMemoryMailbox(DefaultTTL)

	_, ok, err := box.Take(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryMailboxOverwrite(t *testing.T) {
	ctx := context.Background()
	box := NewMemoryMailbox(DefaultTTL)

	require.NoError(t, box.Put(ctx, NewPayload("first", "en")))
	require.NoError(t, box.Put(ctx, NewPayload("second", "de")))

	payload, ok, err := box.Take(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", payload.Message)
	require.Equal(t, "de", payload.Locale)
}

func TestMemoryMailboxDropsStalePayload(t *testing.T) {
	ctx := context.Background()
	box := NewMemoryMailbox(30 * time.Minute)

	require.NoError(t, box.Put(ctx, NewPayload("stale", "en")))

	box.now = func() time.Time {
		return time.Now().Add(31 * time.Minute)
	}

	_, ok, err := box.Take(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// The stale payload was cleared, not left behind.
	box.now = time.Now
	_, ok, err = box.Take(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryMailboxZeroTTLDisablesStaleness(t *testing.T) {
	ctx := context.Background()
	box := NewMemoryMailbox(0)

	require.NoError(t, box.Put(ctx, NewPayload("kept", "en")))

	box.now = func() time.Time {
		return time.Now().Add(24 * time.Hour)
	}

	payload, ok, err := box.Take(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "kept", payload.Message)
}
