package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline-backend/types"
)

func resultPage(name string) *types.LockerSearchResult {
	return &types.LockerSearchResult{
		Results: []types.Locker{{Name: name}},
		Pagination: types.Pagination{
			CurrentPage: 1, TotalPages: 1, TotalItems: 1, PerPage: 5,
		},
	}
}

func TestMemory_LookupAfterStore(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, 0)

	_, ok := c.Lookup(ctx, "k1")
	assert.False(t, ok, "never-stored key misses")

	c.Store(ctx, "k1", resultPage("Shinjuku Locker"))

	got, ok := c.Lookup(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "Shinjuku Locker", got.Results[0].Name)
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, 0)

	clock := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	c.Store(ctx, "k1", resultPage("a"))

	// Just inside the TTL.
	clock = clock.Add(time.Hour - time.Second)
	_, ok := c.Lookup(ctx, "k1")
	assert.True(t, ok)

	// At the TTL boundary the entry stops hitting but stays resident.
	clock = clock.Add(time.Second)
	_, ok = c.Lookup(ctx, "k1")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "stale entry remains in memory")

	// Re-storing refreshes the capture timestamp.
	c.Store(ctx, "k1", resultPage("b"))
	got, ok := c.Lookup(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "b", got.Results[0].Name)
}

func TestMemory_StoreOverwrites(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, 0)

	c.Store(ctx, "k1", resultPage("old"))
	c.Store(ctx, "k1", resultPage("new"))

	got, ok := c.Lookup(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "new", got.Results[0].Name)
	assert.Equal(t, 1, c.Len())
}

func TestMemory_LRUEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, 3)

	for i := 1; i <= 3; i++ {
		c.Store(ctx, fmt.Sprintf("k%d", i), resultPage("x"))
	}

	// Touch k1 so k2 becomes the eviction candidate.
	_, ok := c.Lookup(ctx, "k1")
	require.True(t, ok)

	c.Store(ctx, "k4", resultPage("x"))
	assert.Equal(t, 3, c.Len())

	_, ok = c.Lookup(ctx, "k2")
	assert.False(t, ok, "least-recently-used entry was evicted")
	_, ok = c.Lookup(ctx, "k1")
	assert.True(t, ok)
	_, ok = c.Lookup(ctx, "k4")
	assert.True(t, ok)
}

func TestMemory_UnboundedWhenNoLimit(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, 0)

	for i := 0; i < 100; i++ {
		c.Store(ctx, fmt.Sprintf("k%d", i), resultPage("x"))
	}
	assert.Equal(t, 100, c.Len())
}
