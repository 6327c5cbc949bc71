// Package cache holds the search-result cache behind a narrow interface.
// Keys are search-parameter fingerprints; values are parsed result pages.
// Entries are pure read-through and expire by TTL; they are never
// invalidated by writes elsewhere in the system.
package cache

import (
	"context"

	"github.com/tripline/tripline-backend/types"
)

// Cache is the lookup/store surface the locker search depends on.
type Cache interface {
	// Lookup returns the cached page for key, or false when the key was
	// never stored or its entry has outlived the TTL.
	Lookup(ctx context.Context, key string) (*types.LockerSearchResult, bool)
	// Store unconditionally overwrites any entry for key with result and
	// a fresh capture timestamp. Concurrent writers to the same key race
	// harmlessly; last write wins.
	Store(ctx context.Context, key string, result *types.LockerSearchResult)
}
