package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/tripline/tripline-backend/types"
)

// Memory is an in-process Cache with TTL expiry and a bounded entry count.
// When the bound is exceeded the least-recently-used entry is evicted, so
// distinct searches cannot grow the map without limit.
type Memory struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]*list.Element
	order      *list.List // front = most recently used

	// now is swappable for TTL tests.
	now func() time.Time
}

type memoryEntry struct {
	key        string
	result     *types.LockerSearchResult
	capturedAt time.Time
}

// NewMemory creates a memory cache. maxEntries <= 0 disables the size
// bound, leaving TTL as the only limit.
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	return &Memory{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

func (m *Memory) Lookup(_ context.Context, key string) (*types.LockerSearchResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*memoryEntry)
	if m.now().Sub(entry.capturedAt) >= m.ttl {
		// Stale entries stay resident until overwritten or evicted; they
		// just never hit.
		return nil, false
	}

	m.order.MoveToFront(elem)
	return entry.result, true
}

func (m *Memory) Store(_ context.Context, key string, result *types.LockerSearchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.result = result
		entry.capturedAt = m.now()
		m.order.MoveToFront(elem)
		return
	}

	elem := m.order.PushFront(&memoryEntry{
		key:        key,
		result:     result,
		capturedAt: m.now(),
	})
	m.entries[key] = elem

	if m.maxEntries > 0 && m.order.Len() > m.maxEntries {
		oldest := m.order.Back()
		if oldest != nil {
			m.order.Remove(oldest)
			delete(m.entries, oldest.Value.(*memoryEntry).key)
		}
	}
}

// Len reports the number of resident entries, stale ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
