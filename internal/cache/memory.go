package cache

import (
	"context"
	"sync"
	"time"
)

// memory is a bounded in-process cache. Entries expire after the TTL and
// the oldest entries are evicted once the bound is reached.
type memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	order   []string
	max     int
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func newMemory(maxEntries, ttlSecs int) *memory {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &memory{
		entries: make(map[string]memoryEntry),
		max:     maxEntries,
		ttl:     time.Duration(ttlSecs) * time.Second,
		now:     time.Now,
	}
}

func (m *memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *memory) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists {
		m.evictLocked()
		m.order = append(m.order, key)
	}

	var expires time.Time
	if m.ttl > 0 {
		expires = m.now().Add(m.ttl)
	}
	m.entries[key] = memoryEntry{value: value, expires: expires}
}

func (m *memory) Close() error { return nil }

// evictLocked makes room for one new entry: expired entries go first, then
// the oldest insertions.
func (m *memory) evictLocked() {
	if len(m.entries) < m.max {
		return
	}

	now := m.now()
	kept := m.order[:0]
	for _, key := range m.order {
		e, ok := m.entries[key]
		if !ok {
			continue
		}
		if !e.expires.IsZero() && now.After(e.expires) {
			delete(m.entries, key)
			continue
		}
		kept = append(kept, key)
	}
	m.order = kept

	for len(m.entries) >= m.max && len(m.order) > 0 {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
}
