package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	data      []byte
	tag       string
	gen       int64
	expiresAt time.Time
}

// MemoryStore is an in-process Store bounded to a fixed number of entries.
// Entries older than the store TTL are reclaimed in the background whether
// or not they are read again. Values are kept encoded so callers never
// share mutable state with the cache.
type MemoryStore struct {
	entries *expirable.LRU[string, memoryEntry]

	mu   sync.Mutex
	gens map[string]int64
	tags map[string]map[string]struct{}
	now  func() time.Time
}

// NewMemoryStore holds at most size entries, none for longer than ttl.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	m := &MemoryStore{
		gens: make(map[string]int64),
		tags: make(map[string]map[string]struct{}),
		now:  time.Now,
	}
	// the eviction callback runs under the LRU lock, so m.mu is never held
	// while calling into m.entries
	m.entries = expirable.NewLRU[string, memoryEntry](size, m.unindex, ttl)
	return m
}

func (m *MemoryStore) Generation(_ context.Context, tag string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gens[tag], nil
}

func (m *MemoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return false, nil
	}

	m.mu.Lock()
	current := m.gens[entry.tag]
	m.mu.Unlock()

	expired := !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt)
	if expired || entry.gen != current {
		m.entries.Remove(key)
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value under key unless tag was invalidated after gen was read.
// A ttl shorter than the store TTL expires the entry earlier.
func (m *MemoryStore) Set(_ context.Context, key, tag string, gen int64, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	if m.gens[tag] != gen {
		m.mu.Unlock()
		return nil
	}
	if m.tags[tag] == nil {
		m.tags[tag] = make(map[string]struct{})
	}
	m.tags[tag][key] = struct{}{}
	m.mu.Unlock()

	m.entries.Add(key, memoryEntry{data: data, tag: tag, gen: gen, expiresAt: expiresAt})
	return nil
}

func (m *MemoryStore) Invalidate(_ context.Context, tags ...string) error {
	var keys []string
	m.mu.Lock()
	for _, tag := range tags {
		m.gens[tag]++
		for key := range m.tags[tag] {
			keys = append(keys, key)
		}
	}
	m.mu.Unlock()

	for _, key := range keys {
		m.entries.Remove(key)
	}
	return nil
}

// Len returns the number of entries not yet reclaimed.
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}

func (m *MemoryStore) unindex(key string, entry memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if keys := m.tags[entry.tag]; keys != nil {
		delete(keys, key)
		if len(keys) == 0 {
			delete(m.tags, entry.tag)
		}
	}
}
