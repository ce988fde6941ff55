package services

import (
	"context"
	"sync"
	"time"
)

type dedupEntry struct {
	value   string
	expires time.Time
}

// MemoryDeduplicator is the single-process Deduplicator used when Redis is not configured.
type MemoryDeduplicator struct {
	mu      sync.Mutex
	entries map[string]dedupEntry
	now     func() time.Time
}

func NewMemoryDeduplicator() *MemoryDeduplicator {
	return &MemoryDeduplicator{
		entries: make(map[string]dedupEntry),
		now:     time.Now,
	}
}

func (d *MemoryDeduplicator) Claim(_ context.Context, key, value string, ttl time.Duration) (bool, string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if e, ok := d.entries[key]; ok && now.Before(e.expires) {
		return false, e.value, nil
	}
	d.entries[key] = dedupEntry{value: value, expires: now.Add(ttl)}

	if len(d.entries) > 1024 {
		for k, e := range d.entries {
			if !now.Before(e.expires) {
				delete(d.entries, k)
			}
		}
	}
	return true, "", nil
}

func (d *MemoryDeduplicator) Set(_ context.Context, key, value string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = dedupEntry{value: value, expires: d.now().Add(ttl)}
	return nil
}
