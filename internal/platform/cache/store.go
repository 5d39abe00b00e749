// Package cache holds an in-process TTL store used by the read-through
// repository decorators.
package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item struct {
	value   any
	expires time.Time // zero means no expiry
}

// Store is a TTL map. Concurrent misses on one key share a single load, and a
// load that overlaps an invalidation is returned to its callers but not kept.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]item
	epoch uint64

	group singleflight.Group
}

// NewStore returns a store whose entries expire after ttl. A ttl of zero keeps
// entries until they are deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, items: map[string]item{}}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(key)
}

func (s *Store) Set(_ context.Context, key string, value any) {
	s.mu.Lock()
	s.storeLocked(key, value)
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, keys ...string) {
	s.invalidate(func(key string) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	})
	for _, k := range keys {
		s.group.Forget(k)
	}
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}
	for _, k := range s.invalidate(func(key string) bool { return strings.HasPrefix(key, prefix) }) {
		s.group.Forget(k)
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// GetOrLoad returns the cached value for key, calling load on a miss. Errors
// are never cached. An empty key bypasses the cache.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if load == nil {
		return nil, errors.New("cache: load func is required")
	}
	if key == "" {
		return load(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		s.mu.Lock()
		if v, ok := s.lookupLocked(key); ok {
			s.mu.Unlock()
			return v, nil
		}
		epoch := s.epoch
		s.mu.Unlock()

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.epoch == epoch {
			s.storeLocked(key, v)
		}
		s.mu.Unlock()
		return v, nil
	})
	return v, err
}

func (s *Store) lookupLocked(key string) (any, bool) {
	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if !it.expires.IsZero() && !s.now().Before(it.expires) {
		delete(s.items, key)
		return nil, false
	}
	return it.value, true
}

func (s *Store) storeLocked(key string, value any) {
	if key == "" {
		return
	}
	it := item{value: value}
	if s.ttl > 0 {
		it.expires = s.now().Add(s.ttl)
	}
	s.items[key] = it
}

// invalidate drops matching keys and bumps the epoch so in-flight loads
// started earlier are not stored.
func (s *Store) invalidate(match func(string) bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	var removed []string
	for key := range s.items {
		if match(key) {
			delete(s.items, key)
			removed = append(removed, key)
		}
	}
	return removed
}
