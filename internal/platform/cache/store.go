package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// Store is an in-process TTL cache keyed by string. A ttl <= 0 never expires.
type Store struct {
	ttl      time.Duration
	clock    clockwork.Clock
	onLookup func(hit bool)

	mu      sync.Mutex
	entries map[string]cached
	flight  singleflight.Group
}

type cached struct {
	value   any
	expires time.Time
}

type Option func(*Store)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLookupObserver is told whether each Load was served from memory.
func WithLookupObserver(fn func(hit bool)) Option {
	return func(s *Store) {
		if fn != nil {
			s.onLookup = fn
		}
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:      ttl,
		clock:    clockwork.NewRealClock(),
		onLookup: func(bool) {},
		entries:  make(map[string]cached),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !c.expires.IsZero() && !s.clock.Now().Before(c.expires) {
		delete(s.entries, key)
		return nil, false
	}
	return c.value, true
}

func (s *Store) store(key string, value any) {
	c := cached{value: value}
	if s.ttl > 0 {
		c.expires = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = c
	s.mu.Unlock()
}

// Load returns the cached value for key or runs load once across concurrent
// callers and caches its result. Errors are never cached.
func Load[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := s.lookup(key); ok {
		s.onLookup(true)
		return v.(T), nil
	}
	s.onLookup(false)

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.store(key, loaded)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
