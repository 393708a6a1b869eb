package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestLoad_CollapsesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	load := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "teams", nil
	}

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Load(context.Background(), store, "team:list", load)
			if err == nil {
				results <- v
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	got := 0
	for v := range results {
		require.Equal(t, "teams", v)
		got++
	}
	require.Equal(t, callers, got)
	require.Equal(t, int32(1), calls.Load())
}

func TestLoad_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStore(time.Minute, WithClock(clock))
	var calls atomic.Int32
	load := func(context.Context) (int32, error) { return calls.Add(1), nil }

	first, _ := Load(context.Background(), store, "players", load)
	clock.Advance(59 * time.Second)
	second, _ := Load(context.Background(), store, "players", load)
	require.Equal(t, first, second)

	clock.Advance(time.Second)
	third, _ := Load(context.Background(), store, "players", load)
	require.NotEqual(t, first, third)
}

func TestLoad_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	var hits, misses int
	store := NewStore(time.Minute, WithLookupObserver(func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}))
	loadErr := errors.New("db down")

	_, err := Load(context.Background(), store, "k", func(context.Context) (string, error) { return "", loadErr })
	require.ErrorIs(t, err, loadErr)

	v, err := Load(context.Background(), store, "k", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	require.Equal(t, "ok", v)

	_, _ = Load(context.Background(), store, "k", func(context.Context) (string, error) { return "unused", nil })
	require.Equal(t, 1, hits)
	require.Equal(t, 2, misses)
}
