package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func countingFill(calls *atomic.Int64, doc string, err error) FillFunc {
	return func(ctx context.Context) (json.RawMessage, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return json.RawMessage(doc), nil
	}
}

func TestGetOrFetch_SecondHitWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	c := New(10*time.Minute, 16, WithClock(clock.Now))

	var calls atomic.Int64
	fill := countingFill(&calls, `{"a":1}`, nil)
	ctx := context.Background()

	doc, err := c.GetOrFetch(ctx, "https://example.com/a.json", fill)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(doc))

	clock.Advance(9 * time.Minute)

	doc, err = c.GetOrFetch(ctx, "https://example.com/a.json", fill)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(doc))
	assert.Equal(t, int64(1), calls.Load(), "second fetch within TTL must not hit upstream")
}

func TestGetOrFetch_RefetchAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	c := New(10*time.Minute, 16, WithClock(clock.Now))

	var calls atomic.Int64
	fill := countingFill(&calls, `{"a":1}`, nil)
	ctx := context.Background()

	_, err := c.GetOrFetch(ctx, "https://example.com/a.json", fill)
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)

	_, err = c.GetOrFetch(ctx, "https://example.com/a.json", fill)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load(), "stale entry must trigger a new upstream call")
	assert.Equal(t, 1, c.Len(), "stale entry is overwritten, not duplicated")
}

func TestGetOrFetch_DistinctURLs(t *testing.T) {
	c := New(DefaultTTL, 16)

	var calls atomic.Int64
	fill := countingFill(&calls, `{}`, nil)
	ctx := context.Background()

	_, err := c.GetOrFetch(ctx, "https://example.com/a.json", fill)
	require.NoError(t, err)
	_, err = c.GetOrFetch(ctx, "https://example.com/b.json", fill)
	require.NoError(t, err)

	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 2, c.Len())
}

func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	c := New(DefaultTTL, 16)

	var calls atomic.Int64
	boom := errors.New("upstream down")
	ctx := context.Background()

	_, err := c.GetOrFetch(ctx, "https://example.com/a.json", countingFill(&calls, "", boom))
	require.ErrorIs(t, err, boom)

	doc, err := c.GetOrFetch(ctx, "https://example.com/a.json", countingFill(&calls, `{"ok":true}`, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(doc))
	assert.Equal(t, int64(2), calls.Load())
}

func TestGetOrFetch_ConcurrentMissesShareOneFill(t *testing.T) {
	c := New(DefaultTTL, 16)

	var calls atomic.Int64
	release := make(chan struct{})
	fill := func(ctx context.Context) (json.RawMessage, error) {
		calls.Add(1)
		<-release
		return json.RawMessage(`{"shared":true}`), nil
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.GetOrFetch(context.Background(), "https://example.com/a.json", fill)
		}(i)
	}

	// Give the workers time to pile up on the same key before the single
	// in-flight fill completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, int64(1), calls.Load(), "concurrent misses on one URL must share a single fetch")
}
