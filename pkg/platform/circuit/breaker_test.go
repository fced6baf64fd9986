package circuit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaker_StartsClosedWithDefaults(t *testing.T) {
	b := New("taxdetails-cache")
	assert.Equal(t, "taxdetails-cache", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "closed", b.State().String())

	for range 4 {
		useFallback, change := b.RecordFailure()
		require.False(t, useFallback)
		require.False(t, change.Opened)
	}
	useFallback, change := b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)
	assert.Equal(t, "open", b.State().String())
}

func TestBreaker_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		outcomes string // f = failure, s = success
		wantOpen bool
	}{
		{name: "below failure threshold", opts: []Option{WithFailureThreshold(3)}, outcomes: "ff", wantOpen: false},
		{name: "at failure threshold", opts: []Option{WithFailureThreshold(3)}, outcomes: "fff", wantOpen: true},
		{name: "success resets failure streak", opts: []Option{WithFailureThreshold(3)}, outcomes: "ffsff", wantOpen: false},
		{name: "one success does not close", opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)}, outcomes: "fs", wantOpen: true},
		{name: "success threshold closes", opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)}, outcomes: "fss", wantOpen: false},
		{name: "failure while open resets success streak", opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)}, outcomes: "fsfs", wantOpen: true},
		{name: "non-positive thresholds keep defaults", opts: []Option{WithFailureThreshold(0), WithSuccessThreshold(-1)}, outcomes: "ffff", wantOpen: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("cache", tt.opts...)
			for _, o := range tt.outcomes {
				if o == 'f' {
					b.RecordFailure()
				} else {
					b.RecordSuccess()
				}
			}
			assert.Equal(t, tt.wantOpen, b.IsOpen())
		})
	}
}

func TestBreaker_ReportsEachTransitionOnce(t *testing.T) {
	b := New("cache", WithFailureThreshold(1), WithSuccessThreshold(1))

	_, change := b.RecordFailure()
	assert.True(t, change.Opened)
	useFallback, change := b.RecordFailure()
	assert.True(t, useFallback)
	assert.Equal(t, StateChange{}, change)

	usePrimary, change := b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)
	usePrimary, change = b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.Equal(t, StateChange{}, change)
}

func TestBreaker_Reset(t *testing.T) {
	b := New("cache", WithFailureThreshold(1))
	b.RecordFailure()
	require.True(t, b.IsOpen())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_ConcurrentFailuresOpenExactlyOnce(t *testing.T) {
	b := New("cache", WithFailureThreshold(10))
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		opened int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, change := b.RecordFailure(); change.Opened {
				mu.Lock()
				opened++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, opened)
	assert.True(t, b.IsOpen())
}
