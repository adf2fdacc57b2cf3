//go:build !integration

package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/circuitbreaker"
)

type fakePurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (p *fakePurger) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cutoffs = append(p.cutoffs, cutoff)
	return 1, p.err
}

func (p *fakePurger) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cutoffs)
}

func TestInitializeStorage_Memory(t *testing.T) {
	s := InitializeStorage(context.Background(), testConfig().Storage)
	defer s.Close(context.Background())

	assert.Equal(t, config.DriverMemory, s.Driver)
	assert.Empty(t, s.Breakers)
	require.NoError(t, s.Snapshots.Put(context.Background(), "cart:a", []byte(`{"items":[]}`)))
	got, err := s.Snapshots.Get(context.Background(), "cart:a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(got))
}

func TestStartSnapshotJanitor(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "purges on every tick"},
		{name: "keeps running after a failed purge", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePurger{err: tt.err}
			start := time.Now()
			stop := startSnapshotJanitor(p, time.Hour, 10*time.Millisecond)

			assert.Eventually(t, func() bool { return p.calls() >= 2 }, time.Second, 5*time.Millisecond)
			stop()

			p.mu.Lock()
			defer p.mu.Unlock()
			assert.WithinDuration(t, start.Add(-time.Hour), p.cutoffs[0], time.Second)
		})
	}
}

func TestJanitorInterval(t *testing.T) {
	assert.Equal(t, time.Minute, janitorInterval(time.Minute))
	assert.Equal(t, 30*time.Minute, janitorInterval(12*time.Hour))
	assert.Equal(t, time.Hour, janitorInterval(14*24*time.Hour))
}

func TestNewBreaker(t *testing.T) {
	cfg := testConfig().Storage
	cfg.CircuitBreakerFailureThreshold = 1

	cb := newBreaker("test-snapshots", cfg)
	assert.Equal(t, "test-snapshots", cb.Name())

	err := cb.Execute(context.Background(), func() error { return errors.New("down") })
	assert.Error(t, err)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), func() error { return nil }), circuitbreaker.ErrCircuitOpen)
}
