//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

func failing() error { return errBackend }
func passing() error { return nil }

func tripped(t *testing.T, threshold int, timeout time.Duration) *CircuitBreaker {
	t.Helper()
	cb := New(Config{
		Name:             "test",
		FailureThreshold: threshold,
		SuccessThreshold: 2,
		Timeout:          timeout,
	})
	for i := 0; i < threshold; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	require.Equal(t, StateOpen, cb.State())
	return cb
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())
	err := cb.Execute(context.Background(), passing)

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Minute, Name: "test"})

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errBackend)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errBackend)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(Config{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Minute, Name: "test"})

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), passing)
	_ = cb.Execute(context.Background(), failing)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := tripped(t, 2, 50*time.Millisecond)

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpen_Failure(t *testing.T) {
	cb := tripped(t, 2, 50*time.Millisecond)

	time.Sleep(60 * time.Millisecond)

	assert.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_CanceledContext(t *testing.T) {
	cb := New(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, 0, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	type change struct{ from, to State }
	var changes []change

	cb := New(Config{
		Name:             "snapshots",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          20 * time.Millisecond,
		OnStateChange: func(name string, from, to State) {
			assert.Equal(t, "snapshots", name)
			changes = append(changes, change{from, to})
		},
	})

	_ = cb.Execute(context.Background(), failing)
	time.Sleep(30 * time.Millisecond)
	_ = cb.Execute(context.Background(), passing)

	assert.Equal(t, []change{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, changes)
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := tripped(t, 1, time.Minute)

	cb.Reset()

	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.Execute(context.Background(), passing))
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(Config{Name: "activity"})

	stats := cb.GetStats()
	assert.Equal(t, "activity", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), failing)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_IsOpen(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "test"})

	assert.False(t, cb.IsOpen())
	_ = cb.Execute(context.Background(), failing)
	assert.True(t, cb.IsOpen())
}

func TestNew_FillsDefaults(t *testing.T) {
	cb := New(Config{})
	def := DefaultConfig()

	assert.Equal(t, def.FailureThreshold, cb.config.FailureThreshold)
	assert.Equal(t, def.SuccessThreshold, cb.config.SuccessThreshold)
	assert.Equal(t, def.Timeout, cb.config.Timeout)
	assert.Equal(t, def.Name, cb.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
