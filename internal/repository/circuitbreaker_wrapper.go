package repository

import (
	"context"
	"errors"

	"github.com/guttosm/cart-service/internal/circuitbreaker"
)

// SnapshotRepositoryWithCircuitBreaker guards a snapshot store with a circuit breaker.
// Every operation behind an open circuit reports circuitbreaker.ErrCircuitOpen,
// so a cart never mistakes an unreachable snapshot for a missing one.
type SnapshotRepositoryWithCircuitBreaker struct {
	repo           SnapshotRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSnapshotRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSnapshotRepositoryWithCircuitBreaker(repo SnapshotRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *SnapshotRepositoryWithCircuitBreaker {
	return &SnapshotRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns the snapshot under key, or nil when absent.
func (r *SnapshotRepositoryWithCircuitBreaker) Get(ctx context.Context, key string) ([]byte, error) {
	var result []byte
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, key)
		return cbErr
	})
	return result, err
}

// Put stores the snapshot with circuit breaker protection.
func (r *SnapshotRepositoryWithCircuitBreaker) Put(ctx context.Context, key string, payload []byte) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Put(ctx, key, payload)
	})
}

// Delete removes the snapshot with circuit breaker protection.
func (r *SnapshotRepositoryWithCircuitBreaker) Delete(ctx context.Context, key string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, key)
	})
}

// Ping checks the wrapped store directly so readiness reflects the backend
// even while the circuit is open.
func (r *SnapshotRepositoryWithCircuitBreaker) Ping(ctx context.Context) error {
	return r.repo.Ping(ctx)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SnapshotRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ActivityRepositoryWithCircuitBreaker wraps ActivityRepository with circuit breaker protection.
type ActivityRepositoryWithCircuitBreaker struct {
	repo           ActivityRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewActivityRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewActivityRepositoryWithCircuitBreaker(repo ActivityRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ActivityRepositoryWithCircuitBreaker {
	return &ActivityRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single entry. If the circuit is open, the entry is dropped (activity is non-critical).
func (r *ActivityRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *ActivityDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries in bulk. If the circuit is open, the batch is dropped.
func (r *ActivityRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*ActivityDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves activity with circuit breaker protection.
func (r *ActivityRepositoryWithCircuitBreaker) Query(ctx context.Context, opts ActivityQueryOptions) ([]*ActivityDocument, error) {
	var result []*ActivityDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the activity count with circuit breaker protection.
func (r *ActivityRepositoryWithCircuitBreaker) Count(ctx context.Context, opts ActivityQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ActivityRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
