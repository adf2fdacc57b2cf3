package repository

import (
	"context"
	"sync"
)

// MemorySnapshotRepository keeps snapshots in process memory.
// Snapshots do not survive a restart; it backs local development and tests.
type MemorySnapshotRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemorySnapshotRepository creates an empty in-memory snapshot repository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		data: make(map[string][]byte),
	}
}

// Get returns a copy of the payload stored under key, or nil when absent.
func (r *MemorySnapshotRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put stores a copy of payload under key.
func (r *MemorySnapshotRepository) Put(_ context.Context, key string, payload []byte) error {
	v := make([]byte, len(payload))
	copy(v, payload)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = v
	return nil
}

// Delete removes key.
func (r *MemorySnapshotRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Ping always succeeds.
func (r *MemorySnapshotRepository) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored snapshots.
func (r *MemorySnapshotRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
