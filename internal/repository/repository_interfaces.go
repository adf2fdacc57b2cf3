package repository

import (
	"context"
)

// SnapshotRepositoryInterface stores one opaque cart snapshot per key.
// Get returns (nil, nil) when the key does not exist.
type SnapshotRepositoryInterface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// ActivityRepositoryInterface defines the interface for cart activity persistence.
type ActivityRepositoryInterface interface {
	Create(ctx context.Context, entry *ActivityDocument) error
	CreateMany(ctx context.Context, entries []*ActivityDocument) error
	Query(ctx context.Context, opts ActivityQueryOptions) ([]*ActivityDocument, error)
	Count(ctx context.Context, opts ActivityQueryOptions) (int64, error)
}
