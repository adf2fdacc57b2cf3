// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cart-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockSnapshotRepositoryInterface struct {
	mock.Mock
}

func (m *MockSnapshotRepositoryInterface) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSnapshotRepositoryInterface) Put(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

func (m *MockSnapshotRepositoryInterface) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSnapshotRepositoryInterface) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockActivityRepositoryInterface struct {
	mock.Mock
}

func (m *MockActivityRepositoryInterface) Create(ctx context.Context, entry *repository.ActivityDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.ActivityDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockActivityRepositoryInterface) Query(ctx context.Context, opts repository.ActivityQueryOptions) ([]*repository.ActivityDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ActivityDocument), args.Error(1)
}

func (m *MockActivityRepositoryInterface) Count(ctx context.Context, opts repository.ActivityQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
