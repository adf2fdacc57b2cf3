//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// Shared containers started once per test binary by RunWithContainers.
var (
	sharedMu       sync.RWMutex
	sharedMongo    *MongoDBContainer
	sharedPostgres *PostgresContainer
)

// Option selects a backing store for RunWithContainers.
type Option func(ctx context.Context) error

// WithMongoDB starts a shared MongoDB container.
func WithMongoDB() Option {
	return func(ctx context.Context) error {
		c, err := SetupMongoDB(ctx)
		if err != nil {
			return err
		}
		sharedMongo = c
		return nil
	}
}

// WithPostgres starts a shared Postgres container.
func WithPostgres() Option {
	return func(ctx context.Context) error {
		c, err := SetupPostgres(ctx)
		if err != nil {
			return err
		}
		sharedPostgres = c
		return nil
	}
}

// RunWithContainers is a TestMain helper. It starts the selected containers,
// runs the tests and terminates the containers afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithContainers(context.Background(), m, testutil.WithMongoDB()))
//	}
func RunWithContainers(ctx context.Context, m *testing.M, opts ...Option) int {
	sharedMu.Lock()
	for _, opt := range opts {
		if err := opt(ctx); err != nil {
			sharedMu.Unlock()
			cleanupShared(ctx)
			panic(err)
		}
	}
	sharedMu.Unlock()

	code := m.Run()
	cleanupShared(ctx)
	return code
}

func cleanupShared(ctx context.Context) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedMongo != nil {
		if err := sharedMongo.Cleanup(ctx); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "Warning: failed to cleanup MongoDB container:", err)
		}
		sharedMongo = nil
	}
	if sharedPostgres != nil {
		if err := sharedPostgres.Cleanup(ctx); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "Warning: failed to cleanup Postgres container:", err)
		}
		sharedPostgres = nil
	}
}

// MongoURI returns the URI of the shared MongoDB container.
func MongoURI(t testing.TB) string {
	t.Helper()
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedMongo == nil {
		t.Fatal("shared MongoDB container not started, add testutil.WithMongoDB() to TestMain")
	}
	return sharedMongo.URI
}

// PostgresDSN returns the DSN of the shared Postgres container.
func PostgresDSN(t testing.TB) string {
	t.Helper()
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedPostgres == nil {
		t.Fatal("shared Postgres container not started, add testutil.WithPostgres() to TestMain")
	}
	return sharedPostgres.DSN
}

// DBName turns a test name into a unique, valid MongoDB database name.
func DBName(t testing.TB) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "#", "_").Replace(t.Name())
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
