//go:build integration

// Package testutil provides testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer.
// For package-wide reuse prefer RunWithContainers in TestMain.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	return terminate(ctx, m.Container)
}

// PostgresContainer wraps a PostgreSQL testcontainer.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
}

// SetupPostgres starts a disposable postgres:16-alpine container.
func SetupPostgres(ctx context.Context) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "cart",
			"POSTGRES_PASSWORD": "cart",
			"POSTGRES_DB":       "cart",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &PostgresContainer{
		Container: container,
		DSN:       fmt.Sprintf("postgres://cart:cart@%s:%s/cart?sslmode=disable", host, port.Port()),
	}, nil
}

// Cleanup terminates the Postgres container.
func (p *PostgresContainer) Cleanup(ctx context.Context) error {
	return terminate(ctx, p.Container)
}

func terminate(ctx context.Context, c testcontainers.Container) error {
	if c == nil {
		return nil
	}
	if err := c.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}
