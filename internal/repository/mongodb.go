// Package repository provides the durable storage layer for cart snapshots
// and cart activity.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          10 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Snapshots *mongo.Collection
	Activity  *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:    client,
		Database:  db,
		Snapshots: db.Collection("cart_snapshots"),
		Activity:  db.Collection("cart_activity"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the query indexes. TTL indexes are managed by
// SetSnapshotTTL and SetActivityTTL.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	sessionIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"session_id": 1, "timestamp": -1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Activity.Indexes().CreateOne(ctx, sessionIndex); err != nil {
		return err
	}

	actionIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"action": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Activity.Indexes().CreateOne(ctx, actionIndex)

	return nil
}

// SetSnapshotTTL (re)creates the TTL index that expires abandoned carts.
// A zero ttl leaves snapshots to live forever.
func (m *MongoDB) SetSnapshotTTL(ctx context.Context, ttl time.Duration) error {
	return setTTLIndex(ctx, m.Snapshots, "updated_at", ttl)
}

// SetActivityTTL (re)creates the TTL index on cart activity entries.
func (m *MongoDB) SetActivityTTL(ctx context.Context, ttl time.Duration) error {
	return setTTLIndex(ctx, m.Activity, "timestamp", ttl)
}

func setTTLIndex(ctx context.Context, coll *mongo.Collection, field string, ttl time.Duration) error {
	// Dropping a missing index is not an error worth surfacing.
	_, _ = coll.Indexes().DropOne(ctx, field+"_1")
	if ttl <= 0 {
		return nil
	}

	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{field: 1},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}
	_, err := coll.Indexes().CreateOne(ctx, ttlIndex)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "IndexOptionsConflict" {
		return nil
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
