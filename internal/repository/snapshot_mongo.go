package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SnapshotDocument is one cart snapshot as stored in MongoDB.
// Payload is kept as the raw JSON string so the stored shape is exactly
// what the session wrote.
type SnapshotDocument struct {
	Key       string    `bson:"_id" json:"key"`
	Payload   string    `bson:"payload" json:"payload"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MongoSnapshotRepository stores cart snapshots in the cart_snapshots collection.
type MongoSnapshotRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a new MongoDB snapshot repository.
func NewMongoSnapshotRepository(db *MongoDB) *MongoSnapshotRepository {
	return &MongoSnapshotRepository{
		db:         db,
		collection: db.Snapshots,
	}
}

// Get returns the payload stored under key, or nil when absent.
func (r *MongoSnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc SnapshotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Payload), nil
}

// Put upserts the payload under key.
func (r *MongoSnapshotRepository) Put(ctx context.Context, key string, payload []byte) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"payload": string(payload), "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Delete removes the document for key. Deleting a missing key succeeds.
func (r *MongoSnapshotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Ping verifies the underlying connection.
func (r *MongoSnapshotRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
