package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityDocument represents a cart activity entry in MongoDB.
// This is the repository-level structure that maps directly to MongoDB.
type ActivityDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	SessionID  string                 `bson:"session_id" json:"session_id"`
	Action     string                 `bson:"action" json:"action"`
	ItemID     string                 `bson:"item_id,omitempty" json:"item_id,omitempty"`
	Quantity   int                    `bson:"quantity,omitempty" json:"quantity,omitempty"`
	TotalItems int                    `bson:"total_items" json:"total_items"`
	TotalPrice float64                `bson:"total_price" json:"total_price"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// ActivityQueryOptions provides options for querying cart activity.
type ActivityQueryOptions struct {
	SessionID string
	Action    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (o ActivityQueryOptions) filter() bson.M {
	filter := bson.M{}
	if o.SessionID != "" {
		filter["session_id"] = o.SessionID
	}
	if o.Action != "" {
		filter["action"] = o.Action
	}
	if o.StartTime != nil || o.EndTime != nil {
		timeFilter := bson.M{}
		if o.StartTime != nil {
			timeFilter["$gte"] = *o.StartTime
		}
		if o.EndTime != nil {
			timeFilter["$lte"] = *o.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// ActivityRepository persists cart activity in the cart_activity collection.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *MongoDB) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Activity,
	}
}

func prepare(entry *ActivityDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

// Create inserts a single activity document.
func (r *ActivityRepository) Create(ctx context.Context, entry *ActivityDocument) error {
	prepare(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts activity documents in bulk.
func (r *ActivityRepository) CreateMany(ctx context.Context, entries []*ActivityDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepare(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns activity newest first.
func (r *ActivityRepository) Query(ctx context.Context, opts ActivityQueryOptions) ([]*ActivityDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*ActivityDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of activity documents matching opts.
func (r *ActivityRepository) Count(ctx context.Context, opts ActivityQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
