package service

import (
	"context"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityService stores and queries cart activity.
type ActivityService interface {
	// Record stores a single activity entry.
	Record(ctx context.Context, entry *model.ActivityEntry) error

	// RecordMany stores multiple activity entries in bulk.
	RecordMany(ctx context.Context, entries []*model.ActivityEntry) error

	// Query retrieves activity matching opts, newest first.
	Query(ctx context.Context, opts model.ActivityQueryOptions) ([]model.ActivityEntry, error)

	// Count returns the number of entries matching opts.
	Count(ctx context.Context, opts model.ActivityQueryOptions) (int64, error)
}

// ActivityServiceImpl implements ActivityService on top of an activity repository.
type ActivityServiceImpl struct {
	repo repository.ActivityRepositoryInterface
}

// NewActivityService creates a new activity service.
func NewActivityService(repo repository.ActivityRepositoryInterface) ActivityService {
	return &ActivityServiceImpl{repo: repo}
}

// Record stores a single activity entry.
func (s *ActivityServiceImpl) Record(ctx context.Context, entry *model.ActivityEntry) error {
	return s.repo.Create(ctx, toActivityDocument(entry))
}

// RecordMany stores multiple activity entries in bulk.
func (s *ActivityServiceImpl) RecordMany(ctx context.Context, entries []*model.ActivityEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.ActivityDocument, len(entries))
	for i, entry := range entries {
		docs[i] = toActivityDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// Query retrieves activity matching opts, newest first.
func (s *ActivityServiceImpl) Query(ctx context.Context, opts model.ActivityQueryOptions) ([]model.ActivityEntry, error) {
	docs, err := s.repo.Query(ctx, toRepositoryQuery(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, len(docs))
	for i, doc := range docs {
		entries[i] = fromActivityDocument(doc)
	}
	return entries, nil
}

// Count returns the number of entries matching opts.
func (s *ActivityServiceImpl) Count(ctx context.Context, opts model.ActivityQueryOptions) (int64, error) {
	return s.repo.Count(ctx, toRepositoryQuery(opts))
}

func toRepositoryQuery(opts model.ActivityQueryOptions) repository.ActivityQueryOptions {
	return repository.ActivityQueryOptions{
		SessionID: opts.SessionID,
		Action:    string(opts.Action),
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
		Limit:     opts.Limit,
		Skip:      opts.Skip,
	}
}

func toActivityDocument(entry *model.ActivityEntry) *repository.ActivityDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.ActivityDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		SessionID:  entry.SessionID,
		Action:     string(entry.Action),
		ItemID:     entry.ItemID,
		Quantity:   entry.Quantity,
		TotalItems: entry.TotalItems,
		TotalPrice: entry.TotalPrice,
		RequestID:  entry.RequestID,
		Fields:     entry.Fields,
	}
}

func fromActivityDocument(doc *repository.ActivityDocument) model.ActivityEntry {
	return model.ActivityEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		SessionID:  doc.SessionID,
		Action:     model.ActivityAction(doc.Action),
		ItemID:     doc.ItemID,
		Quantity:   doc.Quantity,
		TotalItems: doc.TotalItems,
		TotalPrice: doc.TotalPrice,
		RequestID:  doc.RequestID,
		Fields:     doc.Fields,
	}
}
