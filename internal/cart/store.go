package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidItem is returned by Add when the line item fails validation.
// The wrapped *model.ValidationError names the offending field.
var ErrInvalidItem = errors.New("invalid line item")

// SnapshotStore is the durable key-value storage a Store mirrors itself to.
// Get returns (nil, nil) when the key does not exist.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// Observer is notified after every completed mutation with the action and
// the resulting cart.
type Observer func(ctx context.Context, a Action, c model.Cart)

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an observer for completed mutations.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store is the authoritative cart state of one session.
//
// Every mutation recomputes the aggregates and writes a full snapshot of the
// items under key before returning. Snapshot write failures are logged and
// swallowed; the in-memory state stays authoritative for the session.
//
// A snapshot that cannot be read is not treated as absent. The store stays
// unhydrated, retries the read on the next call and holds back snapshot
// writes until a read succeeds; mutations made in the meantime are replayed
// on top of the durable items once they load.
//
// A Store serializes callers within one process. Two processes writing the
// same key are not coordinated: the last write wins.
type Store struct {
	mu          sync.Mutex
	snapshots   SnapshotStore
	key         string
	items       []model.LineItem
	pending     []Action
	totalItems  int
	totalPrice  float64
	initialized bool
	observers   []Observer
	logger      zerolog.Logger
}

// NewStore creates an empty, uninitialized store bound to key.
func NewStore(snapshots SnapshotStore, key string, opts ...Option) *Store {
	s := &Store{
		snapshots: snapshots,
		key:       key,
		items:     []model.LineItem{},
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the snapshot key the store persists under.
func (s *Store) Key() string {
	return s.key
}

// Initialize hydrates the store from its durable snapshot.
// A missing or malformed snapshot yields an empty cart and is never written
// back. A read error leaves the store unhydrated so a later call retries.
// Calls after the first successful one are no-ops.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked(ctx)
}

// Initialized reports whether the store has been hydrated.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *Store) initLocked(ctx context.Context) {
	if s.initialized {
		return
	}
	items, err := s.load(ctx)
	if err != nil {
		return
	}

	s.initialized = true
	replay := s.pending
	s.pending = nil
	for _, a := range replay {
		items = Reduce(items, a)
	}
	s.items = items
	s.recompute()
	if len(replay) > 0 {
		s.write(ctx, "replay")
	}
}

// load reads the durable items. Only a failed read returns an error; an
// absent or malformed snapshot loads as an empty cart.
func (s *Store) load(ctx context.Context) ([]model.LineItem, error) {
	if s.snapshots == nil {
		return []model.LineItem{}, nil
	}

	payload, err := s.snapshots.Get(ctx, s.key)
	if err != nil {
		metrics.RecordSnapshotFailure("get")
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to read cart snapshot, will retry")
		return nil, err
	}
	if payload == nil {
		return []model.LineItem{}, nil
	}

	items, err := DecodeSnapshot(payload)
	if err != nil {
		metrics.RecordSnapshotFailure("decode")
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Discarding malformed cart snapshot")
		return []model.LineItem{}, nil
	}
	return items, nil
}

// Add merges item into the cart. Items with the same id have their
// quantities summed. Invalid items, and merges that would take a line past
// model.MaxQuantity, are rejected with ErrInvalidItem and change nothing.
func (s *Store) Add(ctx context.Context, item model.LineItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	return s.apply(ctx, AddAction{Item: item})
}

// Remove drops the line with id. Unknown ids are a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	_ = s.apply(ctx, RemoveAction{ID: id})
}

// SetQuantity replaces the quantity of the line with id.
// A quantity of zero or below removes the line; unknown ids are a no-op.
// Quantities above model.MaxQuantity are rejected with ErrInvalidItem.
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) error {
	if quantity > model.MaxQuantity {
		return fmt.Errorf("%w: %w", ErrInvalidItem, model.ErrQuantityTooLarge)
	}
	return s.apply(ctx, SetQuantityAction{ID: id, Quantity: quantity})
}

// Subtract takes the quantities of items out of the cart. Lines added or
// topped up after items were captured keep the difference.
func (s *Store) Subtract(ctx context.Context, items []model.LineItem) {
	_ = s.apply(ctx, SubtractAction{Items: model.CloneItems(items)})
}

// Clear empties the cart and deletes its durable snapshot.
func (s *Store) Clear(ctx context.Context) {
	_ = s.apply(ctx, ClearAction{})
}

// Quantity returns the quantity of the line with id, or 0 when absent.
func (s *Store) Quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

// Snapshot returns a deep copy of the current cart.
func (s *Store) Snapshot() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked()
}

// TotalItems returns the sum of quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

// TotalPrice returns the sum of price * quantity.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPrice
}

func (s *Store) cartLocked() model.Cart {
	return model.Cart{
		Items:      model.CloneItems(s.items),
		TotalItems: s.totalItems,
		TotalPrice: s.totalPrice,
	}
}

// apply runs one mutation: hydrate if needed, check, reduce, recompute,
// persist, notify. Observers run outside the lock.
func (s *Store) apply(ctx context.Context, a Action) error {
	s.mu.Lock()
	s.initLocked(ctx)
	if err := s.checkLocked(a); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = Reduce(s.items, a)
	s.recompute()
	s.persist(ctx, a)
	snapshot := s.cartLocked()
	observers := s.observers
	s.mu.Unlock()

	metrics.RecordCartMutation(string(a.Name()))
	for _, o := range observers {
		o(ctx, a, snapshot)
	}
	return nil
}

// checkLocked rejects an add whose merged quantity would pass the bound.
func (s *Store) checkLocked(a Action) error {
	add, ok := a.(AddAction)
	if !ok {
		return nil
	}
	if i := indexOf(s.items, add.Item.ID); i >= 0 && add.Item.Quantity > model.MaxQuantity-s.items[i].Quantity {
		return fmt.Errorf("%w: %w", ErrInvalidItem, model.ErrQuantityTooLarge)
	}
	return nil
}

func (s *Store) recompute() {
	s.totalItems, s.totalPrice = model.Totals(s.items)
}

func (s *Store) persist(ctx context.Context, a Action) {
	if s.snapshots == nil {
		return
	}

	if _, ok := a.(ClearAction); ok {
		// The outcome of a clear does not depend on the durable items, so it
		// also settles a pending hydration.
		s.initialized = true
		s.pending = nil
		s.remove(ctx)
		return
	}

	if !s.initialized {
		s.pending = append(s.pending, a)
		return
	}
	if _, ok := a.(SubtractAction); ok && len(s.items) == 0 {
		s.remove(ctx)
		return
	}
	s.write(ctx, string(a.Name()))
}

func (s *Store) remove(ctx context.Context) {
	if err := s.snapshots.Delete(ctx, s.key); err != nil {
		metrics.RecordSnapshotFailure("delete")
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to delete cart snapshot")
	}
}

func (s *Store) write(ctx context.Context, action string) {
	payload, err := EncodeSnapshot(s.items)
	if err != nil {
		metrics.RecordSnapshotFailure("encode")
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to encode cart snapshot")
		return
	}
	if err := s.snapshots.Put(ctx, s.key, payload); err != nil {
		metrics.RecordSnapshotFailure("put")
		s.logger.Warn().Err(err).Str("key", s.key).Str("action", action).Msg("Failed to write cart snapshot")
	}
}

// EncodeSnapshot serializes items as the JSON array stored under a cart key.
func EncodeSnapshot(items []model.LineItem) ([]byte, error) {
	if items == nil {
		items = []model.LineItem{}
	}
	return json.Marshal(items)
}

// DecodeSnapshot parses a stored snapshot. Any item that would not pass
// Add's validation, or a repeated id, rejects the whole snapshot.
func DecodeSnapshot(payload []byte) ([]model.LineItem, error) {
	var items []model.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return []model.LineItem{}, nil
	}

	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return items, nil
}
