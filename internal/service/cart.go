package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/logger"
	"github.com/guttosm/cart-service/internal/metrics"
)

// DefaultKeyPrefix namespaces snapshot keys by session.
const DefaultKeyPrefix = "cart:"

// ErrSessionRequired is returned when a call carries no session id.
var ErrSessionRequired = errors.New("cart session id is required")

// CartService exposes the cart of each session.
type CartService interface {
	Get(ctx context.Context, sessionID string) (model.Cart, error)
	AddItem(ctx context.Context, sessionID string, item model.LineItem) (model.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (model.Cart, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (model.Cart, error)
	Clear(ctx context.Context, sessionID string) (model.Cart, error)
	Quantity(ctx context.Context, sessionID, itemID string) (int, error)
	Logout(ctx context.Context, sessionID string) error
}

// CartServiceConfig configures the session cache and snapshot keys.
type CartServiceConfig struct {
	KeyPrefix   string
	CacheSize   int
	CacheTTL    time.Duration
	CacheShards int
}

// DefaultCartServiceConfig returns sensible defaults.
func DefaultCartServiceConfig() CartServiceConfig {
	return CartServiceConfig{
		KeyPrefix:   DefaultKeyPrefix,
		CacheSize:   10000,
		CacheTTL:    30 * time.Minute,
		CacheShards: 16,
	}
}

// SnapshotKey returns the durable key of a session's cart.
func SnapshotKey(prefix, sessionID string) string {
	return prefix + sessionID
}

// CartServiceImpl keeps one live cart.Store per session in a TTL/LRU cache.
// An evicted session is rebuilt from its snapshot on the next request.
type CartServiceImpl struct {
	snapshots cart.SnapshotStore
	sessions  *ShardedCache[*cart.Store]
	recorder  *ActivityRecorder
	keyPrefix string
}

// NewCartService creates a cart service. recorder may be nil.
func NewCartService(snapshots cart.SnapshotStore, recorder *ActivityRecorder, cfg CartServiceConfig) *CartServiceImpl {
	def := DefaultCartServiceConfig()
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = def.KeyPrefix
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}

	return &CartServiceImpl{
		snapshots: snapshots,
		sessions:  NewShardedCache[*cart.Store](cfg.CacheSize, cfg.CacheTTL, cfg.CacheShards),
		recorder:  recorder,
		keyPrefix: cfg.KeyPrefix,
	}
}

// store returns the hydrated store for sessionID.
func (s *CartServiceImpl) store(ctx context.Context, sessionID string) (*cart.Store, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	st, existed := s.sessions.GetOrCreate(sessionID, func() *cart.Store {
		return cart.NewStore(
			s.snapshots,
			SnapshotKey(s.keyPrefix, sessionID),
			cart.WithObserver(s.observer(sessionID)),
			cart.WithLogger(logger.Logger().With().Str("session_id", sessionID).Logger()),
		)
	})
	if !existed {
		metrics.UpdateActiveSessions(s.sessions.Len())
	}
	st.Initialize(ctx)
	return st, nil
}

func (s *CartServiceImpl) observer(sessionID string) cart.Observer {
	return func(ctx context.Context, a cart.Action, c model.Cart) {
		entry := &model.ActivityEntry{
			Timestamp:  time.Now().UTC(),
			SessionID:  sessionID,
			Action:     a.Name(),
			TotalItems: c.TotalItems,
			TotalPrice: c.TotalPrice,
			RequestID:  logger.RequestIDFromContext(ctx),
		}
		switch act := a.(type) {
		case cart.AddAction:
			entry.ItemID = act.Item.ID
			entry.Quantity = act.Item.Quantity
		case cart.RemoveAction:
			entry.ItemID = act.ID
		case cart.SetQuantityAction:
			entry.ItemID = act.ID
			entry.Quantity = act.Quantity
		case cart.SubtractAction:
			// Checkout records its own entry with the order id.
			return
		}
		s.recorder.Record(entry)
	}
}

// Get returns the session's cart.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (model.Cart, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	return st.Snapshot(), nil
}

// AddItem merges item into the session's cart.
// Invalid items are rejected with an error wrapping cart.ErrInvalidItem.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID string, item model.LineItem) (model.Cart, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	if err := st.Add(ctx, item); err != nil {
		return model.Cart{}, err
	}
	return st.Snapshot(), nil
}

// RemoveItem drops itemID from the session's cart.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID, itemID string) (model.Cart, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	st.Remove(ctx, itemID)
	return st.Snapshot(), nil
}

// SetQuantity replaces the quantity of itemID. Zero or below removes it;
// above model.MaxQuantity is rejected with an error wrapping cart.ErrInvalidItem.
func (s *CartServiceImpl) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (model.Cart, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	if err := st.SetQuantity(ctx, itemID, quantity); err != nil {
		return model.Cart{}, err
	}
	return st.Snapshot(), nil
}

// RemoveOrdered takes the ordered quantities of items out of the session's
// cart. Anything added after the order snapshot was taken stays.
func (s *CartServiceImpl) RemoveOrdered(ctx context.Context, sessionID string, items []model.LineItem) (model.Cart, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	st.Subtract(ctx, items)
	return st.Snapshot(), nil
}

// Clear empties the session's cart and deletes its snapshot.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) (model.Cart, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	st.Clear(ctx)
	return st.Snapshot(), nil
}

// Quantity returns the quantity of itemID, 0 when absent.
func (s *CartServiceImpl) Quantity(ctx context.Context, sessionID, itemID string) (int, error) {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return st.Quantity(itemID), nil
}

// Logout clears the session's cart and drops it from memory.
func (s *CartServiceImpl) Logout(ctx context.Context, sessionID string) error {
	st, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	st.Clear(ctx)
	s.Evict(sessionID)

	s.recorder.Record(&model.ActivityEntry{
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
		Action:    model.ActivityLogout,
		RequestID: logger.RequestIDFromContext(ctx),
	})
	return nil
}

// Evict drops the live store of sessionID without touching its snapshot.
func (s *CartServiceImpl) Evict(sessionID string) {
	s.sessions.Invalidate(sessionID)
	metrics.UpdateActiveSessions(s.sessions.Len())
}

// ActiveSessions returns the number of sessions held in memory.
func (s *CartServiceImpl) ActiveSessions() int {
	return s.sessions.Len()
}

// Stop releases the session cache.
func (s *CartServiceImpl) Stop() {
	s.sessions.Stop()
}
