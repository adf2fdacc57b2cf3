package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/circuitbreaker"
	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/guttosm/cart-service/internal/repository"
	"github.com/guttosm/cart-service/internal/service"
)

// StorageComponents holds the durable stores behind the cart sessions.
type StorageComponents struct {
	Driver    string
	Snapshots repository.SnapshotRepositoryInterface
	Activity  service.ActivityService
	Breakers  []*circuitbreaker.CircuitBreaker

	closers []func(context.Context) error
}

// Close releases stores and background jobs in reverse order of creation.
func (s *StorageComponents) Close(ctx context.Context) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close storage component")
		}
	}
	s.closers = nil
}

// InitializeStorage opens the configured snapshot store. When the backend
// cannot be reached the service keeps running on the in-memory store, so
// carts still work and only lose durability.
func InitializeStorage(ctx context.Context, cfg config.StorageConfig) *StorageComponents {
	var (
		s   *StorageComponents
		err error
	)
	switch cfg.Driver {
	case config.DriverMongoDB:
		s, err = initializeMongo(ctx, cfg)
	case config.DriverPostgres:
		s, err = initializePostgres(ctx, cfg)
	}
	if s != nil {
		return s
	}
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Driver).Msg("Failed to open snapshot store - continuing with in-memory snapshots")
	}

	return &StorageComponents{
		Driver:    config.DriverMemory,
		Snapshots: repository.NewMemorySnapshotRepository(),
	}
}

func initializeMongo(ctx context.Context, cfg config.StorageConfig) (*StorageComponents, error) {
	db, err := repository.NewMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.MongoDB).Msg("Connected to MongoDB")

	if err := db.SetSnapshotTTL(ctx, cfg.SnapshotTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set snapshot TTL index")
	}

	snapshotsCB := newBreaker("mongodb-snapshots", cfg)
	s := &StorageComponents{
		Driver:    config.DriverMongoDB,
		Snapshots: repository.NewSnapshotRepositoryWithCircuitBreaker(repository.NewMongoSnapshotRepository(db), snapshotsCB),
		Breakers:  []*circuitbreaker.CircuitBreaker{snapshotsCB},
		closers:   []func(context.Context) error{db.Close},
	}

	if cfg.RecordEvents {
		if err := db.SetActivityTTL(ctx, cfg.ActivityTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set activity TTL index")
		}
		activityCB := newBreaker("mongodb-activity", cfg)
		activityRepo := repository.NewActivityRepositoryWithCircuitBreaker(repository.NewActivityRepository(db), activityCB)
		s.Activity = service.NewActivityService(activityRepo)
		s.Breakers = append(s.Breakers, activityCB)
	}

	return s, nil
}

func initializePostgres(ctx context.Context, cfg config.StorageConfig) (*StorageComponents, error) {
	pool, err := repository.NewPostgresPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	repo, err := repository.NewPostgresSnapshotRepository(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Msg("Connected to Postgres")

	cb := newBreaker("postgres-snapshots", cfg)
	s := &StorageComponents{
		Driver:    config.DriverPostgres,
		Snapshots: repository.NewSnapshotRepositoryWithCircuitBreaker(repo, cb),
		Breakers:  []*circuitbreaker.CircuitBreaker{cb},
		closers: []func(context.Context) error{func(context.Context) error {
			pool.Close()
			return nil
		}},
	}

	if cfg.SnapshotTTL > 0 {
		stop := startSnapshotJanitor(repo, cfg.SnapshotTTL, janitorInterval(cfg.SnapshotTTL))
		s.closers = append(s.closers, func(context.Context) error {
			stop()
			return nil
		})
	}

	return s, nil
}

func newBreaker(name string, cfg config.StorageConfig) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.RecordCircuitBreakerState(name, int(to))
		},
	})
	metrics.RecordCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}

type snapshotPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 24
	if interval < time.Minute {
		interval = time.Minute
	}
	if interval > time.Hour {
		interval = time.Hour
	}
	return interval
}

// startSnapshotJanitor deletes snapshots older than ttl every interval.
// Postgres has no TTL index, so abandoned carts are purged here.
func startSnapshotJanitor(p snapshotPurger, ttl, interval time.Duration) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				n, err := p.PurgeOlderThan(ctx, time.Now().Add(-ttl))
				cancel()
				if err != nil {
					log.Warn().Err(err).Msg("Failed to purge expired cart snapshots")
					metrics.RecordSnapshotFailure("purge")
					continue
				}
				if n > 0 {
					log.Info().Int64("purged", n).Msg("Purged expired cart snapshots")
				}
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
