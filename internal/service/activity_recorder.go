package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// ActivityRecorderConfig holds configuration for the activity recorder.
type ActivityRecorderConfig struct {
	// BufferSize is the capacity of the entry queue.
	BufferSize int
	// NumWorkers is the number of goroutines writing batches.
	NumWorkers int
	// BatchSize is the largest batch a worker writes at once.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout bounds one batch write.
	WriteTimeout time.Duration
}

// DefaultActivityRecorderConfig returns sensible defaults.
func DefaultActivityRecorderConfig() ActivityRecorderConfig {
	return ActivityRecorderConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// ActivityRecorder writes activity entries in the background through a
// bounded queue. Entries are dropped, never blocked on, when the queue is full.
type ActivityRecorder struct {
	service ActivityService
	cfg     ActivityRecorderConfig
	entryCh chan *model.ActivityEntry
	stopCh  chan struct{}
	wg      sync.WaitGroup
	stopped atomic.Bool

	enqueued int64
	dropped  int64
	written  int64
	failed   int64
}

// NewActivityRecorder starts the worker pool. It returns nil when svc is nil;
// a nil recorder accepts and discards entries.
func NewActivityRecorder(svc ActivityService, cfg ActivityRecorderConfig) *ActivityRecorder {
	if svc == nil {
		return nil
	}
	def := DefaultActivityRecorderConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	r := &ActivityRecorder{
		service: svc,
		cfg:     cfg,
		entryCh: make(chan *model.ActivityEntry, cfg.BufferSize),
		stopCh:  make(chan struct{}),
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

func (r *ActivityRecorder) worker() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.ActivityEntry, 0, r.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		r.write(batch)
		batch = make([]*model.ActivityEntry, 0, r.cfg.BatchSize)
	}

	for {
		select {
		case entry := <-r.entryCh:
			batch = append(batch, entry)
			if len(batch) >= r.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-r.stopCh:
			for {
				select {
				case entry := <-r.entryCh:
					batch = append(batch, entry)
					if len(batch) >= r.cfg.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (r *ActivityRecorder) write(batch []*model.ActivityEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.WriteTimeout)
	defer cancel()

	if err := r.service.RecordMany(ctx, batch); err != nil {
		atomic.AddInt64(&r.failed, int64(len(batch)))
		metrics.ActivityEntriesTotal.WithLabelValues("failed").Add(float64(len(batch)))
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write cart activity")
		return
	}
	atomic.AddInt64(&r.written, int64(len(batch)))
	metrics.ActivityEntriesTotal.WithLabelValues("written").Add(float64(len(batch)))
}

// Record enqueues entry. It reports false when the entry was dropped.
func (r *ActivityRecorder) Record(entry *model.ActivityEntry) bool {
	if r == nil || entry == nil || r.stopped.Load() {
		return false
	}
	select {
	case r.entryCh <- entry:
		atomic.AddInt64(&r.enqueued, 1)
		metrics.RecordActivityEntry("enqueued")
		return true
	default:
		atomic.AddInt64(&r.dropped, 1)
		metrics.RecordActivityEntry("dropped")
		return false
	}
}

// Stop drains queued entries and waits for the workers to exit.
func (r *ActivityRecorder) Stop() {
	if r == nil || !r.stopped.CompareAndSwap(false, true) {
		return
	}
	close(r.stopCh)
	r.wg.Wait()
}

// Stats returns recorder counters.
func (r *ActivityRecorder) Stats() (enqueued, dropped, written, failed int64) {
	if r == nil {
		return 0, 0, 0, 0
	}
	return atomic.LoadInt64(&r.enqueued),
		atomic.LoadInt64(&r.dropped),
		atomic.LoadInt64(&r.written),
		atomic.LoadInt64(&r.failed)
}
