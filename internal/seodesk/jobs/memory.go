package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// MemoryConfig tunes the in-process backend.
type MemoryConfig struct {
	Workers     int
	QueueSize   int
	MaxAttempts int
	// RetryDelay is multiplied by the attempt number between retries.
	RetryDelay time.Duration
}

// MemoryQueue is a bounded channel drained by a fixed pool of workers.
// Tasks do not survive a restart.
type MemoryQueue struct {
	*registry
	cfg MemoryConfig

	mu      sync.RWMutex
	tasks   chan Task
	started bool
	stopped bool
	baseCtx context.Context
	wg      sync.WaitGroup
}

func NewMemoryQueue(cfg MemoryConfig, logger *slog.Logger) *MemoryQueue {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	return &MemoryQueue{
		registry: newRegistry(logger, cfg.MaxAttempts),
		cfg:      cfg,
		tasks:    make(chan Task, cfg.QueueSize),
	}
}

// Enqueue never blocks: a full buffer returns ErrQueueFull.
func (q *MemoryQueue) Enqueue(ctx context.Context, t Task) error {
	t, err := q.prepare(t)
	if err != nil {
		return err
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.stopped {
		return ErrStopped
	}

	select {
	case q.tasks <- t:
		slogx.FromContext(ctx).Debug("task enqueued",
			slog.String("task_id", t.ID),
			slog.String("kind", t.Kind),
			slog.String("entity_id", t.EntityID),
		)
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the workers. Handlers run with a context derived from ctx
// that is not cancelled by Stop, so in-flight work can finish.
func (q *MemoryQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return ErrStopped
	}
	if q.started {
		return nil
	}
	q.started = true
	q.baseCtx = context.WithoutCancel(ctx)

	for i := 0; i < q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	q.logger.Info("job queue started",
		slog.String("backend", "memory"),
		slog.Int("workers", q.cfg.Workers),
		slog.Int("queue_size", q.cfg.QueueSize),
	)
	return nil
}

// Stop refuses new tasks and waits until queued and in-flight tasks are done.
func (q *MemoryQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	close(q.tasks)
	started := q.started
	q.mu.Unlock()

	if started {
		q.wg.Wait()
	}
	q.logger.Info("job queue stopped", slog.String("backend", "memory"))
}

func (q *MemoryQueue) Ping(context.Context) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.stopped {
		return ErrStopped
	}
	return nil
}

// Len returns the number of queued tasks not yet picked up.
func (q *MemoryQueue) Len() int { return len(q.tasks) }

func (q *MemoryQueue) worker() {
	defer q.wg.Done()
	for t := range q.tasks {
		q.process(t)
	}
}

// process runs t until it succeeds or runs out of attempts.
func (q *MemoryQueue) process(t Task) {
	for {
		log := q.taskLogger(t)
		ctx := slogx.WithContext(q.baseCtx, log.With(slog.String("component", "jobs")))

		err := q.execute(ctx, t)
		if err == nil {
			log.Debug("task completed")
			return
		}
		if t.Attempt >= q.maxAttempts {
			log.Error("task failed permanently", slog.Any("error", err))
			q.fail(ctx, t, err)
			return
		}

		log.Warn("task failed, retrying", slog.Any("error", err))
		if d := q.cfg.RetryDelay * time.Duration(t.Attempt); d > 0 {
			time.Sleep(d)
		}
		t.Attempt++
	}
}
