// Package jobs runs background tasks such as keyword analysis and article
// generation outside the request that asked for them. Handlers report
// completion through the entity they work on; the queue only guarantees that
// a task runs, is retried, and that a final failure reaches the failure
// callback of its kind.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/metrics"
)

const (
	KindKeywordAnalyze  = "keyword.analyze"
	KindArticleGenerate = "article.generate"

	DefaultMaxAttempts = 3
)

var (
	ErrQueueFull   = errors.New("jobs: queue is full")
	ErrStopped     = errors.New("jobs: queue is stopped")
	ErrUnknownKind = errors.New("jobs: no handler registered for kind")
)

// Task is one unit of background work. EntityID names the row the handler
// operates on; Attempt starts at 1.
type Task struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	Attempt  int    `json:"attempt"`
}

// Handler processes a task. A returned error or a panic counts as a failed
// attempt.
type Handler func(ctx context.Context, t Task) error

// FailureFunc is called once a task has failed its final attempt.
type FailureFunc func(ctx context.Context, t Task, err error)

// Queue accepts tasks and runs them on background workers.
type Queue interface {
	Register(kind string, h Handler, onFailure FailureFunc)
	Enqueue(ctx context.Context, t Task) error
	Start(ctx context.Context) error
	Stop()
	// Ping reports whether the queue can accept work.
	Ping(ctx context.Context) error
}

type registration struct {
	handler   Handler
	onFailure FailureFunc
}

// registry is shared by the backends: it owns handler lookup, panic
// recovery and metrics.
type registry struct {
	mu          sync.RWMutex
	kinds       map[string]registration
	logger      *slog.Logger
	maxAttempts int
}

func newRegistry(logger *slog.Logger, maxAttempts int) *registry {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &registry{
		kinds:       make(map[string]registration),
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

func (r *registry) Register(kind string, h Handler, onFailure FailureFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = registration{handler: h, onFailure: onFailure}
}

func (r *registry) lookup(kind string) (registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.kinds[kind]
	return reg, ok
}

// prepare validates a task before it is queued.
func (r *registry) prepare(t Task) (Task, error) {
	if _, ok := r.lookup(t.Kind); !ok {
		return t, fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}
	if t.ID == "" {
		t.ID = idx.New().String()
	}
	if t.Attempt <= 0 {
		t.Attempt = 1
	}
	return t, nil
}

// execute runs one attempt of t, converting panics into errors.
func (r *registry) execute(ctx context.Context, t Task) (err error) {
	reg, ok := r.lookup(t.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("jobs: task panicked: %v", rec)
			r.logger.Error("task panicked",
				slog.String("task_id", t.ID),
				slog.String("kind", t.Kind),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
		}
		result := "succeeded"
		if err != nil {
			result = "failed"
		}
		metrics.RecordJob(t.Kind, result, time.Since(start))
	}()

	return reg.handler(ctx, t)
}

// fail invokes the failure callback of t's kind, guarding against panics.
func (r *registry) fail(ctx context.Context, t Task, cause error) {
	reg, ok := r.lookup(t.Kind)
	if !ok || reg.onFailure == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("task failure callback panicked",
				slog.String("task_id", t.ID),
				slog.String("kind", t.Kind),
				slog.Any("panic", rec),
			)
		}
	}()
	reg.onFailure(ctx, t, cause)
}

func (r *registry) taskLogger(t Task) *slog.Logger {
	return r.logger.With(
		slog.String("task_id", t.ID),
		slog.String("kind", t.Kind),
		slog.String("entity_id", t.EntityID),
		slog.Int("attempt", t.Attempt),
	)
}
