package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// RedisConfig tunes the redis streams backend.
type RedisConfig struct {
	Stream      string        // defaults to "seodesk:jobs"
	Group       string        // defaults to "seodesk"
	Consumer    string        // defaults to hostname-pid
	Workers     int           // concurrent readers
	Block       time.Duration // XREADGROUP block time
	MaxAttempts int

	// Pending entries idle for longer than MinIdle belong to a consumer that
	// died or failed to requeue. They are claimed every ReclaimInterval.
	MinIdle         time.Duration // defaults to 5m
	ReclaimInterval time.Duration // defaults to 1m
	ReclaimBatch    int64         // defaults to 16
}

// DLQStream is where tasks land after their final failed attempt.
func (c RedisConfig) DLQStream() string { return c.Stream + ":dlq" }

// RedisQueue stores tasks in a redis stream read by a consumer group, so
// tasks survive restarts and can be shared by several replicas.
type RedisQueue struct {
	*registry
	client *redis.Client
	cfg    RedisConfig

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	wg      sync.WaitGroup
}

func NewRedisQueue(client *redis.Client, cfg RedisConfig, logger *slog.Logger) *RedisQueue {
	if cfg.Stream == "" {
		cfg.Stream = "seodesk:jobs"
	}
	if cfg.Group == "" {
		cfg.Group = "seodesk"
	}
	if cfg.Consumer == "" {
		host, _ := os.Hostname()
		cfg.Consumer = fmt.Sprintf("%s-%d", host, os.Getpid())
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Block <= 0 {
		cfg.Block = 2 * time.Second
	}
	if cfg.MinIdle <= 0 {
		cfg.MinIdle = 5 * time.Minute
	}
	if cfg.ReclaimInterval <= 0 {
		cfg.ReclaimInterval = time.Minute
	}
	if cfg.ReclaimBatch <= 0 {
		cfg.ReclaimBatch = 16
	}
	return &RedisQueue{
		registry: newRegistry(logger, cfg.MaxAttempts),
		client:   client,
		cfg:      cfg,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, t Task) error {
	t, err := q.prepare(t)
	if err != nil {
		return err
	}

	q.mu.Lock()
	stopped := q.stopped
	q.mu.Unlock()
	if stopped {
		return ErrStopped
	}

	if err := q.add(ctx, q.cfg.Stream, taskValues(t)); err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	slogx.FromContext(ctx).Debug("task enqueued",
		slog.String("task_id", t.ID),
		slog.String("kind", t.Kind),
		slog.String("stream", q.cfg.Stream),
	)
	return nil
}

func (q *RedisQueue) add(ctx context.Context, stream string, values map[string]any) error {
	return q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Err()
}

// Start creates the consumer group when missing and launches the readers.
func (q *RedisQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return ErrStopped
	}
	if q.cancel != nil {
		return nil
	}

	// Starting from "0" keeps tasks that were added before the group existed.
	err := q.client.XGroupCreateMkStream(ctx, q.cfg.Stream, q.cfg.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("creating consumer group: %w", err)
	}

	readCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	q.cancel = cancel

	for i := 0; i < q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.reader(readCtx, fmt.Sprintf("%s-%d", q.cfg.Consumer, i))
	}
	q.wg.Add(1)
	go q.reclaimer(readCtx)

	q.logger.Info("job queue started",
		slog.String("backend", "redis"),
		slog.String("stream", q.cfg.Stream),
		slog.String("group", q.cfg.Group),
		slog.Int("workers", q.cfg.Workers),
	)
	return nil
}

// Stop stops reading new tasks and waits for in-flight ones to finish.
// Unread tasks stay in the stream for the next start.
func (q *RedisQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	cancel := q.cancel
	q.mu.Unlock()

	if cancel != nil {
		cancel()
		q.wg.Wait()
	}
	q.logger.Info("job queue stopped", slog.String("backend", "redis"))
}

func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *RedisQueue) reader(ctx context.Context, consumer string) {
	defer q.wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.cfg.Group,
			Consumer: consumer,
			Streams:  []string{q.cfg.Stream, ">"},
			Count:    1,
			Block:    q.cfg.Block,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			q.logger.Error("reading job stream", slog.Any("error", err))
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				// Handlers run detached from the reader context so Stop lets
				// the current task finish.
				q.handle(context.WithoutCancel(ctx), msg)
			}
		}
	}
}

func (q *RedisQueue) reclaimer(ctx context.Context) {
	defer q.wg.Done()

	ticker := time.NewTicker(q.cfg.ReclaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := q.reclaimOnce(ctx); err != nil && ctx.Err() == nil {
				q.logger.Error("reclaiming pending tasks", slog.Any("error", err))
			}
		}
	}
}

// reclaimOnce claims pending entries idle for at least MinIdle and runs them
// again. An entry already delivered MaxAttempts times is dead-lettered so the
// failure callback still fires for it.
func (q *RedisQueue) reclaimOnce(ctx context.Context) error {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.cfg.Stream,
		Group:  q.cfg.Group,
		Idle:   q.cfg.MinIdle,
		Start:  "-",
		End:    "+",
		Count:  q.cfg.ReclaimBatch,
	}).Result()
	if err != nil {
		return fmt.Errorf("xpending: %w", err)
	}

	for _, p := range pending {
		if ctx.Err() != nil {
			return nil
		}
		msgs, err := q.client.XClaim(ctx, &redis.XClaimArgs{
			Stream:   q.cfg.Stream,
			Group:    q.cfg.Group,
			Consumer: q.cfg.Consumer,
			MinIdle:  q.cfg.MinIdle,
			Messages: []string{p.ID},
		}).Result()
		if err != nil {
			q.logger.Error("claiming pending task",
				slog.String("message_id", p.ID),
				slog.String("consumer", p.Consumer),
				slog.Any("error", err),
			)
			continue
		}
		if len(msgs) == 0 {
			// Another replica claimed it first, or it was trimmed.
			continue
		}

		q.logger.Info("reclaimed pending task",
			slog.String("message_id", p.ID),
			slog.String("consumer", p.Consumer),
			slog.Duration("idle", p.Idle),
			slog.Int64("deliveries", p.RetryCount),
		)

		taskCtx := context.WithoutCancel(ctx)
		if p.RetryCount >= int64(q.maxAttempts) {
			q.abandon(taskCtx, msgs[0], p.RetryCount)
			continue
		}
		q.handle(taskCtx, msgs[0])
	}
	return nil
}

// abandon dead-letters a task that keeps getting stuck without a result.
func (q *RedisQueue) abandon(ctx context.Context, msg redis.XMessage, deliveries int64) {
	t, err := parseTask(msg)
	if err != nil {
		q.logger.Error("dropping malformed task",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		q.ack(ctx, msg.ID)
		return
	}

	cause := fmt.Errorf("jobs: task abandoned after %d deliveries", deliveries)
	q.taskLogger(t).Error("task failed permanently", slog.Any("error", cause))

	values := taskValues(t)
	values["error"] = cause.Error()
	if err := q.add(ctx, q.cfg.DLQStream(), values); err != nil {
		q.logger.Error("dead-lettering task failed", slog.String("message_id", msg.ID), slog.Any("error", err))
	}
	q.ack(ctx, msg.ID)
	q.fail(ctx, t, cause)
}

func (q *RedisQueue) handle(ctx context.Context, msg redis.XMessage) {
	t, err := parseTask(msg)
	if err != nil {
		q.logger.Error("dropping malformed task",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		q.ack(ctx, msg.ID)
		return
	}

	log := q.taskLogger(t)
	ctx = slogx.WithContext(ctx, log.With(slog.String("component", "jobs")))

	runErr := q.execute(ctx, t)
	switch {
	case runErr == nil:
		log.Debug("task completed")
		q.ack(ctx, msg.ID)

	case t.Attempt < q.maxAttempts:
		log.Warn("task failed, requeueing", slog.Any("error", runErr))
		next := t
		next.Attempt++
		values := taskValues(next)
		values["last_error"] = runErr.Error()
		if err := q.add(ctx, q.cfg.Stream, values); err != nil {
			// Stays pending; reclaimOnce picks it up after MinIdle.
			log.Error("requeue failed", slog.Any("error", err))
			return
		}
		q.ack(ctx, msg.ID)

	default:
		log.Error("task failed permanently", slog.Any("error", runErr))
		values := taskValues(t)
		values["error"] = runErr.Error()
		if err := q.add(ctx, q.cfg.DLQStream(), values); err != nil {
			log.Error("dead-lettering task failed", slog.Any("error", err))
		}
		q.ack(ctx, msg.ID)
		q.fail(ctx, t, runErr)
	}
}

func (q *RedisQueue) ack(ctx context.Context, id string) {
	if err := q.client.XAck(ctx, q.cfg.Stream, q.cfg.Group, id).Err(); err != nil {
		q.logger.Error("acknowledging task", slog.String("message_id", id), slog.Any("error", err))
	}
}

func taskValues(t Task) map[string]any {
	return map[string]any{
		"id":        t.ID,
		"kind":      t.Kind,
		"entity_id": t.EntityID,
		"attempt":   t.Attempt,
	}
}

func parseTask(msg redis.XMessage) (Task, error) {
	str := func(key string) string {
		v, _ := msg.Values[key].(string)
		return v
	}

	t := Task{
		ID:       str("id"),
		Kind:     str("kind"),
		EntityID: str("entity_id"),
	}
	if t.Kind == "" {
		return Task{}, errors.New("missing kind")
	}
	if t.ID == "" {
		t.ID = msg.ID
	}

	t.Attempt = 1
	if raw := str("attempt"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Task{}, fmt.Errorf("invalid attempt %q: %w", raw, err)
		}
		if n > 0 {
			t.Attempt = n
		}
	}
	return t, nil
}
