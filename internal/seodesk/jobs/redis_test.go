package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/seodesk/pkg/slogx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestParseTask(t *testing.T) {
	t.Parallel()

	task, err := parseTask(redis.XMessage{ID: "1-0", Values: map[string]any{
		"id": "t1", "kind": KindKeywordAnalyze, "entity_id": "kw", "attempt": "2",
	}})
	require.NoError(t, err)
	require.Equal(t, Task{ID: "t1", Kind: KindKeywordAnalyze, EntityID: "kw", Attempt: 2}, task)

	task, err = parseTask(redis.XMessage{ID: "1-1", Values: map[string]any{"kind": KindKeywordAnalyze}})
	require.NoError(t, err)
	require.Equal(t, "1-1", task.ID)
	require.Equal(t, 1, task.Attempt)

	_, err = parseTask(redis.XMessage{ID: "1-2", Values: map[string]any{}})
	require.Error(t, err)

	_, err = parseTask(redis.XMessage{ID: "1-3", Values: map[string]any{"kind": "x", "attempt": "two"}})
	require.Error(t, err)
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisQueue(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	q := NewRedisQueue(client, RedisConfig{
		Stream:      "test:jobs",
		Group:       "test",
		Workers:     1,
		Block:       100 * time.Millisecond,
		MaxAttempts: 2,
	}, slogx.Discard())
	t.Cleanup(q.Stop)

	var mu sync.Mutex
	done := map[string]int{}
	failed := make(chan Task, 1)

	q.Register(KindKeywordAnalyze, func(_ context.Context, task Task) error {
		mu.Lock()
		defer mu.Unlock()
		done[task.EntityID] = task.Attempt
		return nil
	}, nil)
	q.Register(KindArticleGenerate, func(context.Context, Task) error {
		return errors.New("provider down")
	}, func(_ context.Context, task Task, _ error) {
		failed <- task
	})

	require.NoError(t, q.Start(ctx))
	require.NoError(t, q.Ping(ctx))

	require.NoError(t, q.Enqueue(ctx, Task{Kind: KindKeywordAnalyze, EntityID: "kw-1"}))
	require.NoError(t, q.Enqueue(ctx, Task{Kind: KindArticleGenerate, EntityID: "art-1"}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return done["kw-1"] == 1
	}, 10*time.Second, 50*time.Millisecond)

	select {
	case task := <-failed:
		require.Equal(t, "art-1", task.EntityID)
		require.Equal(t, 2, task.Attempt)
	case <-time.After(10 * time.Second):
		t.Fatal("failure callback was not called")
	}

	dlq, err := client.XRange(ctx, "test:jobs:dlq", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, dlq, 1)
	require.Equal(t, "art-1", dlq[0].Values["entity_id"])
	require.Equal(t, "provider down", dlq[0].Values["error"])
}

func TestRedisQueueReclaimsStalePending(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	// deliver leaves a task pending on a consumer that never acknowledges it.
	deliver := func(t *testing.T, stream, group string, task Task) {
		t.Helper()
		require.NoError(t, client.XGroupCreateMkStream(ctx, stream, group, "0").Err())
		require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: taskValues(task)}).Err())
		got, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: "crashed-1",
			Streams:  []string{stream, ">"},
			Count:    1,
		}).Result()
		require.NoError(t, err)
		require.Len(t, got[0].Messages, 1)
	}

	newQueue := func(stream, group string, maxAttempts int) *RedisQueue {
		return NewRedisQueue(client, RedisConfig{
			Stream:      stream,
			Group:       group,
			Consumer:    "survivor",
			MinIdle:     10 * time.Millisecond,
			MaxAttempts: maxAttempts,
		}, slogx.Discard())
	}

	t.Run("runs a task orphaned by a dead consumer", func(t *testing.T) {
		q := newQueue("reclaim:jobs", "reclaim", 3)
		var ran []Task
		q.Register(KindArticleGenerate, func(_ context.Context, task Task) error {
			ran = append(ran, task)
			return nil
		}, nil)

		deliver(t, "reclaim:jobs", "reclaim", Task{ID: "t1", Kind: KindArticleGenerate, EntityID: "art-1", Attempt: 1})
		time.Sleep(50 * time.Millisecond)

		require.NoError(t, q.reclaimOnce(ctx))
		require.Len(t, ran, 1)
		require.Equal(t, "art-1", ran[0].EntityID)

		pending, err := client.XPending(ctx, "reclaim:jobs", "reclaim").Result()
		require.NoError(t, err)
		require.Zero(t, pending.Count)
	})

	t.Run("leaves fresh pending entries alone", func(t *testing.T) {
		q := NewRedisQueue(client, RedisConfig{
			Stream:  "fresh:jobs",
			Group:   "fresh",
			MinIdle: time.Hour,
		}, slogx.Discard())
		ran := 0
		q.Register(KindKeywordAnalyze, func(context.Context, Task) error {
			ran++
			return nil
		}, nil)

		deliver(t, "fresh:jobs", "fresh", Task{ID: "t2", Kind: KindKeywordAnalyze, EntityID: "kw-1", Attempt: 1})

		require.NoError(t, q.reclaimOnce(ctx))
		require.Zero(t, ran)
	})

	t.Run("dead-letters a task stuck for every attempt", func(t *testing.T) {
		q := newQueue("stuck:jobs", "stuck", 2)
		ran := 0
		var failedTask Task
		var failedErr error
		q.Register(KindArticleGenerate, func(context.Context, Task) error {
			ran++
			return nil
		}, func(_ context.Context, task Task, err error) {
			failedTask, failedErr = task, err
		})

		deliver(t, "stuck:jobs", "stuck", Task{ID: "t3", Kind: KindArticleGenerate, EntityID: "art-2", Attempt: 1})

		// A second consumer also took it and died.
		pending, err := client.XPendingExt(ctx, &redis.XPendingExtArgs{
			Stream: "stuck:jobs", Group: "stuck", Start: "-", End: "+", Count: 1,
		}).Result()
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.NoError(t, client.XClaim(ctx, &redis.XClaimArgs{
			Stream: "stuck:jobs", Group: "stuck", Consumer: "crashed-2", Messages: []string{pending[0].ID},
		}).Err())
		time.Sleep(50 * time.Millisecond)

		require.NoError(t, q.reclaimOnce(ctx))
		require.Zero(t, ran)
		require.Equal(t, "art-2", failedTask.EntityID)
		require.ErrorContains(t, failedErr, "abandoned after 2 deliveries")

		dlq, err := client.XRange(ctx, "stuck:jobs:dlq", "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, dlq, 1)
		require.Equal(t, "art-2", dlq[0].Values["entity_id"])

		left, err := client.XPending(ctx, "stuck:jobs", "stuck").Result()
		require.NoError(t, err)
		require.Zero(t, left.Count)
	})
}
