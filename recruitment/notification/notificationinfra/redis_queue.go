package notificationinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/crewdesk/recruitment/notification"
	"github.com/redis/go-redis/v9"
)

// RedisQueue implements notification.Queue on a Redis list
type RedisQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisQueue creates a new Redis-based queue
func NewRedisQueue(client *redis.Client, queueName string) *RedisQueue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

var _ notification.Queue = (*RedisQueue)(nil)

// Enqueue adds a job to the queue
func (q *RedisQueue) Enqueue(ctx context.Context, job notification.DispatchJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal dispatch job for %s: %w", job.ApplicationID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return notification.ErrQueueFailed(err).WithDetail("application_id", job.ApplicationID.String())
	}

	return nil
}

// Dequeue pops the oldest job, blocking up to timeout
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*notification.DispatchJob, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when timeout occurs
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, notification.ErrQueueFailed(err).WithDetail("operation", "dequeue")
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var job notification.DispatchJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, fmt.Errorf("unmarshal dispatch job %q: %w", result[1], err)
	}

	return &job, nil
}

// Size returns the number of jobs waiting
func (q *RedisQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// Ping checks if Redis connection is alive
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
