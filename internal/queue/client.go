package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/provreg/provreg/internal/config"
	"github.com/provreg/provreg/internal/usecase"
)

// Client wraps asynq.Client for enqueuing tasks
type Client struct {
	client *asynq.Client
}

// NewClient creates a new queue client
func NewClient(redisAddr string, redisPassword string) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	return &Client{
		client: client,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Publish enqueues a registry event for the worker; implements
// usecase.EventPublisher.
func (c *Client) Publish(ctx context.Context, ev usecase.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	task := asynq.NewTask(config.TASK_REGISTRY_EVENT, payload)

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	fmt.Printf("[Queue] Enqueued task: id=%s queue=%s\n", info.ID, info.Queue)
	return nil
}
