// Package queue provides at-least-once job delivery with a durable
// postgres backend and an in-process memory backend. The client tries
// backends in priority order so a database outage degrades delivery
// instead of dropping webhooks.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// Backend is one job delivery mechanism
type Backend interface {
	Name() string
	Enqueue(ctx context.Context, topic string, payload []byte) error
	Subscribe(topic string, handler domain.JobHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Client implements domain.JobQueue over an ordered list of backends.
// Enqueue walks the list until one accepts the job; handlers are
// registered on every backend so fallback jobs are still processed.
type Client struct {
	backends []Backend
	logger   logger.Logger
}

// NewClient creates a queue client. Backends are tried in the order
// given; the caller decides the priority (postgres first in auto mode).
func NewClient(log logger.Logger, backends ...Backend) *Client {
	return &Client{
		backends: backends,
		logger:   log,
	}
}

// Enqueue durably writes a job and reports which backend took it
func (c *Client) Enqueue(ctx context.Context, topic string, payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	var lastErr error
	for _, backend := range c.backends {
		if err := backend.Enqueue(ctx, topic, data); err != nil {
			lastErr = err
			c.logger.WithFields(map[string]interface{}{
				"backend": backend.Name(),
				"topic":   topic,
				"error":   err.Error(),
			}).Warn("Queue backend rejected job, trying next")
			continue
		}
		return backend.Name(), nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrQueueUnavailable, lastErr)
	}
	return "", domain.ErrQueueUnavailable
}

// Subscribe registers the handler on every backend
func (c *Client) Subscribe(topic string, handler domain.JobHandler) {
	for _, backend := range c.backends {
		backend.Subscribe(topic, handler)
	}
}

// Start launches the workers of every backend
func (c *Client) Start(ctx context.Context) error {
	for _, backend := range c.backends {
		if err := backend.Start(ctx); err != nil {
			return fmt.Errorf("failed to start %s backend: %w", backend.Name(), err)
		}
		c.logger.WithField("backend", backend.Name()).Info("Queue backend started")
	}
	return nil
}

// Stop drains the workers of every backend
func (c *Client) Stop(ctx context.Context) error {
	var lastErr error
	for _, backend := range c.backends {
		if err := backend.Stop(ctx); err != nil {
			lastErr = err
			c.logger.WithFields(map[string]interface{}{
				"backend": backend.Name(),
				"error":   err.Error(),
			}).Error("Failed to stop queue backend")
		}
	}
	return lastErr
}
