package llm

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryClient is a decorator that retries transient failures with exponential
// backoff and jitter before delegating to the wrapped Client.
type RetryClient struct {
	inner      Client
	maxRetries int
	baseDelay  time.Duration
	logger     logrus.FieldLogger
	sleep      func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Client with retry logic.
// maxRetries is the number of additional attempts after the first failure; 0 disables retrying.
// baseDelay is the delay before the first retry, doubled on each subsequent retry.
func WithRetry(inner Client, maxRetries int, baseDelay time.Duration, logger logrus.FieldLogger) Client {
	if maxRetries <= 0 {
		return inner
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &RetryClient{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
		sleep:      sleepContext,
	}
}

// Complete attempts the completion, retrying on transport and quota errors.
func (c *RetryClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	text, err := c.inner.Complete(ctx, model, messages)
	if err == nil || !IsRetryable(err) {
		return text, err
	}

	lastErr := err
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		delay := c.backoffDelay(attempt)

		c.logger.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": c.maxRetries,
			"delay":       delay,
			"model":       model,
		}).WithError(lastErr).Warn("retrying completion after transient error")

		if err := c.sleep(ctx, delay); err != nil {
			return "", fmt.Errorf("retry cancelled: %w", err)
		}

		text, err = c.inner.Complete(ctx, model, messages)
		if err == nil {
			return text, nil
		}
		if !IsRetryable(err) {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("after %d attempts: %w", c.maxRetries+1, lastErr)
}

// ListModels delegates without retrying
func (c *RetryClient) ListModels(ctx context.Context) ([]string, error) {
	return c.inner.ListModels(ctx)
}

// Close closes the wrapped client
func (c *RetryClient) Close() error {
	return c.inner.Close()
}

// backoffDelay computes the delay for a given attempt with ±30% jitter.
func (c *RetryClient) backoffDelay(attempt int) time.Duration {
	delay := c.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}

	jitter := float64(delay) * 0.3
	return time.Duration(float64(delay) + (rand.Float64()*2-1)*jitter)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
