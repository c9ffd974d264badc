package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	Name        string           // Operation name for logging
	MaxRetries  int              // Maximum number of retry attempts
	BaseDelay   time.Duration    // Delay before the first retry
	MaxDelay    time.Duration    // Upper bound for any single delay
	Multiplier  float64          // Exponential backoff multiplier
	Jitter      bool             // Add up to 10% random jitter to each delay
	IsRetryable func(error) bool // Whether err is worth another attempt
}

// DefaultConfig returns the backoff used for startup connections
func DefaultConfig(name string) Config {
	return Config{
		Name:       name,
		MaxRetries: 5,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.IsRetryable == nil {
		config.IsRetryable = func(error) bool { return true }
	}
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{
		config: config,
		logger: l,
		sleep:  sleepContext,
	}
}

// Execute runs fn until it succeeds, fails with a non-retryable error,
// runs out of attempts or ctx is done.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.String("operation", r.config.Name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.config.IsRetryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Warn("Operation failed, retrying",
			logger.String("operation", r.config.Name),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	r.logger.Error("Operation failed after all retries",
		logger.String("operation", r.config.Name),
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxRetries+1))

	return fmt.Errorf("%s: retry limit exceeded after %d attempts: %w", r.config.Name, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
