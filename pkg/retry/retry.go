package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/privy-stories/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64

	// IsPermanent reports errors that must not be retried. Nil retries everything.
	IsPermanent func(error) bool
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (c Config) policy(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.InitialInterval
	bo.MaxInterval = c.MaxInterval
	bo.Multiplier = c.Multiplier
	bo.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(bo, c.MaxRetries), ctx)
}

func (c Config) classify(err error) error {
	if err != nil && c.IsPermanent != nil && c.IsPermanent(err) {
		return backoff.Permanent(err)
	}
	return err
}

func notifier(log logger.Logger, operationName string) backoff.Notify {
	return func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}
}

func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	return backoff.RetryNotify(func() error {
		return cfg.classify(operation())
	}, cfg.policy(ctx), notifier(log, operationName))
}

// Fetch retries a read and returns the value of the first successful attempt.
func Fetch[T any](ctx context.Context, log logger.Logger, operationName string, cfg Config, operation func(ctx context.Context) (T, error)) (T, error) {
	return backoff.RetryNotifyWithData(func() (T, error) {
		v, err := operation(ctx)
		return v, cfg.classify(err)
	}, cfg.policy(ctx), notifier(log, operationName))
}
