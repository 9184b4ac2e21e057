package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/privy-stories/pkg/logger"
)

func fastConfig(retries uint64) Config {
	return Config{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), logger.Nop(), "flaky", func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	}, fastConfig(5))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDoStopsOnPermanent(t *testing.T) {
	errStop := errors.New("rejected")
	attempts := 0
	err := Do(context.Background(), logger.Nop(), "rejected", func() error {
		attempts++
		return Permanent(errStop)
	}, fastConfig(5))
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), logger.Nop(), "broken", func() error {
		attempts++
		return errors.New("down")
	}, fastConfig(2))
	if err == nil {
		t.Fatalf("expected error after retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 1 attempt + 2 retries, got %d", attempts)
	}
}

func TestFetchReturnsValueAfterRetries(t *testing.T) {
	attempts := 0
	got, err := Fetch(context.Background(), logger.Nop(), "flaky", fastConfig(3), func(context.Context) (string, error) {
		attempts++
		if attempts < 2 {
			return "", errors.New("not yet")
		}
		return "stories", nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "stories" || attempts != 2 {
		t.Fatalf("got %q after %d attempts", got, attempts)
	}
}

func TestFetchHonoursIsPermanent(t *testing.T) {
	errRejected := errors.New("rejected")
	cfg := fastConfig(5)
	cfg.IsPermanent = func(err error) bool { return errors.Is(err, errRejected) }

	attempts := 0
	_, err := Fetch(context.Background(), logger.Nop(), "rejected", cfg, func(context.Context) (int, error) {
		attempts++
		return 0, errRejected
	})
	if !errors.Is(err, errRejected) {
		t.Fatalf("expected errRejected, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}
