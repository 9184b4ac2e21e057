package storyplayer

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func blockUntilTickers(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, n); err != nil {
		t.Fatalf("waiting for %d tickers: %v", n, err)
	}
}

func TestClockSchedulerFiresUntilStopped(t *testing.T) {
	clock := clockwork.NewFakeClock()
	calls := make(chan struct{}, 8)

	h := NewClockScheduler(clock).Every(50*time.Millisecond, func() {
		calls <- struct{}{}
	})
	blockUntilTickers(t, clock, 1)

	clock.Advance(50 * time.Millisecond)
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a tick after advancing the clock")
	}

	h.Stop()
	h.Stop()

	clock.Advance(50 * time.Millisecond)
	select {
	case <-calls:
		t.Fatalf("stopped handle must not fire")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngineRunsOnClockTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	closed := make(chan Closed, 1)

	e, err := New(Opts{
		Stories:      makeStories(2),
		TickInterval: 50 * time.Millisecond,
		ItemDuration: 100 * time.Millisecond,
		Clock:        clock,
		OnClose:      func(c Closed) { closed <- c },
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	blockUntilTickers(t, clock, 1)
	clock.Advance(50 * time.Millisecond)
	waitUntil(t, "half progress", func() bool { return e.Progress() == 0.5 })

	clock.Advance(50 * time.Millisecond)
	waitUntil(t, "second item", func() bool {
		_, item := e.Position()
		return item == 1
	})

	e.Close()
	select {
	case c := <-closed:
		if c.Reason != ReasonUser {
			t.Fatalf("expected user close, got %s", c.Reason)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected close callback")
	}
	if e.TimerActive() {
		t.Fatalf("timer must be released on close")
	}
}
