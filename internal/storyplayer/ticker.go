package storyplayer

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler starts repeating callbacks. Each call to Every returns the only
// handle able to stop that callback.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

type Handle interface {
	Stop()
}

// ClockScheduler runs callbacks off clockwork tickers, one goroutine per handle.
type ClockScheduler struct {
	clock clockwork.Clock
}

func NewClockScheduler(clock clockwork.Clock) *ClockScheduler {
	return &ClockScheduler{clock: clock}
}

var _ Scheduler = (*ClockScheduler)(nil)

func (s *ClockScheduler) Every(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{
		ticker: s.clock.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go h.loop(fn)
	return h
}

type tickerHandle struct {
	ticker clockwork.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) loop(fn func()) {
	for {
		select {
		case <-h.done:
			return
		case <-h.ticker.Chan():
			select {
			case <-h.done:
				return
			default:
			}
			fn()
		}
	}
}

// Stop never blocks, so it is safe to call from inside fn.
func (h *tickerHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
