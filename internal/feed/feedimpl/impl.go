package feedimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/privy-stories/internal/content"
	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/internal/feed"
	"github.com/orgball2608/privy-stories/pkg/config"
	"github.com/orgball2608/privy-stories/pkg/errors"
	"github.com/orgball2608/privy-stories/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

const hostWriteTimeout = 30 * time.Second

type Opts struct {
	fx.In

	LC      fx.Lifecycle
	Content content.Provider
	Config  *config.Config
	Logger  logger.Logger
	Clock   clockwork.Clock
}

// FeedImpl owns the story rail the way the home screen does: it holds the
// story list, opens viewers over it and applies what the viewers report back.
type FeedImpl struct {
	Content content.Provider
	Config  *config.Config
	Logger  logger.Logger
	Clock   clockwork.Clock

	pool *ants.Pool
	wg   sync.WaitGroup

	mu       sync.Mutex
	stories  []*domain.Story
	mine     *domain.Story
	seen     map[string]struct{}
	loaded   bool
	active   *session
	closed   bool
	draining bool
}

func New(opts Opts) (*FeedImpl, error) {
	workers := opts.Config.Feed.Workers
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create host write pool: %w", err)
	}

	f := &FeedImpl{
		Content: opts.Content,
		Config:  opts.Config,
		Logger:  opts.Logger.WithComponent("Feed"),
		Clock:   opts.Clock,
		pool:    pool,
		seen:    make(map[string]struct{}),
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(context.Context) error {
			f.Close()
			return nil
		},
	})
	return f, nil
}

var _ feed.Client = (*FeedImpl)(nil)

// Close shuts the open viewer, waits for queued host writes and releases the pool.
func (f *FeedImpl) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	active := f.active
	f.active = nil
	f.mu.Unlock()

	// the last viewer's close still queues its seen marks
	if active != nil {
		active.engine.Close()
	}

	f.mu.Lock()
	f.draining = true
	f.mu.Unlock()

	f.wg.Wait()
	f.pool.Release()
	f.Logger.Info("Feed closed")
}

// dispatch runs a host write on the pool without blocking the caller.
// Failures are logged and never rolled back.
func (f *FeedImpl) dispatch(op string, fn func(ctx context.Context) error) {
	f.mu.Lock()
	if f.draining {
		f.mu.Unlock()
		f.Logger.Warn("Feed closed, dropping host write", "op", op)
		return
	}
	f.wg.Add(1)
	f.mu.Unlock()

	err := f.pool.Submit(func() {
		defer f.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), hostWriteTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			f.Logger.Error("Host write failed", "op", op, "event", errors.GetCode(err), "error", err)
			return
		}
		f.Logger.Debug("Host write done", "op", op)
	})
	if err != nil {
		f.wg.Done()
		f.Logger.Error("Failed to submit host write", "op", op, "error", err)
	}
}
