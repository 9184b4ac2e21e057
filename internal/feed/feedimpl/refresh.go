package feedimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/privy-stories/pkg/errors"
)

// ScheduleRefresh reloads the rail on FEED_REFRESH_INTERVAL until ctx is cancelled.
func (f *FeedImpl) ScheduleRefresh(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(
		gocron.WithClock(f.Clock),
		gocron.WithLogger(f.Logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(f.Config.Feed.RefreshInterval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				f.Logger.Info("Context cancelled, skipping story rail refresh")
				return
			}
			f.refresh(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule story rail refresh: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		f.Logger.Info("Stopping story rail refresh scheduler")
		if err := scheduler.Shutdown(); err != nil {
			f.Logger.Error("Failed to shut down refresh scheduler", "error", err)
		}
	}()

	return nil
}

func (f *FeedImpl) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := f.Load(refreshCtx); err != nil {
		f.Logger.Error("Story rail refresh failed", "event", errors.GetCode(err), "error", err)
	}
}
