package autoplay

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/internal/feed"
	"github.com/orgball2608/privy-stories/internal/storyplayer"
	"github.com/orgball2608/privy-stories/pkg/config"
	"github.com/orgball2608/privy-stories/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

// Step is one frame the simulator saw.
type Step struct {
	StoryID   string
	ItemIndex int
	MediaKind string
	Label     string
}

// Result summarises one headless pass over the rail.
type Result struct {
	StartIndex int
	Steps      []Step
	Entered    []string
	Reason     storyplayer.CloseReason
}

type Opts struct {
	fx.In

	Feed   feed.Client
	Config *config.Config
	Logger logger.Logger
}

// Simulator plays the rail with no presentation attached, so timers,
// transitions and host writes can be watched from the logs.
type Simulator struct {
	Feed   feed.Client
	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *Simulator {
	return &Simulator{
		Feed:   opts.Feed,
		Config: opts.Config,
		Logger: opts.Logger.WithComponent("Autoplay"),
	}
}

func (s *Simulator) Enabled() bool {
	return s.Config.Autoplay.Enabled
}

// Run opens the first story with unseen content and blocks until the viewer
// closes or ctx ends, in which case the viewer is closed by the user.
func (s *Simulator) Run(ctx context.Context) (Result, error) {
	rail := s.Feed.Rail()
	if !rail.Loaded {
		if err := s.Feed.Load(ctx); err != nil {
			return Result{}, fmt.Errorf("autoplay: %w", err)
		}
		rail = s.Feed.Rail()
	}
	if len(rail.Stories) == 0 {
		return Result{}, fmt.Errorf("autoplay: %w", feed.ErrNoStory)
	}

	_, start, found := lo.FindIndexOf(rail.Stories, func(st *domain.Story) bool {
		return st.HasUnseen
	})
	if !found {
		start = 0
	}

	var (
		mu     sync.Mutex
		result = Result{StartIndex: start}
		done   = make(chan storyplayer.Closed, 1)
	)
	record := func(v storyplayer.View) {
		step := Step{
			StoryID:   v.StoryID,
			ItemIndex: v.ItemIndex,
			MediaKind: string(v.MediaKind),
			Label:     v.TimestampLabel,
		}
		mu.Lock()
		result.Steps = append(result.Steps, step)
		mu.Unlock()

		s.Logger.Info("Autoplay frame",
			"story_id", v.StoryID,
			"user", v.User.DisplayName,
			"item", fmt.Sprintf("%d/%d", v.ItemIndex+1, len(v.Progress)),
			"kind", v.MediaKind,
			"posted", v.TimestampLabel)
	}

	engine, err := s.Feed.OpenStory(start, feed.Observer{
		OnChange: record,
		OnClose: func(c storyplayer.Closed) {
			done <- c
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("autoplay: %w", err)
	}
	record(engine.View())

	var closed storyplayer.Closed
	select {
	case closed = <-done:
	case <-ctx.Done():
		engine.Close()
		closed = <-done
	}

	mu.Lock()
	defer mu.Unlock()
	result.Entered = closed.Viewed
	result.Reason = closed.Reason

	s.Logger.Info("Autoplay finished",
		"start_index", result.StartIndex,
		"frames", len(result.Steps),
		"entered", len(result.Entered),
		"reason", result.Reason)
	return result, nil
}
