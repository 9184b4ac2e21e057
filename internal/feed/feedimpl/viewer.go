package feedimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/internal/feed"
	"github.com/orgball2608/privy-stories/internal/storyplayer"
)

// session ties engine callbacks to the viewer that produced them, so a
// late close from a replaced viewer can't clear the current one.
type session struct {
	engine *storyplayer.Engine
}

func (f *FeedImpl) OpenStory(index int, obs feed.Observer) (*storyplayer.Engine, error) {
	f.mu.Lock()
	if index < 0 || index >= len(f.stories) {
		n := len(f.stories)
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: %d of %d", feed.ErrStoryIndex, index, n)
	}
	stories := cloneAll(f.stories)
	f.mu.Unlock()

	return f.open(stories, index, false, obs)
}

func (f *FeedImpl) OpenMyStory(obs feed.Observer) (*storyplayer.Engine, error) {
	f.mu.Lock()
	if f.mine.IsEmpty() {
		f.mu.Unlock()
		return nil, feed.ErrNoStory
	}
	mine := f.mine.Clone()
	f.mu.Unlock()

	return f.open([]*domain.Story{mine}, 0, true, obs)
}

// open installs the new viewer and displaces the current one under one lock,
// then closes the displaced engine outside it. Its close callbacks may open
// yet another viewer, which in turn displaces this one.
func (f *FeedImpl) open(stories []*domain.Story, index int, own bool, obs feed.Observer) (*storyplayer.Engine, error) {
	s := &session{}
	opts := storyplayer.Opts{
		Stories:      stories,
		InitialIndex: index,
		IsOwnStory:   own,
		OnChange:     obs.OnChange,
		OnClose: func(c storyplayer.Closed) {
			f.handleClose(s, c)
			if obs.OnClose != nil {
				obs.OnClose(c)
			}
		},
		TickInterval: f.Config.Player.TickInterval,
		ItemDuration: f.Config.Player.ItemDuration,
		Clock:        f.Clock,
		Logger:       f.Logger.WithComponent("StoryPlayer"),
	}
	if own {
		opts.OnDeleteItem = f.handleDelete
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, feed.ErrFeedClosed
	}
	engine, err := storyplayer.New(opts)
	if err != nil {
		f.mu.Unlock()
		return nil, fmt.Errorf("failed to open story viewer: %w", err)
	}
	s.engine = engine
	displaced := f.active
	f.active = s
	f.mu.Unlock()

	f.Logger.Info("Story viewer opened", "story_id", stories[index].ID, "own", own)

	if displaced != nil {
		displaced.engine.Close()
	}
	return engine, nil
}

func (f *FeedImpl) handleClose(s *session, c storyplayer.Closed) {
	f.mu.Lock()
	if f.active == s {
		f.active = nil
	}

	var newlySeen []string
	if !c.OwnStory {
		for _, id := range c.Viewed {
			f.seen[id] = struct{}{}
			for _, story := range f.stories {
				if story.ID == id && story.HasUnseen {
					story.HasUnseen = false
					newlySeen = append(newlySeen, id)
				}
			}
		}
	}
	f.mu.Unlock()

	f.Logger.Info("Story viewer closed", "reason", c.Reason, "last_story", c.StoryID, "newly_seen", len(newlySeen))

	for _, id := range newlySeen {
		storyID := id
		f.dispatch("markStorySeen", func(ctx context.Context) error {
			return f.Content.MarkStorySeen(ctx, storyID)
		})
	}
}

func (f *FeedImpl) handleDelete(storyID, itemID string) {
	f.mu.Lock()
	if f.mine != nil && f.mine.ID == storyID {
		f.mine.RemoveItem(itemID)
		if f.mine.IsEmpty() {
			f.mine = nil
		}
	}
	f.mu.Unlock()

	f.dispatch("deleteStoryItem", func(ctx context.Context) error {
		return f.Content.DeleteStoryItem(ctx, storyID, itemID)
	})
}
