package feedimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/privy-stories/internal/content"
	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/internal/feed"
	"github.com/orgball2608/privy-stories/pkg/formatter"
	"github.com/samber/lo"
)

func (f *FeedImpl) Load(ctx context.Context) error {
	res, err := f.Content.FetchStories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load story rail: %w", err)
	}

	mine, mineErr := f.Content.FetchMyStory(ctx)
	if mineErr != nil {
		f.Logger.Warn("Failed to load my story, keeping the previous one", "error", mineErr)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	stories := f.prune(res.Stories)
	for _, s := range stories {
		if _, ok := f.seen[s.ID]; ok {
			s.HasUnseen = false
		}
	}
	f.stories = stories
	if mineErr == nil {
		f.mine = lo.FirstOrEmpty(f.prune([]*domain.Story{mine}))
	}
	f.loaded = true

	f.Logger.Info("Story rail loaded",
		"source", res.Source,
		"stories", len(f.stories),
		"skipped", res.Skipped,
		"my_items", len(lo.FromPtr(f.mine).Items))
	return nil
}

func (f *FeedImpl) Rail() feed.Rail {
	f.mu.Lock()
	defer f.mu.Unlock()

	return feed.Rail{
		Stories: cloneAll(f.stories),
		MyStory: f.mine.Clone(),
		Loaded:  f.loaded,
	}
}

func (f *FeedImpl) MyStoryAction() feed.MyStoryAction {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mine.IsEmpty() {
		return feed.ActionCreate
	}
	return feed.ActionView
}

func (f *FeedImpl) CreateStory(ctx context.Context, mediaURL, caption string) error {
	if mediaURL == "" {
		return feed.ErrEmptyMediaURL
	}

	req := content.CreateStoryRequest{
		MediaURL:  mediaURL,
		MediaKind: domain.InferMediaKind(mediaURL),
		Caption:   strings.TrimSpace(caption),
	}
	if err := f.Content.CreateStory(ctx, req); err != nil {
		return err
	}

	mine, err := f.Content.FetchMyStory(ctx)
	if err != nil {
		return fmt.Errorf("story created but reloading it failed: %w", err)
	}

	f.mu.Lock()
	f.mine = lo.FirstOrEmpty(f.prune([]*domain.Story{mine}))
	f.mu.Unlock()
	return nil
}

// prune drops items older than the story TTL and stories left without items.
// Items whose timestamp can't be parsed are kept.
func (f *FeedImpl) prune(stories []*domain.Story) []*domain.Story {
	now := f.Clock.Now()
	ttl := f.Config.Feed.StoryTTL

	out := lo.FilterMap(stories, func(s *domain.Story, _ int) (*domain.Story, bool) {
		if s == nil {
			return nil, false
		}
		s = s.Clone()
		if ttl > 0 {
			s.Items = lo.Filter(s.Items, func(item domain.StoryItem, _ int) bool {
				t, ok := formatter.ParseTimestamp(item.Timestamp)
				return !ok || now.Sub(t) < ttl
			})
		}
		return s, !s.IsEmpty()
	})
	return out
}

func cloneAll(stories []*domain.Story) []*domain.Story {
	return lo.Map(stories, func(s *domain.Story, _ int) *domain.Story {
		return s.Clone()
	})
}
