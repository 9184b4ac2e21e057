package fixture

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/privy-stories/internal/content"
	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/pkg/logger"
)

// Me is the viewer in sandbox mode.
var Me = domain.User{
	ID:          "u1",
	Username:    "user_story",
	DisplayName: "Your Story",
	Avatar:      "https://i.pravatar.cc/150?u=user_story",
}

// Provider serves static stories and keeps writes in memory, so a sandbox
// session behaves like a host would.
type Provider struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	logger  logger.Logger
	stories []*domain.Story
	mine    *domain.Story
}

func New(clock clockwork.Clock, log logger.Logger) *Provider {
	p := &Provider{
		clock:  clock,
		logger: log.WithComponent("FixtureContent"),
	}
	p.seed()
	return p
}

var _ content.Provider = (*Provider)(nil)

func (p *Provider) Sandboxed() bool { return true }

func (p *Provider) seed() {
	now := p.clock.Now()
	ago := func(d time.Duration) string {
		return strconv.FormatInt(now.Add(-d).Unix(), 10)
	}
	user := func(id, username, display string, verified bool) domain.User {
		return domain.User{
			ID:          id,
			Username:    username,
			DisplayName: display,
			Avatar:      "https://i.pravatar.cc/150?u=" + username,
			IsVerified:  verified,
		}
	}
	img := func(seed string) string {
		return "https://picsum.photos/seed/" + seed + "/720/1280"
	}

	p.stories = []*domain.Story{
		{
			ID:        "s1",
			User:      user("u2", "amara_x", "Amara", true),
			HasUnseen: true,
			Items: []domain.StoryItem{
				{ID: "s1-1", MediaURL: img("dunes"), MediaKind: domain.MediaKindImage, Caption: "Golden hour", Timestamp: ago(2 * time.Hour)},
				{ID: "s1-2", MediaURL: img("camp"), MediaKind: domain.MediaKindImage, Timestamp: ago(90 * time.Minute)},
			},
		},
		{
			ID:        "s2",
			User:      user("u3", "jason_dev", "Jason", false),
			HasUnseen: true,
			Items: []domain.StoryItem{
				{ID: "s2-1", MediaURL: "https://cdn.privy.test/clips/studio.mp4", MediaKind: domain.MediaKindVideo, Caption: "New studio setup", Timestamp: ago(5 * time.Hour)},
			},
		},
		{
			ID:        "s3",
			User:      user("u4", "elena_art", "Elena", false),
			HasUnseen: true,
			Items: []domain.StoryItem{
				{ID: "s3-1", MediaURL: img("canvas"), MediaKind: domain.MediaKindImage, Timestamp: ago(20 * time.Minute)},
				{ID: "s3-2", MediaURL: img("palette"), MediaKind: domain.MediaKindImage, Timestamp: ago(15 * time.Minute)},
				{ID: "s3-3", MediaURL: img("gallery"), MediaKind: domain.MediaKindImage, Caption: "Opening night", Timestamp: ago(3 * time.Minute)},
			},
		},
		{
			ID:        "s4",
			User:      user("u5", "markos", "Markos", false),
			HasUnseen: false,
			Items: []domain.StoryItem{
				{ID: "s4-1", MediaURL: img("harbour"), MediaKind: domain.MediaKindImage, Timestamp: ago(23 * time.Hour)},
			},
		},
	}

	p.mine = &domain.Story{
		ID:   "mine",
		User: Me,
		Items: []domain.StoryItem{
			{ID: "mine-1", MediaURL: img("desert"), MediaKind: domain.MediaKindImage, Caption: "Desert trip", Timestamp: ago(4 * time.Hour)},
			{ID: "mine-2", MediaURL: img("road"), MediaKind: domain.MediaKindImage, Timestamp: ago(time.Hour)},
		},
	}
}

func (p *Provider) FetchStories(_ context.Context) (content.StoryFetchResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stories := make([]*domain.Story, 0, len(p.stories))
	for _, s := range p.stories {
		stories = append(stories, s.Clone())
	}
	return content.StoryFetchResult{Stories: stories, Source: content.SourceFixture}, nil
}

func (p *Provider) FetchMyStory(_ context.Context) (*domain.Story, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mine.IsEmpty() {
		return nil, nil
	}
	return p.mine.Clone(), nil
}

func (p *Provider) DeleteStoryItem(_ context.Context, storyID, itemID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mine == nil || p.mine.ID != storyID || !p.mine.RemoveItem(itemID) {
		return fmt.Errorf("%w: %s/%s", content.ErrNotFound, storyID, itemID)
	}
	p.logger.Info("Fixture story item deleted", "story_id", storyID, "item_id", itemID)
	return nil
}

func (p *Provider) MarkStorySeen(_ context.Context, storyID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range p.stories {
		if s.ID == storyID {
			s.HasUnseen = false
			return nil
		}
	}
	return fmt.Errorf("%w: %s", content.ErrNotFound, storyID)
}

func (p *Provider) CreateStory(_ context.Context, req content.CreateStoryRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	kind := req.MediaKind
	if kind == "" {
		kind = domain.InferMediaKind(req.MediaURL)
	}
	if p.mine == nil {
		p.mine = &domain.Story{ID: "mine", User: Me}
	}
	p.mine.Items = append(p.mine.Items, domain.StoryItem{
		ID:        uuid.NewString(),
		MediaURL:  req.MediaURL,
		MediaKind: kind,
		Caption:   req.Caption,
		Timestamp: strconv.FormatInt(p.clock.Now().Unix(), 10),
	})
	return nil
}
