package feed

import (
	"context"
	"errors"

	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/internal/storyplayer"
)

var (
	ErrNoStory       = errors.New("no story to open")
	ErrStoryIndex    = errors.New("story index out of range")
	ErrEmptyMediaURL = errors.New("media url is required")
	ErrFeedClosed    = errors.New("feed is closed")
)

// MyStoryAction is what tapping the viewer's own avatar on the rail does.
type MyStoryAction string

const (
	ActionView   MyStoryAction = "view"
	ActionCreate MyStoryAction = "create"
)

// Observer receives a viewer's transitions. OnClose runs after the feed has
// applied the close to its own state.
type Observer struct {
	OnChange func(storyplayer.View)
	OnClose  func(storyplayer.Closed)
}

type Rail struct {
	Stories []*domain.Story
	MyStory *domain.Story
	Loaded  bool
}

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go

type Client interface {
	Load(ctx context.Context) error
	Rail() Rail
	MyStoryAction() MyStoryAction
	OpenStory(index int, obs Observer) (*storyplayer.Engine, error)
	OpenMyStory(obs Observer) (*storyplayer.Engine, error)
	CreateStory(ctx context.Context, mediaURL, caption string) error
	ScheduleRefresh(ctx context.Context) error
	Close()
}
