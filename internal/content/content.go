package content

import (
	"context"
	"errors"

	"github.com/orgball2608/privy-stories/internal/domain"
)

// Host events used by the stories screens.
const (
	EventGetStories      = "getStories"
	EventGetMyStory      = "getMyStory"
	EventDeleteStoryItem = "deleteStoryItem"
	EventMarkStorySeen   = "markStorySeen"
	EventCreateStory     = "createStory"
)

var (
	ErrInvalidPayload = errors.New("invalid host payload")
	ErrNotFound       = errors.New("story content not found")
)

type Source string

const (
	SourceHost    Source = "host"
	SourceFixture Source = "fixture"
)

type StoryFetchResult struct {
	Stories []*domain.Story
	Source  Source
	Skipped int // entries dropped at the boundary
}

type CreateStoryRequest struct {
	MediaURL  string
	MediaKind domain.MediaKind
	Caption   string
}

//go:generate go run go.uber.org/mock/mockgen -source=content.go -destination=mocks/mock.go

// Provider is the data source behind the stories screens. It is chosen once
// at start-up: the host bridge, or static fixtures outside the host.
type Provider interface {
	FetchStories(ctx context.Context) (StoryFetchResult, error)
	// FetchMyStory returns nil when the viewer has nothing posted.
	FetchMyStory(ctx context.Context) (*domain.Story, error)
	DeleteStoryItem(ctx context.Context, storyID, itemID string) error
	MarkStorySeen(ctx context.Context, storyID string) error
	CreateStory(ctx context.Context, req CreateStoryRequest) error
	Sandboxed() bool
}
