package storyplayer

import (
	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/pkg/formatter"
)

// View is what the presentation layer needs to draw the current frame.
type View struct {
	StoryID    string
	StoryIndex int
	ItemIndex  int
	User       domain.User
	Item       domain.StoryItem

	MediaURL       string
	MediaKind      domain.MediaKind
	Caption        string
	TimestampLabel string

	// One fill ratio per item of the current story.
	Progress []float64

	State       State
	TimerActive bool
}

func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewLocked()
}

func (e *Engine) viewLocked() View {
	story := e.stories[e.storyIndex]

	v := View{
		StoryID:     story.ID,
		StoryIndex:  e.storyIndex,
		ItemIndex:   e.itemIndex,
		User:        story.User,
		Progress:    make([]float64, len(story.Items)),
		State:       e.stateLocked(),
		TimerActive: e.timer != nil,
	}

	for i := range story.Items {
		switch {
		case i < e.itemIndex:
			v.Progress[i] = 1
		case i == e.itemIndex:
			v.Progress[i] = e.progressLocked()
		}
	}

	// A depleted last story is only observable after close.
	if e.itemIndex >= len(story.Items) {
		return v
	}

	item := story.Items[e.itemIndex]
	v.Item = item
	v.MediaURL = item.MediaURL
	v.MediaKind = item.MediaKind
	if v.MediaKind == "" {
		v.MediaKind = domain.InferMediaKind(item.MediaURL)
	}
	v.Caption = item.Caption
	v.TimestampLabel = formatter.RelativeTime(item.Timestamp, e.clock.Now())
	return v
}
