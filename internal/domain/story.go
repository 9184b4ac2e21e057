package domain

import (
	"regexp"
	"strings"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

var videoSuffix = regexp.MustCompile(`(?i)\.(mp4|webm|ogg|mov)($|\?)`)

// InferMediaKind guesses the kind from the URL the camera or host handed us.
func InferMediaKind(url string) MediaKind {
	if videoSuffix.MatchString(url) || strings.Contains(url, "video") {
		return MediaKindVideo
	}
	return MediaKindImage
}

type StoryItem struct {
	ID        string
	MediaURL  string
	MediaKind MediaKind
	Caption   string // optional
	Timestamp string // raw host value, see formatter.ParseTimestamp
}

type Story struct {
	ID        string
	User      User
	Items     []StoryItem
	HasUnseen bool
}

// Clone copies the story and its item slice so the copy can be trimmed independently.
func (s *Story) Clone() *Story {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = append([]StoryItem(nil), s.Items...)
	return &c
}

func (s *Story) IsEmpty() bool {
	return s == nil || len(s.Items) == 0
}

// RemoveItem drops the item with the given id and reports whether it was present.
func (s *Story) RemoveItem(itemID string) bool {
	for i, item := range s.Items {
		if item.ID == itemID {
			s.Items = append(s.Items[:i:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}
