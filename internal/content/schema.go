package content

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/orgball2608/privy-stories/internal/domain"
)

// FlexString accepts a JSON string or number. The host sends numeric ids and
// epoch timestamps for some rows and strings for others.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("%w: %s is neither a string nor a number", ErrInvalidPayload, data)
	}
	*f = FlexString(data)
	return nil
}

type UserPayload struct {
	ID          FlexString `json:"id" validate:"required"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Avatar      string     `json:"avatar"`
	IsVerified  bool       `json:"is_verified"`
}

type StoryItemPayload struct {
	ID        FlexString `json:"id" validate:"required"`
	MediaURL  string     `json:"media_url" validate:"required"`
	Type      string     `json:"type" validate:"omitempty,oneof=image video"`
	Caption   string     `json:"caption"`
	CreatedAt FlexString `json:"created_at"`
}

type StoryPayload struct {
	ID        FlexString         `json:"id" validate:"required"`
	User      UserPayload        `json:"user"`
	HasUnseen bool               `json:"has_unseen"`
	Items     []StoryItemPayload `json:"items" validate:"-"`
}

type DeleteStoryItemRequest struct {
	StoryID string `json:"storyId"`
	ItemID  string `json:"itemId"`
}

type MarkStorySeenRequest struct {
	StoryID string `json:"storyId"`
}

type CreateStoryPayload struct {
	Type     string `json:"type"`
	MediaURL string `json:"mediaUrl"`
	Caption  string `json:"caption"`
}

type Ack struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (u UserPayload) ToDomain() domain.User {
	username := u.Username
	if username == "" {
		username = "unknown"
	}
	display := u.DisplayName
	if display == "" {
		display = u.Username
	}
	if display == "" {
		display = "Unknown"
	}
	return domain.User{
		ID:          string(u.ID),
		Username:    username,
		DisplayName: display,
		Avatar:      u.Avatar,
		IsVerified:  u.IsVerified,
	}
}

func (i StoryItemPayload) ToDomain() domain.StoryItem {
	kind := domain.MediaKind(strings.ToLower(i.Type))
	if kind == "" {
		kind = domain.InferMediaKind(i.MediaURL)
	}
	return domain.StoryItem{
		ID:        string(i.ID),
		MediaURL:  i.MediaURL,
		MediaKind: kind,
		Caption:   strings.TrimSpace(i.Caption),
		Timestamp: string(i.CreatedAt),
	}
}

// ToDomain maps the story header only; items are validated and mapped one by one by the caller.
func (s StoryPayload) ToDomain() *domain.Story {
	return &domain.Story{
		ID:        string(s.ID),
		User:      s.User.ToDomain(),
		HasUnseen: s.HasUnseen,
	}
}
