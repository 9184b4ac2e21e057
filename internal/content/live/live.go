package live

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/orgball2608/privy-stories/internal/bridge"
	"github.com/orgball2608/privy-stories/internal/content"
	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/pkg/logger"
	"github.com/orgball2608/privy-stories/pkg/retry"
)

// Provider reads and writes story content through the host bridge.
type Provider struct {
	caller   bridge.Caller
	logger   logger.Logger
	retryCfg retry.Config
	validate *validator.Validate
}

// New retries reads with retryCfg. A host rejection is never retried.
func New(caller bridge.Caller, log logger.Logger, retryCfg retry.Config) *Provider {
	retryCfg.IsPermanent = func(err error) bool {
		return errors.Is(err, bridge.ErrHostRejected)
	}
	return &Provider{
		caller:   caller,
		logger:   log.WithComponent("LiveContent"),
		retryCfg: retryCfg,
		validate: validator.New(),
	}
}

var _ content.Provider = (*Provider)(nil)

func (p *Provider) Sandboxed() bool { return false }

func (p *Provider) FetchStories(ctx context.Context) (content.StoryFetchResult, error) {
	payload, err := retry.Fetch(ctx, p.logger, content.EventGetStories, p.retryCfg,
		func(ctx context.Context) ([]content.StoryPayload, error) {
			var out []content.StoryPayload
			err := p.caller.Call(ctx, content.EventGetStories, nil, &out)
			return out, err
		})
	if err != nil {
		return content.StoryFetchResult{}, fmt.Errorf("failed to fetch stories: %w", err)
	}

	result := content.StoryFetchResult{Source: content.SourceHost}
	for _, sp := range payload {
		story, skipped := p.mapStory(sp)
		result.Skipped += skipped
		if story == nil {
			result.Skipped++
			continue
		}
		result.Stories = append(result.Stories, story)
	}

	if result.Skipped > 0 {
		p.logger.Warn("Dropped invalid story entries", "skipped", result.Skipped)
	}
	p.logger.Debug("Fetched stories", "count", len(result.Stories))
	return result, nil
}

func (p *Provider) FetchMyStory(ctx context.Context) (*domain.Story, error) {
	payload, err := retry.Fetch(ctx, p.logger, content.EventGetMyStory, p.retryCfg,
		func(ctx context.Context) (*content.StoryPayload, error) {
			var out *content.StoryPayload
			err := p.caller.Call(ctx, content.EventGetMyStory, nil, &out)
			return out, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch my story: %w", err)
	}
	if payload == nil || (payload.ID == "" && len(payload.Items) == 0) {
		return nil, nil
	}

	story, skipped := p.mapStory(*payload)
	if skipped > 0 {
		p.logger.Warn("Dropped invalid items from my story", "skipped", skipped)
	}
	if story == nil {
		if err := p.validate.Struct(*payload); err != nil {
			return nil, fmt.Errorf("%w: %v", content.ErrInvalidPayload, err)
		}
		return nil, nil
	}
	return story, nil
}

func (p *Provider) DeleteStoryItem(ctx context.Context, storyID, itemID string) error {
	var ack content.Ack
	req := content.DeleteStoryItemRequest{StoryID: storyID, ItemID: itemID}
	if err := p.caller.Call(ctx, content.EventDeleteStoryItem, req, &ack); err != nil {
		return fmt.Errorf("failed to delete story item %s: %w", itemID, err)
	}
	return nil
}

func (p *Provider) MarkStorySeen(ctx context.Context, storyID string) error {
	req := content.MarkStorySeenRequest{StoryID: storyID}
	if err := p.caller.Call(ctx, content.EventMarkStorySeen, req, nil); err != nil {
		return fmt.Errorf("failed to mark story %s seen: %w", storyID, err)
	}
	return nil
}

func (p *Provider) CreateStory(ctx context.Context, req content.CreateStoryRequest) error {
	kind := req.MediaKind
	if kind == "" {
		kind = domain.InferMediaKind(req.MediaURL)
	}
	payload := content.CreateStoryPayload{
		Type:     string(kind),
		MediaURL: req.MediaURL,
		Caption:  req.Caption,
	}
	var ack content.Ack
	if err := p.caller.Call(ctx, content.EventCreateStory, payload, &ack); err != nil {
		return fmt.Errorf("failed to create story: %w", err)
	}
	p.logger.Info("Story created", "id", ack.ID, "type", kind)
	return nil
}

// mapStory returns nil when the header is invalid or no item survives validation.
func (p *Provider) mapStory(sp content.StoryPayload) (*domain.Story, int) {
	if err := p.validate.Struct(sp); err != nil {
		p.logger.Debug("Invalid story payload", "id", sp.ID, "error", err)
		return nil, 0
	}

	story := sp.ToDomain()
	skipped := 0
	for _, ip := range sp.Items {
		if err := p.validate.Struct(ip); err != nil {
			p.logger.Debug("Invalid story item payload", "story_id", sp.ID, "item_id", ip.ID, "error", err)
			skipped++
			continue
		}
		story.Items = append(story.Items, ip.ToDomain())
	}
	if len(story.Items) == 0 {
		return nil, skipped
	}
	return story, skipped
}
