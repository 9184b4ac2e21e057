package bridgeimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/orgball2608/privy-stories/internal/bridge"
	"github.com/orgball2608/privy-stories/internal/ratelimit"
	"github.com/orgball2608/privy-stories/pkg/config"
	"github.com/orgball2608/privy-stories/pkg/errors"
	"github.com/orgball2608/privy-stories/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// BridgeImpl posts events to the host the same way the embedded browser does:
// POST <base>/<event> with a JSON body, JSON answer.
type BridgeImpl struct {
	baseURL string
	client  *http.Client
	limiter ratelimit.Limiter
	logger  logger.Logger
}

func New(opts Opts) *BridgeImpl {
	return &BridgeImpl{
		baseURL: strings.TrimRight(opts.Config.HostBaseURL(), "/"),
		// The host contract has no timeout; callers bound calls with ctx.
		client:  &http.Client{},
		limiter: ratelimit.NewInMemoryLimiter(opts.Config.Host.CallsPerSecond, time.Second, opts.Config.Host.CallBurst),
		logger:  opts.Logger.WithComponent("Bridge"),
	}
}

var _ bridge.Caller = (*BridgeImpl)(nil)

type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

func (b *BridgeImpl) Call(ctx context.Context, event string, payload any, out any) error {
	if err := b.limiter.Wait(ctx, event); err != nil {
		return errors.WrapWithCode(err, event, "bridge call throttled")
	}

	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WrapWithCode(err, event, "failed to encode bridge payload")
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/"+event, bytes.NewReader(body))
	if err != nil {
		return errors.WrapWithCode(err, event, "failed to build bridge request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, event, "bridge call failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, event, "failed to read bridge response")
	}

	b.logger.Debug("Bridge call finished",
		"event", event,
		"request_id", requestID,
		"status", resp.StatusCode,
		"took", time.Since(started).Round(time.Millisecond).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.WrapWithCode(fmt.Errorf("%w: %d", bridge.ErrBadStatus, resp.StatusCode), event, "bridge call failed")
	}

	data = bytes.TrimSpace(data)
	var env envelope
	if len(data) > 0 && data[0] == '{' && json.Unmarshal(data, &env) == nil && env.Success != nil && !*env.Success {
		return errors.WrapWithCode(fmt.Errorf("%w: %s", bridge.ErrHostRejected, env.Error), event, "bridge call failed")
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, event, "failed to decode bridge response")
	}
	return nil
}
