package bridgeimpl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/orgball2608/privy-stories/internal/bridge"
	"github.com/orgball2608/privy-stories/pkg/config"
	"github.com/orgball2608/privy-stories/pkg/errors"
	"github.com/orgball2608/privy-stories/pkg/logger"
)

func newTestBridge(t *testing.T, handler http.HandlerFunc) *BridgeImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Host.BaseURL = srv.URL + "/"
	cfg.Host.CallsPerSecond = 1000
	cfg.Host.CallBurst = 100

	return New(Opts{Config: cfg, Logger: logger.Nop()})
}

func TestCallPostsJSONAndDecodesAnswer(t *testing.T) {
	var gotPath, gotType, gotID string
	var gotBody map[string]string

	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotID = r.Header.Get("X-Request-Id")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`[{"id":"s1"}]`))
	})

	var out []struct {
		ID string `json:"id"`
	}
	err := b.Call(context.Background(), "deleteStoryItem", map[string]string{"storyId": "s1"}, &out)
	if err != nil {
		t.Fatalf("call: %v", err)
	}

	if gotPath != "/deleteStoryItem" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotType != "application/json" {
		t.Fatalf("unexpected content type %q", gotType)
	}
	if gotID == "" {
		t.Fatalf("expected a request id header")
	}
	if gotBody["storyId"] != "s1" {
		t.Fatalf("unexpected body %v", gotBody)
	}
	if len(out) != 1 || out[0].ID != "s1" {
		t.Fatalf("unexpected decoded answer %+v", out)
	}
}

func TestCallSendsEmptyObjectForNilPayload(t *testing.T) {
	var raw []byte
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
	})

	if err := b.Call(context.Background(), "getStories", nil, nil); err != nil {
		t.Fatalf("call: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("expected {}, got %q", raw)
	}
}

func TestCallMapsBadStatus(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := b.Call(context.Background(), "getStories", nil, nil)
	if !errors.Is(err, bridge.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
	if errors.GetCode(err) != "getStories" {
		t.Fatalf("expected the event as error code, got %q", errors.GetCode(err))
	}
}

func TestCallMapsRejectedEnvelope(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"not your story"}`))
	})

	var out struct {
		Success bool `json:"success"`
	}
	err := b.Call(context.Background(), "deleteStoryItem", nil, &out)
	if !errors.Is(err, bridge.ErrHostRejected) {
		t.Fatalf("expected ErrHostRejected, got %v", err)
	}
}

func TestCallHonoursContext(t *testing.T) {
	b := newTestBridge(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Call(ctx, "getStories", nil, nil); err == nil {
		t.Fatalf("expected cancelled call to fail")
	}
}
