package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/privy-stories/internal/autoplay"
	"github.com/orgball2608/privy-stories/internal/bridge"
	"github.com/orgball2608/privy-stories/internal/bridge/bridgeimpl"
	content "github.com/orgball2608/privy-stories/internal/content/fx"
	"github.com/orgball2608/privy-stories/internal/feed"
	"github.com/orgball2608/privy-stories/internal/feed/feedimpl"
	"github.com/orgball2608/privy-stories/pkg/config"
	"github.com/orgball2608/privy-stories/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		clockwork.NewRealClock,
	),
	fx.Provide(
		fx.Annotate(
			bridgeimpl.New,
			fx.As(new(bridge.Caller)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		),
		autoplay.New,
	),
	content.Module,
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, feedClient feed.Client, sim *autoplay.Simulator) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := newHealthServer(log, cfg)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed to start", "error", err)
				}
			}()

			if err := feedClient.Load(ctx); err != nil {
				// the scheduled refresh will try again
				log.Error("Initial story rail load failed", "error", err)
			}

			if err := feedClient.ScheduleRefresh(ctx); err != nil {
				return fmt.Errorf("failed to schedule story rail refresh: %w", err)
			}

			if sim.Enabled() {
				go func() {
					if _, err := sim.Run(ctx); err != nil {
						log.Error("Autoplay failed", "error", err)
					}
				}()
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			return srv.Shutdown(stopCtx)
		},
	})
}

func newHealthServer(log logger.Logger, cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: mux,
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
