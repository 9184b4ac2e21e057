package fx

import (
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/privy-stories/internal/bridge"
	"github.com/orgball2608/privy-stories/internal/content"
	"github.com/orgball2608/privy-stories/internal/content/fixture"
	"github.com/orgball2608/privy-stories/internal/content/live"
	"github.com/orgball2608/privy-stories/pkg/config"
	"github.com/orgball2608/privy-stories/pkg/logger"
	"github.com/orgball2608/privy-stories/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Clock  clockwork.Clock
	Caller bridge.Caller
}

// NewProvider picks the data source once, from HOST_SANDBOXED.
func NewProvider(opts Opts) content.Provider {
	if opts.Config.Host.Sandboxed {
		opts.Logger.Info("Running sandboxed, serving fixture stories")
		return fixture.New(opts.Clock, opts.Logger)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = opts.Config.Host.ReadRetries
	opts.Logger.Info("Running inside host", "base_url", opts.Config.HostBaseURL())
	return live.New(opts.Caller, opts.Logger, retryCfg)
}

var Module = fx.Provide(NewProvider)
