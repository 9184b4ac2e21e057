package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Host struct {
		Sandboxed      bool   `env:"HOST_SANDBOXED" env-default:"true"`
		ResourceName   string `env:"HOST_RESOURCE_NAME" env-default:"privy"`
		BaseURL        string `env:"HOST_BASE_URL"`
		CallsPerSecond int    `env:"HOST_CALLS_PER_SECOND" env-default:"20"`
		CallBurst      int    `env:"HOST_CALL_BURST" env-default:"10"`
		ReadRetries    uint64 `env:"HOST_READ_RETRIES" env-default:"3"`
	}
	Player struct {
		TickInterval time.Duration `env:"PLAYER_TICK_INTERVAL" env-default:"50ms"`
		ItemDuration time.Duration `env:"PLAYER_ITEM_DURATION" env-default:"5s"`
	}
	Feed struct {
		RefreshInterval time.Duration `env:"FEED_REFRESH_INTERVAL" env-default:"1m"`
		StoryTTL        time.Duration `env:"FEED_STORY_TTL" env-default:"24h"`
		Workers         int           `env:"FEED_WORKERS" env-default:"4"`
	}
	Autoplay struct {
		Enabled bool `env:"AUTOPLAY_ENABLED" env-default:"false"`
	}
}

// HostBaseURL is the prefix every bridge event is appended to.
func (c *Config) HostBaseURL() string {
	if c.Host.BaseURL != "" {
		return c.Host.BaseURL
	}
	return "https://" + c.Host.ResourceName
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
