package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	AWSRegion   string `env:"AWS_REGION"`
	TablePrefix string `env:"DYNAMO_TABLE_PREFIX"`

	GameListTTL        time.Duration `env:"GAME_LIST_CACHE_TTL" envDefault:"5m"`
	FilteredGameTTL    time.Duration `env:"FILTERED_GAME_CACHE_TTL" envDefault:"2m"`
	CacheSweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"10m"`

	AnnouncerEnabled bool   `env:"ANNOUNCER_ENABLED" envDefault:"false"`
	AnnouncerVoice   string `env:"ANNOUNCER_VOICE" envDefault:"Matthew"`
	AudioBucket      string `env:"ANNOUNCER_AUDIO_BUCKET"`

	GitCommit string `env:"GIT_COMMIT"`
	GitBranch string `env:"GIT_BRANCH"`
}

// Load reads the environment (plus an optional .env file) into a Config.
// Missing store credentials are a fatal configuration error: the server
// cannot do anything useful without its database.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file just means real env vars.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.AWSRegion == "" {
		return nil, errors.New("AWS_REGION is required")
	}
	if cfg.TablePrefix == "" {
		return nil, errors.New("DYNAMO_TABLE_PREFIX is required")
	}
	if cfg.AnnouncerEnabled && cfg.AudioBucket == "" {
		return nil, errors.New("ANNOUNCER_AUDIO_BUCKET is required when the announcer is enabled")
	}
	return &cfg, nil
}
