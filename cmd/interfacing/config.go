package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/settings"
)

const envPrefix = "interfacing"

// Config is read from INTERFACING_* environment variables
type Config struct {
	RedisURL   string        `envconfig:"REDIS_URL" default:"memory://"`
	ScenePath  string        `envconfig:"SCENE" default:"scene.yaml"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	LogLevel   string        `envconfig:"LOG_LEVEL" default:"warn"`

	LLMProvider string        `envconfig:"LLM_PROVIDER" default:"none"`
	LLMModel    string        `envconfig:"LLM_MODEL"`
	LLMAPIKey   string        `envconfig:"LLM_API_KEY"`
	LLMBaseURL  string        `envconfig:"LLM_BASE_URL"`
	LLMTimeout  time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`

	Mode            string  `envconfig:"MODE" default:"manual"`
	SuggestionCount int     `envconfig:"SUGGESTION_COUNT" default:"4"`
	ChaosLevel      float64 `envconfig:"CHAOS_LEVEL" default:"0.5"`
	ContextMessages int     `envconfig:"CONTEXT_MESSAGES" default:"5"`
	CopyToClipboard bool    `envconfig:"COPY_TO_CLIPBOARD" default:"false"`

	MetricsFile string `envconfig:"METRICS_FILE"`
}

// LoadConfig reads an optional .env file, then the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks the values the libraries do not check themselves
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("RedisURL", c.RedisURL, vb)
	errors.ValidateRequired("ScenePath", c.ScenePath, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}

	return vb.Build()
}

// Settings converts the suggestion fields
func (c *Config) Settings() settings.Settings {
	s := settings.Defaults()
	s.Mode = settings.Mode(strings.ToLower(c.Mode))
	s.SuggestionCount = c.SuggestionCount
	s.ChaosLevel = c.ChaosLevel
	s.ContextMessages = c.ContextMessages
	s.CopyToClipboard = c.CopyToClipboard
	return s
}

func (c *Config) slogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func setupLogging(c *Config) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.slogLevel(),
	})))
}
