// Package config builds client options from the environment. Nothing in the
// client package reads the environment on its own; callers opt in here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client"
)

// Prefix is prepended to every variable name, e.g. LEONARDO_API_KEY.
const Prefix = "LEONARDO"

// Config holds client settings parsed from LEONARDO_* variables.
type Config struct {
	APIKey  string `envconfig:"API_KEY" required:"true"`
	BaseURL string `envconfig:"BASE_URL" default:"https://cloud.leonardo.ai/api/rest/v1"`

	// Templates
	TemplateFile     string `envconfig:"TEMPLATE_FILE" default:""`
	BuiltinTemplates bool   `envconfig:"BUILTIN_TEMPLATES" default:"true"`

	// Polling for generation, upscale and motion jobs
	PollInterval    time.Duration `envconfig:"POLL_INTERVAL" default:"10s"`
	PollMaxAttempts int           `envconfig:"POLL_MAX_ATTEMPTS" default:"30"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// Load reads envFiles into the process environment (variables already set
// win) and then parses the LEONARDO_* variables. With no files given, a .env
// file in the working directory is used if present.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("template_file", cfg.TemplateFile).
		Bool("builtin_templates", cfg.BuiltinTemplates).
		Dur("poll_interval", cfg.PollInterval).
		Int("poll_max_attempts", cfg.PollMaxAttempts).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Msg("leonardo client configuration loaded")

	return &cfg, nil
}

// Options converts the configuration into client options. Presets from
// TemplateFile override built-in presets of the same name.
func (c *Config) Options() []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithHTTPTimeout(c.HTTPTimeout),
		client.WithPolling(c.PollInterval, c.PollMaxAttempts),
		client.WithDebugLogging(c.Debug),
	}
	if c.BuiltinTemplates {
		opts = append(opts, client.WithBuiltinTemplates())
	}
	if c.TemplateFile != "" {
		opts = append(opts, client.WithTemplateFile(c.TemplateFile))
	}
	return opts
}

// NewClient builds a client from the configuration. extra options are
// applied last.
func (c *Config) NewClient(extra ...client.Option) (*client.Client, error) {
	return client.New(c.APIKey, append(c.Options(), extra...)...)
}
