// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultMaxRecords is used for poller feeds that do not set max_records.
const DefaultMaxRecords = 20

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Facebook      FacebookConfig      `yaml:"facebook"`
	Poller        PollerConfig        `yaml:"poller"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Tracing       TracingConfig       `yaml:"tracing"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns the host:port the server listens on.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FacebookConfig defines the Graph API application and session settings.
type FacebookConfig struct {
	AppID       string          `yaml:"app_id"`
	AppSecret   string          `yaml:"app_secret"`
	CallbackURI string          `yaml:"callback_uri"`
	AccessToken string          `yaml:"access_token"`
	GraphURL    string          `yaml:"graph_url"`
	APIVersion  string          `yaml:"api_version"`
	PostTarget  string          `yaml:"post_target"`
	Permissions []string        `yaml:"permissions"`
	Timeout     time.Duration   `yaml:"timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Graph API rate limiting settings. Graph enforces
// app-level limits over a rolling hour.
type RateLimitConfig struct {
	PerSecond float64       `yaml:"per_second"`
	Burst     int           `yaml:"burst"`
	MaxCalls  int64         `yaml:"max_calls"`
	Window    time.Duration `yaml:"window"`
}

// PollerConfig defines the scheduled feed refresh.
type PollerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Feeds    []FeedConfig  `yaml:"feeds"`
}

// FeedConfig is a single feed the poller reads.
type FeedConfig struct {
	Query      string `yaml:"query"`
	MaxRecords int    `yaml:"max_records"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
	Username   string `yaml:"username"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text, pretty
}

// TracingConfig defines the OTLP exporters.
type TracingConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Endpoint      string  `yaml:"endpoint"`
	Insecure      bool    `yaml:"insecure"`
	ServiceName   string  `yaml:"service_name"`
	SampleRatio   float64 `yaml:"sample_ratio"`
	ExportMetrics bool    `yaml:"export_metrics"` // also push OTLP metrics to Endpoint
}

// Load reads and parses a YAML config file, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyFacebookDefaults(&cfg.Facebook)
	applyPollerDefaults(&cfg.Poller)
	applyLoggingDefaults(&cfg.Logging)
	applyTracingDefaults(&cfg.Tracing)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyFacebookDefaults(f *FacebookConfig) {
	if f.GraphURL == "" {
		f.GraphURL = "https://graph.facebook.com"
	}
	if f.APIVersion == "" {
		f.APIVersion = "v19.0"
	}
	if f.PostTarget == "" {
		f.PostTarget = "me"
	}
	if len(f.Permissions) == 0 {
		f.Permissions = []string{"public_profile"}
	}
	if f.Timeout == 0 {
		f.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&f.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.MaxCalls == 0 {
		r.MaxCalls = 200
	}
	if r.Window == 0 {
		r.Window = time.Hour
	}
}

func applyPollerDefaults(p *PollerConfig) {
	if p.Interval == 0 {
		p.Interval = 15 * time.Minute
	}
	for i := range p.Feeds {
		if p.Feeds[i].MaxRecords == 0 {
			p.Feeds[i].MaxRecords = DefaultMaxRecords
		}
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "pretty"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "social-data-provider"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Facebook.AppID == "" {
		errs = append(errs, fmt.Errorf("facebook.app_id is required"))
	}
	if cfg.Facebook.AppSecret == "" && cfg.Facebook.AccessToken == "" {
		errs = append(
			errs,
			fmt.Errorf("facebook.app_secret is required when facebook.access_token is not set"),
		)
	}

	if cfg.Poller.Enabled {
		if cfg.Poller.Interval < time.Minute {
			errs = append(
				errs,
				fmt.Errorf("poller.interval must be at least 1m (got %s)", cfg.Poller.Interval),
			)
		}
		if len(cfg.Poller.Feeds) == 0 {
			errs = append(errs, fmt.Errorf("poller.feeds is required when poller is enabled"))
		}
	}
	for i, f := range cfg.Poller.Feeds {
		if f.Query == "" {
			errs = append(errs, fmt.Errorf("poller.feeds[%d].query is required", i))
		}
		if f.MaxRecords < 0 {
			errs = append(
				errs,
				fmt.Errorf("poller.feeds[%d].max_records must be >= 0 (got %d)", i, f.MaxRecords),
			)
		}
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	switch cfg.Logging.Format {
	case "json", "text", "pretty":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: json, text, pretty (got %q)", cfg.Logging.Format),
		)
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(
			errs,
			fmt.Errorf("tracing.sample_ratio must be between 0 and 1 (got %g)", cfg.Tracing.SampleRatio),
		)
	}

	return errors.Join(errs...)
}
