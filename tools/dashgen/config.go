package main

import "errors"

// KnownMetrics is the set of metric names exported by social-data-provider
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"sdp_http_request_duration_seconds": true,
	"sdp_http_requests_total":           true,
	"sdp_http_requests_in_flight":       true,
	"sdp_http_panics_total":             true,

	// Health metrics.
	"sdp_healthz_up": true,
	"sdp_readyz_up":  true,

	// Graph API metrics.
	"sdp_graph_api_calls_total":        true,
	"sdp_graph_api_errors_total":       true,
	"sdp_graph_quota_usage":            true,
	"sdp_graph_quota_limit_hits_total": true,

	// Provider metrics.
	"sdp_login_attempts_total":        true,
	"sdp_fetch_records_total":         true,
	"sdp_fetch_pages_total":           true,
	"sdp_fetch_errors_total":          true,
	"sdp_fetch_duration_seconds":      true,
	"sdp_posts_total":                 true,
	"sdp_notification_failures_total": true,

	// Poller metrics.
	"sdp_poll_runs_total":           true,
	"sdp_poll_records":              true,
	"sdp_poller_next_run_timestamp": true,

	// Recording rules.
	"sdp:http_requests:rate5m":    true,
	"sdp:http_errors:rate5m":      true,
	"sdp:graph_api_calls:rate5m":  true,
	"sdp:graph_api_errors:rate5m": true,
	"sdp:fetch_records:rate5m":    true,
	"sdp:fetch_errors:rate5m":     true,
	"sdp:poll_failures:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
