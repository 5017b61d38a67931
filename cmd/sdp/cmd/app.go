package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/social-data-provider/internal/config"
	"github.com/donaldgifford/social-data-provider/internal/facebook"
	"github.com/donaldgifford/social-data-provider/internal/graph"
	"github.com/donaldgifford/social-data-provider/internal/notify"
	"github.com/donaldgifford/social-data-provider/pkg/logger"
)

// app bundles the provider and the pieces it is built from.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	graph    *graph.Client
	limiter  *graph.RateLimiter
	provider *facebook.Provider
}

// loadApp builds an app for a one-shot command from the --config file.
func loadApp() (*app, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return newApp(cfg, logger.New(viper.GetString("log-level"), logger.FormatText))
}

// newApp wires the Graph client, notifier and provider from cfg and
// initializes the provider with the configured credentials.
func newApp(cfg *config.Config, log *slog.Logger) (*app, error) {
	fb := cfg.Facebook

	limiter := graph.NewRateLimiter(
		fb.RateLimit.PerSecond,
		fb.RateLimit.Burst,
		fb.RateLimit.MaxCalls,
		graph.WithQuotaWindow(fb.RateLimit.Window),
	)

	client := graph.NewClient(
		graph.WithGraphURL(fb.GraphURL),
		graph.WithAPIVersion(fb.APIVersion),
		graph.WithRateLimiter(limiter),
		graph.WithHTTPClient(&http.Client{
			Timeout:   fb.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	)

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(
			cfg.Notifications.Discord.WebhookURL,
			notify.WithUsername(cfg.Notifications.Discord.Username),
		)
	}

	p := facebook.New(client,
		facebook.WithLogger(log),
		facebook.WithNotifier(notifier),
		facebook.WithPostTarget(fb.PostTarget),
		facebook.WithPermissions(fb.Permissions...),
	)

	err := p.Initialize(&facebook.OAuthTokens{
		AppID:       fb.AppID,
		AppSecret:   fb.AppSecret,
		CallbackURI: fb.CallbackURI,
		AccessToken: fb.AccessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing provider: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		graph:    client,
		limiter:  limiter,
		provider: p,
	}, nil
}
