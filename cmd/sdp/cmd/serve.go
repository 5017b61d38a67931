package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/social-data-provider/internal/api"
	"github.com/donaldgifford/social-data-provider/internal/config"
	"github.com/donaldgifford/social-data-provider/internal/poller"
	"github.com/donaldgifford/social-data-provider/internal/telemetry"
	"github.com/donaldgifford/social-data-provider/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and feed poller",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx := cmd.Context()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}

	// A rejected login is not fatal; Fetch and PostToFeed retry it.
	if ok, err := a.provider.Login(ctx); err != nil {
		log.Warn("initial login failed", "error", err)
	} else if ok {
		log.Info("logged in", "permissions", a.provider.Permissions())
	}

	e := api.NewRouter(api.Deps{
		Provider:       a.provider,
		RateLimiter:    a.limiter,
		TracerProvider: otel.GetTracerProvider(),
		Log:            log,
		Version:        Version,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	var sched *poller.Scheduler
	if cfg.Poller.Enabled {
		sched, err = poller.NewScheduler(a.provider, pollFeeds(cfg.Poller.Feeds), cfg.Poller.Interval, log)
		if err != nil {
			return fmt.Errorf("creating poller: %w", err)
		}
		sched.Start()
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Server.Addr(), "version", Version)
		if err := e.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("serving: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("poller did not stop before the shutdown deadline")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutting down server: %w", err))
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutting down telemetry: %w", err))
	}

	log.Info("server stopped")
	return runErr
}

func pollFeeds(feeds []config.FeedConfig) []poller.Feed {
	out := make([]poller.Feed, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, poller.Feed{Query: f.Query, MaxRecords: f.MaxRecords})
	}
	return out
}
