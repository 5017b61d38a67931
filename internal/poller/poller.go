// Package poller refreshes configured feeds on a fixed schedule.
package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/social-data-provider/internal/facebook"
	"github.com/donaldgifford/social-data-provider/internal/metrics"
)

// Fetcher reads records from a feed.
type Fetcher interface {
	Fetch(ctx context.Context, config facebook.DataConfig, maxRecords int) ([]facebook.Schema, error)
}

// Feed is a single feed to poll.
type Feed struct {
	Query      string
	MaxRecords int
}

// Scheduler polls every configured feed at a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	fetcher Fetcher
	feeds   []Feed
	timeout time.Duration
	log     *slog.Logger

	entryID cron.EntryID
	running sync.Mutex
}

// NewScheduler creates a Scheduler that polls feeds every interval. Each run
// is bounded by the interval so a slow run never overlaps the next one.
func NewScheduler(
	fetcher Fetcher,
	feeds []Feed,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive (got %s)", interval)
	}

	s := &Scheduler{
		cron:    cron.New(),
		fetcher: fetcher,
		feeds:   feeds,
		timeout: interval,
		log:     log,
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), s.run)
	if err != nil {
		return nil, fmt.Errorf("registering poll job: %w", err)
	}
	s.entryID = id

	return s, nil
}

// Start begins running scheduled polls.
func (s *Scheduler) Start() {
	s.log.Info("poller started", "feeds", len(s.feeds))
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop halts the scheduler. The returned context is done once any running
// poll has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("poller stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next scheduled run time.
func (s *Scheduler) SyncNextRunTimestamp() {
	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		return
	}
	metrics.PollerNextRunTimestamp.Set(float64(next.Unix()))
}

// RunOnce polls every feed in order. A failing feed is logged and skipped;
// the returned error joins every failure.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if !s.running.TryLock() {
		s.log.Warn("poll already running, skipping")
		return nil
	}
	defer s.running.Unlock()

	var errs []error
	for _, f := range s.feeds {
		if err := ctx.Err(); err != nil {
			return err
		}

		records, err := s.fetcher.Fetch(ctx, facebook.DataConfig{Query: f.Query}, f.MaxRecords)
		if err != nil {
			metrics.PollRunsTotal.WithLabelValues("error").Inc()
			s.log.Error("polling feed failed", "query", f.Query, "error", err)
			errs = append(errs, fmt.Errorf("polling %s: %w", f.Query, err))
			continue
		}

		metrics.PollRunsTotal.WithLabelValues("success").Inc()
		metrics.PollRecords.WithLabelValues(f.Query).Set(float64(len(records)))
		s.log.Info("polled feed", "query", f.Query, "records", len(records))
	}

	return errors.Join(errs...)
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	s.log.Info("scheduled poll starting")
	if err := s.RunOnce(ctx); err != nil {
		s.log.Error("scheduled poll finished with errors", "error", err, "duration", time.Since(start))
	} else {
		s.log.Info("scheduled poll finished", "duration", time.Since(start))
	}
	s.SyncNextRunTimestamp()
}
