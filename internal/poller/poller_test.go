package poller_test

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/social-data-provider/internal/facebook"
	"github.com/donaldgifford/social-data-provider/internal/metrics"
	"github.com/donaldgifford/social-data-provider/internal/poller"
	"github.com/donaldgifford/social-data-provider/internal/poller/mocks"
	"github.com/donaldgifford/social-data-provider/pkg/logger"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, err := poller.NewScheduler(mocks.NewMockFetcher(t), nil, 15*time.Minute, logger.Discard())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
}

func TestNewScheduler_InvalidInterval(t *testing.T) {
	t.Parallel()

	_, err := poller.NewScheduler(mocks.NewMockFetcher(t), nil, 0, logger.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll interval must be positive")
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, err := poller.NewScheduler(mocks.NewMockFetcher(t), nil, time.Hour, logger.Discard())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamp(t *testing.T) {
	t.Parallel()

	sched, err := poller.NewScheduler(mocks.NewMockFetcher(t), nil, 15*time.Minute, logger.Discard())
	require.NoError(t, err)

	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamp()
	assert.Greater(t, ptestutil.ToFloat64(metrics.PollerNextRunTimestamp), float64(0))
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	feeds := []poller.Feed{
		{Query: "poller-test-ok", MaxRecords: 2},
		{Query: "poller-test-broken", MaxRecords: 20},
		{Query: "poller-test-after", MaxRecords: 5},
	}

	f := mocks.NewMockFetcher(t)
	f.EXPECT().Fetch(mock.Anything, facebook.DataConfig{Query: "poller-test-ok"}, 2).
		Return([]facebook.Schema{{ID: "1"}, {ID: "2"}}, nil).Once()
	f.EXPECT().Fetch(mock.Anything, facebook.DataConfig{Query: "poller-test-broken"}, 20).
		Return(nil, errors.New("query failed on page 0: boom")).Once()
	f.EXPECT().Fetch(mock.Anything, facebook.DataConfig{Query: "poller-test-after"}, 5).
		Return([]facebook.Schema{{ID: "3"}}, nil).Once()

	sched, err := poller.NewScheduler(f, feeds, time.Hour, logger.Discard())
	require.NoError(t, err)

	err = sched.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polling poller-test-broken")

	assert.InDelta(t, 2, ptestutil.ToFloat64(metrics.PollRecords.WithLabelValues("poller-test-ok")), 0)
	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.PollRecords.WithLabelValues("poller-test-after")), 0)
}

func TestScheduler_RunOnce_CancelledContext(t *testing.T) {
	t.Parallel()

	sched, err := poller.NewScheduler(
		mocks.NewMockFetcher(t),
		[]poller.Feed{{Query: "me", MaxRecords: 20}},
		time.Hour,
		logger.Discard(),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, sched.RunOnce(ctx), context.Canceled)
}
