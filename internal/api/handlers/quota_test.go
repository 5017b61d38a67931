package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/social-data-provider/internal/api/handlers"
	"github.com/donaldgifford/social-data-provider/internal/graph"
)

type fixedQuota struct {
	limit, used int64
	reset       time.Time
}

func (q fixedQuota) MaxCalls() int64    { return q.limit }
func (q fixedQuota) Count() int64       { return q.used }
func (q fixedQuota) Remaining() int64   { return max(q.limit-q.used, 0) }
func (q fixedQuota) ResetAt() time.Time { return q.reset }

func getQuota(t *testing.T, q handlers.QuotaReporter) handlers.QuotaBody {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(q))

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	var body handlers.QuotaBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestGetQuota(t *testing.T) {
	t.Parallel()

	reset := time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		quota handlers.QuotaReporter
		want  handlers.QuotaBody
	}{
		{
			name: "no limiter configured",
		},
		{
			name:  "unused window",
			quota: fixedQuota{limit: 200, reset: reset},
			want:  handlers.QuotaBody{Limit: 200, Remaining: 200, ResetAt: reset},
		},
		{
			name:  "partly used",
			quota: fixedQuota{limit: 300, used: 100, reset: reset},
			want: handlers.QuotaBody{
				Limit: 300, Used: 100, Remaining: 200, PercentUsed: 33.3, ResetAt: reset,
			},
		},
		{
			name:  "exhausted",
			quota: fixedQuota{limit: 50, used: 50, reset: reset},
			want: handlers.QuotaBody{
				Limit: 50, Used: 50, PercentUsed: 100, Exhausted: true, ResetAt: reset,
			},
		},
		{
			name:  "zero limit is always exhausted",
			quota: fixedQuota{reset: reset},
			want:  handlers.QuotaBody{Exhausted: true, ResetAt: reset},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := getQuota(t, tt.quota)
			assert.Equal(t, tt.want.Limit, got.Limit)
			assert.Equal(t, tt.want.Used, got.Used)
			assert.Equal(t, tt.want.Remaining, got.Remaining)
			assert.InDelta(t, tt.want.PercentUsed, got.PercentUsed, 0.001)
			assert.Equal(t, tt.want.Exhausted, got.Exhausted)
			assert.True(t, tt.want.ResetAt.Equal(got.ResetAt), "reset_at %s", got.ResetAt)
		})
	}
}

func TestGetQuota_GraphRateLimiter(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := graph.NewRateLimiter(100, 10, 4,
		graph.WithRateLimiterNowFunc(func() time.Time { return start }),
		graph.WithQuotaWindow(15*time.Minute),
	)
	for range 3 {
		require.NoError(t, rl.Wait(t.Context()))
	}

	got := getQuota(t, rl)
	assert.Equal(t, int64(4), got.Limit)
	assert.Equal(t, int64(3), got.Used)
	assert.Equal(t, int64(1), got.Remaining)
	assert.InDelta(t, 75.0, got.PercentUsed, 0.001)
	assert.False(t, got.Exhausted)
	assert.True(t, start.Add(15*time.Minute).Equal(got.ResetAt))
}
