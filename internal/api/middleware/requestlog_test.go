package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "generated request id",
			method: http.MethodGet,
			path:   "/api/v1/feeds/me",
			status: http.StatusOK,
			wantLogFields: []string{
				"level=INFO",
				"method=GET",
				"path=/api/v1/feeds/me",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "post",
			method: http.MethodPost,
			path:   "/api/v1/feed",
			status: http.StatusOK,
			wantLogFields: []string{
				"method=POST",
				"path=/api/v1/feed",
			},
		},
		{
			name:   "client error logs at warn",
			method: http.MethodGet,
			path:   "/api/v1/feeds/me",
			status: http.StatusUnauthorized,
			wantLogFields: []string{
				"level=WARN",
				"status=401",
			},
		},
		{
			name:          "incoming request id reused",
			method:        http.MethodGet,
			path:          "/api/v1/session",
			status:        http.StatusOK,
			providedReqID: "req-7f3a",
			wantLogFields: []string{
				"request_id=req-7f3a",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seenID string
			handler := RequestLog(log)(func(c echo.Context) error {
				seenID = RequestID(c)
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			for _, field := range tt.wantLogFields {
				assert.Contains(t, buf.String(), field)
			}

			respID := rec.Header().Get(requestIDHeader)
			require.NotEmpty(t, respID)
			assert.Equal(t, respID, seenID, "handler and response must see the same id")
			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}
		})
	}
}

func TestRequestLog_ProbeSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		statuses   []int
		wantLogged []bool
	}{
		{
			name:       "healthy healthz logged once",
			path:       "/healthz",
			statuses:   []int{200, 200, 200},
			wantLogged: []bool{true, false, false},
		},
		{
			name:       "failing readyz always logged",
			path:       "/readyz",
			statuses:   []int{503, 503},
			wantLogged: []bool{true, true},
		},
		{
			name:       "readyz flapping",
			path:       "/readyz",
			statuses:   []int{200, 200, 503, 200, 200},
			wantLogged: []bool{true, false, true, true, false},
		},
		{
			name:       "metrics scrape logged once",
			path:       "/metrics",
			statuses:   []int{200, 200},
			wantLogged: []bool{true, false},
		},
		{
			name:       "api path always logged",
			path:       "/api/v1/quota",
			statuses:   []int{200, 200, 200},
			wantLogged: []bool{true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()

			var next int
			handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
				return c.NoContent(tt.statuses[next])
			})

			for i, status := range tt.statuses {
				next = i
				before := buf.Len()

				req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
				require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

				logged := buf.Len() > before
				assert.Equal(t, tt.wantLogged[i], logged, "request %d (status %d)", i, status)
				if logged && status >= http.StatusBadRequest {
					assert.Contains(t, buf.String()[before:], "level=WARN")
				}
			}
		})
	}
}

func TestRequestLog_TraceID(t *testing.T) {
	t.Parallel()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", http.NoBody).WithContext(ctx)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Contains(t, buf.String(), "trace_id=4bf92f3577b34da6a3ce929d0e0e4736")
}

func TestRequestLog_NoTraceIDWithoutSpan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", http.NoBody)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.False(t, strings.Contains(buf.String(), "trace_id="))
}
