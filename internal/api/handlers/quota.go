package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// QuotaReporter exposes the Graph API call budget. *graph.RateLimiter
// satisfies it.
type QuotaReporter interface {
	MaxCalls() int64
	Count() int64
	Remaining() int64
	ResetAt() time.Time
}

// QuotaHandler serves the current Graph API call budget.
type QuotaHandler struct {
	quota QuotaReporter
}

// NewQuotaHandler returns a handler over q. A nil q reports an empty
// budget.
func NewQuotaHandler(q QuotaReporter) *QuotaHandler {
	return &QuotaHandler{quota: q}
}

// QuotaBody describes the call budget of the current window.
type QuotaBody struct {
	Limit       int64     `json:"limit"        example:"200"                  doc:"Calls allowed per window"`
	Used        int64     `json:"used"         example:"42"                   doc:"Calls made in the current window"`
	Remaining   int64     `json:"remaining"    example:"158"                  doc:"Calls left in the current window"`
	PercentUsed float64   `json:"percent_used" example:"21"                   doc:"Used calls as a percentage of the limit"`
	Exhausted   bool      `json:"exhausted"    example:"false"                doc:"Whether further calls are refused until the reset"`
	ResetAt     time.Time `json:"reset_at"     example:"2025-06-16T14:30:00Z" doc:"End of the current window"`
}

// QuotaOutput wraps QuotaBody for huma.
type QuotaOutput struct {
	Body QuotaBody
}

// GetQuota reports the call budget.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	out := &QuotaOutput{}
	if h.quota == nil {
		return out, nil
	}

	b := &out.Body
	b.Limit = h.quota.MaxCalls()
	b.Used = h.quota.Count()
	b.Remaining = h.quota.Remaining()
	b.ResetAt = h.quota.ResetAt()
	b.Exhausted = b.Remaining == 0
	if b.Limit > 0 {
		b.PercentUsed = math.Round(float64(b.Used)/float64(b.Limit)*1000) / 10
	}
	return out, nil
}

// RegisterQuotaRoutes adds GET /api/v1/quota to api.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get Graph API quota",
		Description: "Calls used and remaining in the current rate limit window.",
		Tags:        []string{"graph"},
	}, h.GetQuota)
}
