package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/social-data-provider/internal/facebook"
	"github.com/donaldgifford/social-data-provider/pkg/provider"
)

// FeedService reads and publishes feed items.
type FeedService interface {
	Fetch(ctx context.Context, config facebook.DataConfig, maxRecords int) ([]facebook.Schema, error)
	PostToFeed(ctx context.Context, title, link, description string) (bool, error)
}

// FeedHandler serves the feed endpoints.
type FeedHandler struct {
	svc FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(svc FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// Record is a feed item as returned by the API.
type Record struct {
	ID          string    `json:"id"                     doc:"Graph object id"         example:"1234_5678"`
	Message     string    `json:"message,omitempty"      doc:"Post text"`
	FromID      string    `json:"from_id,omitempty"      doc:"Author id"`
	FromName    string    `json:"from_name,omitempty"    doc:"Author display name"`
	CreatedTime time.Time `json:"created_time,omitzero"  doc:"When the item was posted"`
	Link        string    `json:"link,omitempty"         doc:"Attached link"`
	FullPicture string    `json:"full_picture,omitempty" doc:"Full size picture URL"`
}

// ListFeedInput is the request for the list endpoint.
type ListFeedInput struct {
	Query      string `path:"query"        doc:"Node whose feed is read: a page or user id, or me" example:"me"`
	MaxRecords int    `query:"max_records" doc:"Maximum records to return"                          default:"20" minimum:"0" maximum:"1000"`
}

// ListFeedOutput is the response for the list endpoint.
type ListFeedOutput struct {
	Body struct {
		Query   string   `json:"query"`
		Count   int      `json:"count"`
		Records []Record `json:"records"`
	}
}

// ListFeed returns up to max_records items from a feed.
func (h *FeedHandler) ListFeed(ctx context.Context, input *ListFeedInput) (*ListFeedOutput, error) {
	records, err := h.svc.Fetch(ctx, facebook.DataConfig{Query: input.Query}, input.MaxRecords)
	if err != nil {
		return nil, providerError("fetching feed", err)
	}

	out := &ListFeedOutput{}
	out.Body.Query = input.Query
	out.Body.Records = toRecords(records)
	out.Body.Count = len(out.Body.Records)
	return out, nil
}

// PostFeedInput is the request for the post endpoint.
type PostFeedInput struct {
	Body struct {
		Title       string `json:"title"                 minLength:"1" doc:"Post title"       example:"Release notes"`
		Link        string `json:"link,omitempty"        format:"uri"  doc:"Link to attach"   example:"https://example.com/notes"`
		Description string `json:"description,omitempty"               doc:"Link description" example:"What changed this week"`
	}
}

// PostFeedOutput is the response for the post endpoint.
type PostFeedOutput struct {
	Body struct {
		Posted bool `json:"posted" doc:"Whether the service accepted the post"`
	}
}

// PostFeed publishes a post to the configured feed.
func (h *FeedHandler) PostFeed(ctx context.Context, input *PostFeedInput) (*PostFeedOutput, error) {
	posted, err := h.svc.PostToFeed(ctx, input.Body.Title, input.Body.Link, input.Body.Description)
	if err != nil {
		return nil, providerError("posting to feed", err)
	}

	out := &PostFeedOutput{}
	out.Body.Posted = posted
	return out, nil
}

// RegisterFeedRoutes registers the feed endpoints with the Huma API.
func RegisterFeedRoutes(api huma.API, h *FeedHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-feed",
		Method:      http.MethodGet,
		Path:        "/api/v1/feeds/{query}",
		Summary:     "List feed items",
		Description: "Reads a feed page by page until max_records items are gathered or the feed ends.",
		Tags:        []string{"feeds"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
		},
	}, h.ListFeed)

	huma.Register(api, huma.Operation{
		OperationID: "post-feed",
		Method:      http.MethodPost,
		Path:        "/api/v1/feed",
		Summary:     "Post to the feed",
		Description: "Publishes a link post to the configured feed. posted is false when the service rejects it.",
		Tags:        []string{"feeds"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.PostFeed)
}

func toRecords(in []facebook.Schema) []Record {
	out := make([]Record, 0, len(in))
	for i := range in {
		s := &in[i]
		r := Record{
			ID:          s.ID,
			Message:     s.Message,
			CreatedTime: s.CreatedTime.Time,
			Link:        s.Link,
			FullPicture: s.FullPicture,
		}
		if s.From != nil {
			r.FromID = s.From.ID
			r.FromName = s.From.Name
		}
		out = append(out, r)
	}
	return out
}

// providerError maps provider errors onto HTTP problems.
func providerError(action string, err error) error {
	switch {
	case errors.Is(err, provider.ErrNotAuthenticated):
		return huma.Error401Unauthorized(action + ": not authenticated")
	case errors.Is(err, provider.ErrInvalidArgument):
		return huma.Error400BadRequest(action+": "+err.Error(), err)
	case errors.Is(err, provider.ErrNotInitialized), errors.Is(err, provider.ErrNoActiveSession):
		return huma.Error503ServiceUnavailable(action + ": provider not ready")
	default:
		return huma.Error502BadGateway("Graph API error: " + err.Error())
	}
}
