// Package facebook adapts the Graph API session to the generic
// provider.DataServiceProvider contract.
package facebook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/social-data-provider/internal/graph"
	"github.com/donaldgifford/social-data-provider/internal/metrics"
	"github.com/donaldgifford/social-data-provider/internal/notify"
	"github.com/donaldgifford/social-data-provider/pkg/provider"
)

// Name identifies the provider in logs and notifications.
const Name = "facebook"

const (
	feedFields        = "id,message,from,created_time,link,full_picture"
	defaultPostTarget = "me"
	tracerName        = "github.com/donaldgifford/social-data-provider/internal/facebook"
)

var _ provider.DataServiceProvider[graph.Session, Schema, DataConfig, *OAuthTokens] = (*Provider)(nil)

// Provider reads and publishes Facebook feeds through a graph.Session.
// The zero value is not usable; construct one with New.
type Provider struct {
	session    graph.Session
	notifier   notify.Notifier
	log        *slog.Logger
	tracer     trace.Tracer
	postTarget string

	mu          sync.RWMutex
	tokens      OAuthTokens
	initialized bool
	permissions []string
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		p.log = l
	}
}

// WithNotifier sets the notifier told about published posts.
func WithNotifier(n notify.Notifier) Option {
	return func(p *Provider) {
		p.notifier = n
	}
}

// WithPostTarget sets the node PostToFeed publishes to. Defaults to "me".
func WithPostTarget(target string) Option {
	return func(p *Provider) {
		if target != "" {
			p.postTarget = target
		}
	}
}

// WithPermissions sets the permission set Login requests until
// LoginWithPermissions replaces it. Defaults to public_profile.
func WithPermissions(permissions ...string) Option {
	return func(p *Provider) {
		if len(permissions) > 0 {
			p.permissions = slices.Clone(permissions)
		}
	}
}

// WithTracerProvider sets the tracer provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Provider) {
		p.tracer = tp.Tracer(tracerName)
	}
}

// New creates a Provider bound to session. A nil session is accepted but
// every authenticated operation then fails with provider.ErrNoActiveSession.
func New(session graph.Session, opts ...Option) *Provider {
	p := &Provider{
		session:     session,
		postTarget:  defaultPostTarget,
		permissions: []string{PermissionPublicProfile},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	if p.notifier == nil {
		p.notifier = notify.NewNoOpNotifier(p.log)
	}
	if p.tracer == nil {
		p.tracer = otel.Tracer(tracerName)
	}
	return p
}

// Initialize stores the application credentials and hands them to the
// session. It fails with provider.ErrInvalidCredentials when tokens is nil or
// carries no app id, whatever state the provider was in before.
func (p *Provider) Initialize(tokens *OAuthTokens) error {
	if tokens == nil || tokens.AppID == "" {
		return provider.ErrInvalidCredentials
	}
	if p.session == nil {
		return provider.ErrNoActiveSession
	}

	p.mu.Lock()
	p.tokens = *tokens
	p.initialized = true
	p.mu.Unlock()

	p.session.SetIdentity(graph.Identity{
		AppID:       tokens.AppID,
		AppSecret:   tokens.AppSecret,
		RedirectURL: tokens.CallbackURI,
		AccessToken: tokens.AccessToken,
	})
	return nil
}

// Initialized reports whether Initialize has succeeded.
func (p *Provider) Initialized() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initialized
}

// Session returns the underlying Graph session.
func (p *Provider) Session() (graph.Session, error) {
	if !p.Initialized() {
		return nil, provider.ErrNotInitialized
	}
	if p.session == nil {
		return nil, provider.ErrNoActiveSession
	}
	return p.session, nil
}

// LoggedIn reports whether the session currently holds a usable token.
func (p *Provider) LoggedIn() bool {
	s, err := p.Session()
	if err != nil {
		return false
	}
	return s.LoggedIn()
}

// Permissions returns a copy of the permission set Login requests.
func (p *Provider) Permissions() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.permissions)
}

// Login authenticates with the stored permission set. A rejected login is
// reported as false with a nil error; errors are reserved for a missing
// session and cancelled contexts.
func (p *Provider) Login(ctx context.Context) (bool, error) {
	ctx, span := p.tracer.Start(ctx, "facebook.Login")
	defer span.End()

	s, err := p.Session()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	perms := p.Permissions()
	span.SetAttributes(attribute.StringSlice("facebook.permissions", perms))

	if err := s.Login(ctx, perms); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		span.RecordError(err)
		p.log.Warn("error logging in",
			"provider", Name,
			"permissions", perms,
			"error", err,
		)
		return false, nil
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	p.log.Debug("logged in", "provider", Name, "permissions", perms)
	return true, nil
}

// LoginWithPermissions replaces the stored permission set and logs in with
// it. Later implicit logins reuse the new set.
func (p *Provider) LoginWithPermissions(ctx context.Context, permissions []string) (bool, error) {
	p.mu.Lock()
	p.permissions = slices.Clone(permissions)
	p.mu.Unlock()

	return p.Login(ctx)
}

// Logout ends the session.
func (p *Provider) Logout(ctx context.Context) error {
	s, err := p.Session()
	if err != nil {
		return err
	}
	if err := s.Logout(ctx); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	p.log.Debug("logged out", "provider", Name)
	return nil
}

// Fetch reads up to maxRecords items from the feed of config.Query. When the
// session is not authenticated, or the service rejects its token, Fetch logs
// in once and runs the query again from the first page. If that login fails
// it returns provider.ErrNotAuthenticated.
func (p *Provider) Fetch(ctx context.Context, config DataConfig, maxRecords int) ([]Schema, error) {
	ctx, span := p.tracer.Start(ctx, "facebook.Fetch", trace.WithAttributes(
		attribute.String("facebook.query", config.Query),
		attribute.Int("facebook.max_records", maxRecords),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}()

	records, err := p.fetch(ctx, config, maxRecords)
	if err != nil {
		metrics.FetchErrorsTotal.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return records, nil
}

func (p *Provider) fetch(ctx context.Context, config DataConfig, maxRecords int) ([]Schema, error) {
	if config.Query == "" {
		return nil, fmt.Errorf("%w: query is required", provider.ErrInvalidArgument)
	}
	if maxRecords < 0 {
		return nil, fmt.Errorf("%w: maxRecords must be >= 0 (got %d)", provider.ErrInvalidArgument, maxRecords)
	}

	s, err := p.Session()
	if err != nil {
		return nil, err
	}

	path := url.PathEscape(config.Query) + "/feed"
	params := url.Values{"fields": {feedFields}}

	result, err := provider.RetryAfterLogin(ctx, p,
		func(ctx context.Context) (*provider.CollectResult[Schema], error) {
			return provider.Collect(ctx, newSchemaPager(s.NewPaginatedQuery(path, params)), maxRecords)
		},
	)
	if err != nil {
		if errors.Is(err, provider.ErrNotAuthenticated) {
			p.log.Warn("not authenticated, unable to fetch feed",
				"provider", Name,
				"query", config.Query,
			)
			return nil, err
		}
		return nil, fmt.Errorf("fetching %s feed: %w", config.Query, err)
	}

	metrics.FetchPagesTotal.Add(float64(result.PagesFetched))
	metrics.FetchRecordsTotal.Add(float64(len(result.Records)))

	p.log.Debug("fetched feed",
		"provider", Name,
		"query", config.Query,
		"records", len(result.Records),
		"pages", result.PagesFetched,
		"stopped_at", result.StoppedAt,
	)

	return result.Records, nil
}

// PostToFeed publishes a link post to the configured target. It logs in
// once when needed, the same way Fetch does. A post the service rejects, or
// one attempted without an authenticated session, is reported as false with
// a nil error.
func (p *Provider) PostToFeed(ctx context.Context, title, link, description string) (bool, error) {
	ctx, span := p.tracer.Start(ctx, "facebook.PostToFeed", trace.WithAttributes(
		attribute.String("facebook.target", p.postTarget),
	))
	defer span.End()

	s, err := p.Session()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	params := url.Values{}
	for k, v := range map[string]string{"name": title, "link": link, "description": description} {
		if v != "" {
			params.Set(k, v)
		}
	}
	if len(params) == 0 {
		return false, fmt.Errorf("%w: post needs a title, link or description", provider.ErrInvalidArgument)
	}

	res, err := provider.RetryAfterLogin(ctx, p,
		func(ctx context.Context) (*graph.PostResult, error) {
			r, err := s.PostFeed(ctx, p.postTarget, params)
			if err != nil {
				return nil, classify(err)
			}
			return r, nil
		},
	)
	if err != nil {
		return p.postFailed(ctx, span, err)
	}

	metrics.PostsTotal.WithLabelValues("posted").Inc()
	p.log.Info("posted to feed",
		"provider", Name,
		"target", p.postTarget,
		"post_id", res.ID,
	)

	notice := &notify.PostNotice{
		Provider:    Name,
		Target:      p.postTarget,
		PostID:      res.ID,
		Title:       title,
		Link:        link,
		Description: description,
	}
	if err := p.notifier.PostPublished(ctx, notice); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		p.log.Warn("error sending post notification", "post_id", res.ID, "error", err)
	}

	return true, nil
}

func (p *Provider) postFailed(ctx context.Context, span trace.Span, err error) (bool, error) {
	span.RecordError(err)

	switch {
	case ctx.Err() != nil:
		return false, ctx.Err()
	case errors.Is(err, provider.ErrNoActiveSession), errors.Is(err, provider.ErrNotInitialized):
		return false, err
	case errors.Is(err, provider.ErrNotAuthenticated), errors.Is(err, provider.ErrAuthRequired):
		metrics.PostsTotal.WithLabelValues("unauthenticated").Inc()
		p.log.Warn("not authenticated, unable to post", "provider", Name, "target", p.postTarget)
		return false, nil
	}

	msg := err.Error()
	var gerr *graph.Error
	if errors.As(err, &gerr) {
		msg = gerr.UserFacingMessage()
	}

	metrics.PostsTotal.WithLabelValues("rejected").Inc()
	p.log.Warn("could not post to feed",
		"provider", Name,
		"target", p.postTarget,
		"reason", msg,
	)
	return false, nil
}
