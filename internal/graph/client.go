// Package graph provides a Facebook Graph API client abstracted behind the
// Session and Cursor interfaces for testability.
package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const (
	defaultGraphURL   = "https://graph.facebook.com"
	defaultAPIVersion = "v19.0"
)

// Identity holds the application identity the session authenticates with.
// AccessToken is optional; when set, Login validates it instead of requesting
// an app token.
type Identity struct {
	AppID       string
	AppSecret   string
	RedirectURL string
	AccessToken string
}

// Session is the authenticated connection to the Graph API.
type Session interface {
	SetIdentity(id Identity)
	LoggedIn() bool
	Login(ctx context.Context, permissions []string) error
	Logout(ctx context.Context) error
	NewPaginatedQuery(path string, params url.Values) Cursor
	PostFeed(ctx context.Context, target string, params url.Values) (*PostResult, error)
}

// Cursor walks the pages of a Graph edge. HasNext reports whether the most
// recently fetched page linked to a further page.
type Cursor interface {
	First(ctx context.Context) (*Page, error)
	Next(ctx context.Context) (*Page, error)
	HasNext() bool
}

// Page is a single page of a Graph edge response. Items are left undecoded;
// callers supply their own schema.
type Page struct {
	Data   []json.RawMessage `json:"data"`
	Paging *Paging           `json:"paging,omitempty"`
}

// Paging holds the Graph pagination links.
type Paging struct {
	Cursors  *PagingCursors `json:"cursors,omitempty"`
	Next     string         `json:"next,omitempty"`
	Previous string         `json:"previous,omitempty"`
}

// PagingCursors holds cursor-based pagination markers.
type PagingCursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// PostResult is the response to a feed post.
type PostResult struct {
	ID string `json:"id"`
}

// Client implements Session against the Graph API over HTTP.
type Client struct {
	graphURL    string
	version     string
	authURL     string
	tokenURL    string
	client      *http.Client
	rateLimiter *RateLimiter

	mu       sync.Mutex
	identity Identity
	token    *oauth2.Token
}

// Option configures the Client.
type Option func(*Client)

// WithGraphURL overrides the default Graph API base URL.
func WithGraphURL(u string) Option {
	return func(c *Client) {
		c.graphURL = strings.TrimRight(u, "/")
	}
}

// WithAPIVersion overrides the default Graph API version.
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		c.version = v
	}
}

// WithAuthURL overrides the login dialog URL used by AuthCodeURL.
func WithAuthURL(u string) Option {
	return func(c *Client) {
		c.authURL = u
	}
}

// WithTokenURL overrides the OAuth token endpoint. It defaults to the
// versioned oauth/access_token edge of the Graph URL.
func WithTokenURL(u string) Option {
	return func(c *Client) {
		c.tokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every Graph call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// NewClient creates a new Graph API client. The client has no identity until
// SetIdentity is called.
func NewClient(opts ...Option) *Client {
	c := &Client{
		graphURL: defaultGraphURL,
		version:  defaultAPIVersion,
		authURL:  facebook.Endpoint.AuthURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokenURL == "" {
		c.tokenURL = c.endpoint("oauth/access_token", nil)
	}
	return c
}

// SetIdentity replaces the application identity and drops any token obtained
// under the previous identity.
func (c *Client) SetIdentity(id Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.identity = id
	c.token = nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := c.graphURL + "/" + c.version + "/" + strings.TrimPrefix(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) oauthConfig(id Identity, permissions []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     id.AppID,
		ClientSecret: id.AppSecret,
		RedirectURL:  id.RedirectURL,
		Scopes:       permissions,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.authURL,
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
