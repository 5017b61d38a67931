package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	colorFacebook = 0x1877F2
	colorDefault  = 0x95A5A6

	// Discord rejects embed descriptions longer than this.
	maxDescriptionLen = 4096

	// Error bodies are cut to this many bytes before being wrapped.
	maxErrorBody = 512
)

// ErrRateLimited is matched by errors.Is when Discord answers 429.
var ErrRateLimited = errors.New("discord rate limited")

// RateLimitError carries the Retry-After delay of a 429 response.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s, retry after %s", ErrRateLimited, e.RetryAfter)
	}
	return ErrRateLimited.Error()
}

func (*RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// DiscordNotifier posts notices to a Discord webhook as embeds.
type DiscordNotifier struct {
	webhookURL string
	username   string
	client     *http.Client
	now        func() time.Time
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets the client used to call the webhook.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithUsername overrides the webhook's default display name.
func WithUsername(name string) DiscordOption {
	return func(d *DiscordNotifier) {
		d.username = name
	}
}

// NewDiscordNotifier returns a notifier for webhookURL.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type webhookMessage struct {
	Username string  `json:"username,omitempty"`
	Content  string  `json:"content,omitempty"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string       `json:"title"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// PostPublished sends one embed describing the published post.
func (d *DiscordNotifier) PostPublished(ctx context.Context, notice *PostNotice) error {
	msg := webhookMessage{
		Username: d.username,
		Content:  "New post on " + feedName(notice),
		Embeds:   []embed{d.noticeEmbed(notice)},
	}
	return d.send(ctx, &msg)
}

func (d *DiscordNotifier) noticeEmbed(n *PostNotice) embed {
	e := embed{
		Title:       n.Title,
		URL:         n.Link,
		Description: clip(n.Description, maxDescriptionLen),
		Color:       colorFor(n.Provider),
		Timestamp:   d.now().UTC().Format(time.RFC3339),
	}
	if n.Provider != "" {
		e.Footer = &embedFooter{Text: n.Provider}
	}
	if n.PostID != "" {
		e.Fields = append(e.Fields, embedField{Name: "Post ID", Value: n.PostID, Inline: true})
	}
	return e
}

func feedName(n *PostNotice) string {
	if n.Target == "" {
		return "feed"
	}
	return n.Target
}

func colorFor(provider string) int {
	if provider == "facebook" {
		return colorFacebook
	}
	return colorDefault
}

// clip shortens s to at most n bytes, marking the cut with an ellipsis.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func (d *DiscordNotifier) send(ctx context.Context, msg *webhookMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding discord message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling discord webhook: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode >= 300:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("discord webhook returned %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}
	return nil
}

// retryAfter parses a Retry-After header given in (possibly fractional)
// seconds.
func retryAfter(v string) time.Duration {
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
