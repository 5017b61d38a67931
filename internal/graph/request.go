package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/donaldgifford/social-data-provider/internal/metrics"
)

// wait applies the rate limiter, when configured, and counts the call.
func (c *Client) wait(ctx context.Context, method string) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrQuotaExhausted) {
				metrics.GraphQuotaLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.GraphQuotaUsage.Set(float64(c.rateLimiter.Count()))
	}
	metrics.GraphAPICallsTotal.WithLabelValues(method).Inc()
	return nil
}

func (c *Client) getJSON(ctx context.Context, token, rawURL string, dst any) error {
	return c.do(ctx, token, http.MethodGet, rawURL, nil, dst)
}

func (c *Client) postForm(
	ctx context.Context,
	token, rawURL string,
	form url.Values,
	dst any,
) error {
	return c.do(ctx, token, http.MethodPost, rawURL, form, dst)
}

// do executes a Graph request and decodes a 2xx JSON body into dst. Token
// rejections clear the session token so LoggedIn reports false afterwards.
func (c *Client) do(
	ctx context.Context,
	token, method, rawURL string,
	form url.Values,
	dst any,
) error {
	if err := c.wait(ctx, method); err != nil {
		return err
	}

	var body io.Reader = http.NoBody
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing graph request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.GraphAPIErrorsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

		graphErr := parseError(resp.StatusCode, respBody)
		if errors.Is(graphErr, ErrInvalidToken) {
			c.dropToken(token)
		}
		return graphErr
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("parsing graph response: %w", err)
	}
	return nil
}

// dropToken clears the session token if it is still the rejected one.
func (c *Client) dropToken(rejected string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && c.token.AccessToken == rejected {
		c.token = nil
	}
}
