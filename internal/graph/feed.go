package graph

import (
	"context"
	"fmt"
	"net/url"
)

// PostFeed publishes params to the feed edge of target ("me" or a page id).
func (c *Client) PostFeed(
	ctx context.Context,
	target string,
	params url.Values,
) (*PostResult, error) {
	token, err := c.currentToken()
	if err != nil {
		return nil, err
	}

	var result PostResult
	if err := c.postForm(ctx, token, c.endpoint(target+"/feed", nil), params, &result); err != nil {
		return nil, fmt.Errorf("posting to %s feed: %w", target, err)
	}
	return &result, nil
}
