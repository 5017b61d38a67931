package graph

import (
	"context"
	"fmt"
	"net/url"
)

// PaginatedArray implements Cursor for a Graph edge, following the
// paging.next link of each page. It is not safe for concurrent use; create
// one per query.
type PaginatedArray struct {
	client *Client
	path   string
	params url.Values
	next   string
}

// NewPaginatedQuery returns a cursor over the edge at path. Nothing is
// requested until First is called.
func (c *Client) NewPaginatedQuery(path string, params url.Values) Cursor {
	return &PaginatedArray{
		client: c,
		path:   path,
		params: params,
	}
}

// First requests the first page of the edge.
func (a *PaginatedArray) First(ctx context.Context) (*Page, error) {
	a.next = ""
	return a.fetch(ctx, a.client.endpoint(a.path, a.params))
}

// Next requests the page linked from the previous one.
func (a *PaginatedArray) Next(ctx context.Context) (*Page, error) {
	if a.next == "" {
		return nil, ErrNoNextPage
	}
	return a.fetch(ctx, a.next)
}

// HasNext reports whether the last fetched page linked to a further page.
func (a *PaginatedArray) HasNext() bool {
	return a.next != ""
}

func (a *PaginatedArray) fetch(ctx context.Context, rawURL string) (*Page, error) {
	token, err := a.client.currentToken()
	if err != nil {
		return nil, err
	}

	var page Page
	if err := a.client.getJSON(ctx, token, rawURL, &page); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", a.path, err)
	}

	a.next = ""
	if page.Paging != nil {
		a.next = page.Paging.Next
	}
	return &page, nil
}
