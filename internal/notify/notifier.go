// Package notify defines the notification interface and implementations
// used to announce feed activity.
package notify

import (
	"context"
)

// PostNotice describes an item that was published to a feed.
type PostNotice struct {
	Provider    string
	Target      string
	PostID      string
	Title       string
	Link        string
	Description string
}

// Notifier defines the interface for announcing published posts.
type Notifier interface {
	PostPublished(ctx context.Context, notice *PostNotice) error
}
