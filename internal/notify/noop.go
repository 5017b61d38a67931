package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging the notice. It is used when
// Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that only logs.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// PostPublished logs the published post.
func (n *NoOpNotifier) PostPublished(_ context.Context, notice *PostNotice) error {
	n.log.Info("posted",
		"provider", notice.Provider,
		"target", notice.Target,
		"post_id", notice.PostID,
		"title", notice.Title,
	)
	return nil
}
