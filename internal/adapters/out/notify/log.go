package notify

import (
	"context"
	"log/slog"

	"market/internal/core/ports"
)

// LogNotifier writes notifications to the log. It is the default transport
// for local runs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, notification ports.StatusNotification) error {
	n.logger.InfoContext(ctx, Subject,
		"email_to", notification.Email,
		"order_id", notification.OrderID,
		"username", notification.FirstName,
		"delivery_status", notification.Status,
	)
	return nil
}
