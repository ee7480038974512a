package ports

import (
	"context"
	"time"
)

// StatusNotification tells an order owner about a new delivery status.
type StatusNotification struct {
	Email     string    `json:"email_to"`
	OrderID   string    `json:"order_id"`
	FirstName string    `json:"username"`
	Status    string    `json:"delivery_status"`
	ChangedAt time.Time `json:"changed_at"`
}

// Notifier delivers status notifications to an external channel.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n StatusNotification) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
