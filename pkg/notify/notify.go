package notify

import (
	"context"
	"time"
)

// DefaultTTL is how long a notification stays visible
const DefaultTTL = 5 * time.Second

// Notification is a toast shown to a single user
type Notification struct {
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Notifier stores notifications per recipient
type Notifier interface {
	// Notify replaces the recipient's active notification.
	Notify(ctx context.Context, recipient string, n Notification) error

	// Active returns the recipient's unexpired notification, or nil.
	Active(ctx context.Context, recipient string) (*Notification, error)
}
