package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Notifier = (*Redis)(nil)

const keyPrefix = "complianceos:notification:"

// Redis stores notifications as keys with a server-side expiry
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

// NewRedis creates a Redis notifier over client
func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl, now: time.Now}
}

// DialRedis parses a redis:// URL and returns a notifier over a new client
func DialRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewRedis(redis.NewClient(opts), ttl), nil
}

// Ping checks connectivity
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Notify(ctx context.Context, recipient string, n Notification) error {
	now := r.now()
	n.CreatedAt = now
	n.ExpiresAt = now.Add(r.ttl)

	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(recipient), data, r.ttl).Err()
}

func (r *Redis) Active(ctx context.Context, recipient string) (*Notification, error) {
	data, err := r.client.Get(ctx, key(recipient)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decoding notification: %w", err)
	}
	return &n, nil
}

func key(recipient string) string {
	return keyPrefix + recipient
}
