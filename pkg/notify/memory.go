package notify

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

var _ Notifier = (*Memory)(nil)

// Memory keeps notifications in process
type Memory struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	entries map[string]Notification
}

// NewMemory creates a Memory notifier. A nil clock uses the wall clock; a
// non-positive ttl uses DefaultTTL.
func NewMemory(c clock.Clock, ttl time.Duration) *Memory {
	if c == nil {
		c = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{clock: c, ttl: ttl, entries: map[string]Notification{}}
}

func (m *Memory) Notify(_ context.Context, recipient string, n Notification) error {
	now := m.clock.Now()
	n.CreatedAt = now
	n.ExpiresAt = now.Add(m.ttl)

	m.mu.Lock()
	m.entries[recipient] = n
	m.mu.Unlock()
	return nil
}

func (m *Memory) Active(_ context.Context, recipient string) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.entries[recipient]
	if !ok {
		return nil, nil
	}
	if !m.clock.Now().Before(n.ExpiresAt) {
		delete(m.entries, recipient)
		return nil, nil
	}
	return &n, nil
}
