package audit

import (
	"sync"
	"time"
)

// Entry is a recorded audit event as served by the audit page
type Entry struct {
	Timestamp time.Time                    `json:"timestamp"`
	MessageID string                       `json:"msgid"`
	Severity  string                       `json:"severity"`
	Message   string                       `json:"message"`
	Data      map[string]map[string]string `json:"data,omitempty"`
}

// NewEntry snapshots an event at the given time
func NewEntry(event Event, at time.Time) Entry {
	return Entry{
		Timestamp: at.UTC(),
		MessageID: event.MessageID(),
		Severity:  event.Severity().String(),
		Message:   event.Message(),
		Data:      event.StructuredData(),
	}
}

// Reader serves the newest entries for the audit page
type Reader interface {
	Recent(limit int) ([]Entry, error)
}

// Ring is a fixed-size buffer of the most recent entries
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// NewRing creates a ring holding up to size entries
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{entries: make([]Entry, size)}
}

// Add stores an entry, evicting the oldest when full
func (r *Ring) Add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
}

// Entries returns the stored entries, newest first
func (r *Ring) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.next
	if r.full {
		n = len(r.entries)
	}
	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, r.entries[(r.next-i+len(r.entries))%len(r.entries)])
	}
	return out
}

// Recent returns up to limit entries, newest first
func (r *Ring) Recent(limit int) ([]Entry, error) {
	entries := r.Entries()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
