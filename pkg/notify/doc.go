// Package notify delivers one-shot, self-expiring notifications to a user.
//
// A recipient has at most one active notification; a new one replaces it.
// Two implementations exist: Memory, which measures expiry on an injected
// clock, and Redis, which lets the server expire the key.
package notify
