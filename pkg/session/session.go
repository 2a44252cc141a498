// Package session keeps editor state between HTTP requests.
//
// Each browser gets one session holding a serialized [editor.State]. Two
// backends implement [Store]:
//   - [MemoryStore]: in-process map for a single server instance
//   - [RedisStore]: Redis-backed storage shared by several instances
//
// # Usage
//
//	store := session.NewMemoryStore()
//	// or
//	store, err := session.NewRedisStore(ctx, session.RedisConfig{Addr: "localhost:6379"})
//
//	sess := session.New(editor.State{}, session.DefaultTTL)
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if sess == nil {
//	    // Session not found or expired
//	}
//
// Concurrent requests against one session are last-write-wins.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/daireno/pkg/editor"
)

// DefaultTTL is the default session lifetime.
const DefaultTTL = 24 * time.Hour

// Session stores one editor's state.
type Session struct {
	ID        string       `json:"id"`
	State     editor.State `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch pushes the expiry ttl into the future.
func (s *Session) Touch(ttl time.Duration) {
	s.ExpiresAt = time.Now().Add(ttl)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session until its ExpiresAt.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions (no-op for Redis).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// NewID returns a fresh random session ID.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape of an ID returned by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// New creates a session holding state that expires after ttl.
func New(state editor.State, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        NewID(),
		State:     state,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
