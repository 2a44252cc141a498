package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/observability"
)

const memoryStoreName = "memory"

// MemoryStore is an in-process session store. Sessions are stored as JSON so
// that callers never share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	expiry   map[string]time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]byte),
		expiry:   make(map[string]time.Time),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	exp := s.expiry[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(exp) {
		if ok {
			s.Delete(ctx, sessionID)
		}
		observability.Session().OnLoad(ctx, memoryStoreName, sessionID, false, nil)
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "parse session")
		observability.Session().OnLoad(ctx, memoryStoreName, sessionID, false, err)
		return nil, err
	}
	observability.Session().OnLoad(ctx, memoryStoreName, sessionID, true, nil)
	return &sess, nil
}

func (s *MemoryStore) Set(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "marshal session")
		observability.Session().OnSave(ctx, memoryStoreName, sess.ID, err)
		return err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = data
	s.expiry[sess.ID] = sess.ExpiresAt
	s.mu.Unlock()

	observability.Session().OnSave(ctx, memoryStoreName, sess.ID, nil)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.expiry, sessionID)
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, exp := range s.expiry {
		if now.After(exp) {
			delete(s.sessions, id)
			delete(s.expiry, id)
		}
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
