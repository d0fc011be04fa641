package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/ASLawan/alx-files-manager/internal/common"
)

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is an in-process Store for development and tests. Expired
// entries are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable in tests.
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionKey(token)] = memoryEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	e, ok := s.entries[sessionKey(token)]
	s.mu.RUnlock()

	if !ok {
		return "", common.ErrorNotFound
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionKey(token))
		s.mu.Unlock()
		return "", common.ErrorNotFound
	}
	return e.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionKey(token))
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
