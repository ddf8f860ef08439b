package repositories

import (
	"context"
	"sync"
	"time"

	"eqsense/internal/models/db_models"
	"eqsense/pkg/utils"
)

type memoryEntry struct {
	session   db_models.AssessmentSession
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in a TTL map. Expired entries are
// cleaned up lazily on read.
type MemorySessionStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memoryEntry
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemorySessionStore{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
	}
}

func (s *MemorySessionStore) Save(ctx context.Context, session *db_models.AssessmentSession) error {
	expiresAt := time.Now().Add(s.ttl)
	session.ExpiresAt = expiresAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = memoryEntry{session: *session, expiresAt: expiresAt}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*db_models.AssessmentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil, utils.ErrSessionNotFound
	}
	session := e.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
