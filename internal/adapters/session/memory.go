package session

import (
	"context"
	"sync"

	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
)

// MemoryRepository keeps sessions in process memory, mirroring the
// servlet-session behavior the tutorial started from. Tokens are lost on
// restart; use the pgsql store when that matters.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

var _ portsrepo.SessionRepository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory session store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]domain.Session)}
}

func (r *MemoryRepository) FindSessionByID(_ context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &session, nil
}

func (r *MemoryRepository) SaveSession(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.SessionID] = session
	return nil
}

func (r *MemoryRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
