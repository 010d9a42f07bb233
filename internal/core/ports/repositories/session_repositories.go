package repositories

import (
	"context"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
)

// SessionRepository persists browser sessions and their OAuth2 token
// pairs. Sessions are written by the OAuth callback and by the token
// refresh step; everything else only reads.
type SessionRepository interface {
	// FindSessionByID returns apperrors.ErrNotFound when no session exists.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
	// SaveSession inserts or replaces the session wholesale.
	SaveSession(ctx context.Context, session domain.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
}
