package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
)

// PgxSessionRepository persists sessions and their OAuth token pairs in
// PostgreSQL so tokens survive restarts. Schema lives under migrations/.
type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

// NewPgxSessionRepository creates a session repository backed by the
// given pool.
func NewPgxSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{pool: pool}
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, realm_id, access_token, refresh_token, created_at, refreshed_at
		FROM sessions
		WHERE session_id = $1;
	`
	var session domain.Session
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&session.SessionID,
		&session.Credentials.RealmID,
		&session.Credentials.AccessToken,
		&session.Credentials.RefreshToken,
		&session.CreatedAt,
		&session.RefreshedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	query := `
		INSERT INTO sessions (session_id, realm_id, access_token, refresh_token, created_at, refreshed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO UPDATE SET
			realm_id = EXCLUDED.realm_id,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			refreshed_at = EXCLUDED.refreshed_at;
	`
	_, err := r.pool.Exec(ctx, query,
		session.SessionID,
		session.Credentials.RealmID,
		session.Credentials.AccessToken,
		session.Credentials.RefreshToken,
		session.CreatedAt,
		session.RefreshedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.SessionID, err)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1;`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
