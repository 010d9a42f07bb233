package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
)

// tokenGuard loads a session's credentials, hands a bound remote client to
// a flow, and replays the flow exactly once after refreshing an expired
// token pair. Refreshed tokens are written back to the session store
// before the replay so a crash between the two attempts doesn't strand
// the old pair.
type tokenGuard struct {
	sessions  portsrepo.SessionRepository
	refresher portssvc.TokenRefresher
	factory   portssvc.DataServiceFactory
	clock     portssvc.Clock
}

func newTokenGuard(sessions portsrepo.SessionRepository, refresher portssvc.TokenRefresher, factory portssvc.DataServiceFactory, clock portssvc.Clock) *tokenGuard {
	return &tokenGuard{sessions: sessions, refresher: refresher, factory: factory, clock: clock}
}

func (g *tokenGuard) data(creds domain.Credentials) portssvc.DataService {
	return g.factory.DataService(creds)
}

func (g *tokenGuard) dataWithMinorVersion(minorVersion string) func(domain.Credentials) portssvc.DataService {
	return func(creds domain.Credentials) portssvc.DataService {
		return g.factory.DataServiceWithMinorVersion(creds, minorVersion)
	}
}

func (g *tokenGuard) reports(creds domain.Credentials) portssvc.ReportService {
	return g.factory.ReportService(creds)
}

// runWithRefresh is the single retry path every concept flow goes
// through. client builds the remote client bound to the session's current
// credentials; op runs the flow against it. Only ErrTokenExpired triggers
// a second attempt, and only after a successful refresh grant; any other
// error, a failed refresh, or a failed second attempt is terminal.
func runWithRefresh[S, T any](ctx context.Context, g *tokenGuard, sessionID string, client func(domain.Credentials) S, op func(S) (T, error)) (T, error) {
	var zero T

	session, err := g.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return zero, fmt.Errorf("loading session: %w", err)
	}
	if session.Credentials.RealmID == "" {
		return zero, apperrors.ErrNoRealm
	}

	out, err := op(client(session.Credentials))
	if err == nil || !errors.Is(err, apperrors.ErrTokenExpired) {
		return out, err
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Access token expired, refreshing token pair")

	accessToken, refreshToken, rerr := g.refresher.Refresh(ctx, session.Credentials.RefreshToken)
	if rerr != nil {
		logger.Error("Token refresh failed", slog.String("error", rerr.Error()))
		return zero, fmt.Errorf("%w: %w", apperrors.ErrTokenRefresh, rerr)
	}

	session.Credentials.AccessToken = accessToken
	session.Credentials.RefreshToken = refreshToken
	session.RefreshedAt = g.clock.Now()
	if serr := g.sessions.SaveSession(ctx, *session); serr != nil {
		logger.Error("Failed to persist refreshed token pair", slog.String("error", serr.Error()))
		return zero, fmt.Errorf("saving refreshed session: %w", serr)
	}

	logger.Info("Retrying with refreshed token pair")
	return op(client(session.Credentials))
}
