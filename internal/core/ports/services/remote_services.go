package services

import (
	"context"
	"time"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
)

// DataService is the remote accounting service surface the concept flows
// use. Implementations translate these calls into QBO v3 API requests; an
// expired access token surfaces as apperrors.ErrTokenExpired and document
// rejections as *apperrors.FaultError.
type DataService interface {
	// Query runs a QBO query statement and decodes the matching entities
	// into out, which must be a pointer to a slice of the entity type.
	// The remote service's ordering is preserved.
	Query(ctx context.Context, entityType string, query string, out any) error
	// Create persists a new entity and decodes the server's copy (with its
	// assigned id) into out.
	Create(ctx context.Context, entity domain.Entity, out any) error
	// Update performs a full update of an already persisted entity and
	// decodes the resulting state into out.
	Update(ctx context.Context, entity domain.Entity, out any) error
	// FindByID re-reads a persisted entity.
	FindByID(ctx context.Context, entity domain.Entity, out any) error
	// SendEmail asks the service to deliver a transaction to an address.
	SendEmail(ctx context.Context, entity domain.Entity, address string) error
}

// ReportService runs QBO reports.
type ReportService interface {
	ExecuteReport(ctx context.Context, name domain.ReportName, params domain.ReportParams) (*domain.Report, error)
}

// DataServiceFactory builds per-call clients bound to one session's
// credentials. The minor version is passed explicitly here instead of
// being pushed through shared mutable configuration.
type DataServiceFactory interface {
	DataService(creds domain.Credentials) DataService
	DataServiceWithMinorVersion(creds domain.Credentials, minorVersion string) DataService
	ReportService(creds domain.Credentials) ReportService
}

// TokenRefresher exchanges a refresh token for a new token pair. A failed
// grant surfaces as apperrors.ErrTokenRefresh.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, refreshToken2 string, err error)
}

// Clock supplies transaction dates so flows stay testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
