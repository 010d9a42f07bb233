package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if session, ok := args.Get(0).(*domain.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockTokenRefresher struct {
	mock.Mock
}

func (m *MockTokenRefresher) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) Query(ctx context.Context, entityType string, query string, out any) error {
	return m.Called(ctx, entityType, query, out).Error(0)
}

func (m *MockDataService) Create(ctx context.Context, entity domain.Entity, out any) error {
	return m.Called(ctx, entity, out).Error(0)
}

func (m *MockDataService) Update(ctx context.Context, entity domain.Entity, out any) error {
	return m.Called(ctx, entity, out).Error(0)
}

func (m *MockDataService) FindByID(ctx context.Context, entity domain.Entity, out any) error {
	return m.Called(ctx, entity, out).Error(0)
}

func (m *MockDataService) SendEmail(ctx context.Context, entity domain.Entity, address string) error {
	return m.Called(ctx, entity, address).Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ExecuteReport(ctx context.Context, name domain.ReportName, params domain.ReportParams) (*domain.Report, error) {
	args := m.Called(ctx, name, params)
	if report, ok := args.Get(0).(*domain.Report); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDataServiceFactory hands back the same pre-built mocks regardless of
// credentials; tests that care about which credentials were used record
// them via the mock call history.
type MockDataServiceFactory struct {
	mock.Mock
}

func (m *MockDataServiceFactory) DataService(creds domain.Credentials) portssvc.DataService {
	return m.Called(creds).Get(0).(portssvc.DataService)
}

func (m *MockDataServiceFactory) DataServiceWithMinorVersion(creds domain.Credentials, minorVersion string) portssvc.DataService {
	return m.Called(creds, minorVersion).Get(0).(portssvc.DataService)
}

func (m *MockDataServiceFactory) ReportService(creds domain.Credentials) portssvc.ReportService {
	return m.Called(creds).Get(0).(portssvc.ReportService)
}

// fixedClock pins flow dates so assertions can use exact values.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func testSession(sessionID string) *domain.Session {
	return &domain.Session{
		SessionID: sessionID,
		Credentials: domain.Credentials{
			RealmID:      "realm-1",
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
		},
		CreatedAt: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}
