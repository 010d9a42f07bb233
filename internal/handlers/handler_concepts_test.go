package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qbodev/qbo_concepts_app/internal/adapters/session"
	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
	"github.com/qbodev/qbo_concepts_app/internal/utils"
)

const testSessionSecret = "test-session-secret"

type MockAccountingSvc struct{ mock.Mock }

func (m *MockAccountingSvc) CreateJournalEntry(ctx context.Context, sessionID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, sessionID)
	if entry, ok := args.Get(0).(*domain.JournalEntry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReportsSvc struct{ mock.Mock }

func (m *MockReportsSvc) RunReports(ctx context.Context, sessionID string, params domain.ReportParams) ([]domain.Report, error) {
	args := m.Called(ctx, sessionID, params)
	if reports, ok := args.Get(0).([]domain.Report); ok {
		return reports, args.Error(1)
	}
	return nil, args.Error(1)
}

func newConceptRouter(t *testing.T, services *portssvc.ServiceContainer) (*gin.Engine, *http.Cookie) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemoryRepository()
	services.Sessions = sessions

	require.NoError(t, sessions.SaveSession(context.Background(), domain.Session{
		SessionID: "s1",
		Credentials: domain.Credentials{
			RealmID:      "realm-1",
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
		},
		CreatedAt: time.Now().UTC(),
	}))

	token, err := utils.GenerateSessionJWT("s1", testSessionSecret, time.Hour, "test")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	v1 := r.Group("/api/v1", middleware.SessionAuth(testSessionSecret, sessions))
	registerConceptRoutes(v1, services)

	return r, &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func TestAccountingEndpoint_ReturnsEntity(t *testing.T) {
	accounting := new(MockAccountingSvc)
	router, cookie := newConceptRouter(t, &portssvc.ServiceContainer{Accounting: accounting})

	accounting.On("CreateJournalEntry", mock.Anything, "s1").
		Return(&domain.JournalEntry{ID: "227", PrivateNote: "Journal Entry"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/concepts/accounting", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var entry domain.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "227", entry.ID)
	accounting.AssertExpectations(t)
}

func TestAccountingEndpoint_MissingCookie(t *testing.T) {
	accounting := new(MockAccountingSvc)
	router, _ := newConceptRouter(t, &portssvc.ServiceContainer{Accounting: accounting})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/concepts/accounting", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No realm ID.")
	accounting.AssertNotCalled(t, "CreateJournalEntry", mock.Anything, mock.Anything)
}

func TestAccountingEndpoint_RefreshFailureCollapses(t *testing.T) {
	accounting := new(MockAccountingSvc)
	router, cookie := newConceptRouter(t, &portssvc.ServiceContainer{Accounting: accounting})

	accounting.On("CreateJournalEntry", mock.Anything, "s1").
		Return(nil, apperrors.ErrTokenRefresh).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/concepts/accounting", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"response":"InvalidToken - Refreshtoken and try again"}`, w.Body.String())
}

func TestAccountingEndpoint_FaultCollapsesToFailed(t *testing.T) {
	accounting := new(MockAccountingSvc)
	router, cookie := newConceptRouter(t, &portssvc.ServiceContainer{Accounting: accounting})

	fault := &apperrors.FaultError{
		Type:   "ValidationFault",
		Errors: []apperrors.FaultDetail{{Code: "6240", Message: "Duplicate Name Exists Error"}},
	}
	accounting.On("CreateJournalEntry", mock.Anything, "s1").Return(nil, fault).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/concepts/accounting", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"response":"Failed"}`, w.Body.String())
}

func TestReportsEndpoint_AppliesDefaults(t *testing.T) {
	reports := new(MockReportsSvc)
	router, cookie := newConceptRouter(t, &portssvc.ServiceContainer{Reports: reports})

	reports.On("RunReports", mock.Anything, "s1", domain.ReportParams{
		StartDate:         "2018-01-01",
		EndDate:           "2018-04-06",
		SummarizeColumnBy: "Customers",
		AccountingMethod:  "Accrual",
	}).Return([]domain.Report{{}, {}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/concepts/reports", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	reports.AssertExpectations(t)
}

func TestReportsEndpoint_OverridesAndValidation(t *testing.T) {
	reports := new(MockReportsSvc)
	router, cookie := newConceptRouter(t, &portssvc.ServiceContainer{Reports: reports})

	reports.On("RunReports", mock.Anything, "s1", domain.ReportParams{
		StartDate:         "2019-01-01",
		EndDate:           "2019-06-30",
		SummarizeColumnBy: "Month",
		AccountingMethod:  "Cash",
	}).Return([]domain.Report{{}, {}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/concepts/reports?start_date=2019-01-01&end_date=2019-06-30&summarize_column_by=Month&accounting_method=Cash", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Bad date format never reaches the service.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/concepts/reports?start_date=01-01-2019", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	reports.AssertExpectations(t)
}
