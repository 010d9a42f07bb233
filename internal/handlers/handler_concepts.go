package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/qbodev/qbo_concepts_app/internal/apperrors"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/dto"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
)

// Collapsed error payloads, kept verbatim from the tutorial this app
// demonstrates. Full details go to the log only.
const (
	invalidTokenMessage = "InvalidToken - Refreshtoken and try again"
	failedMessage       = "Failed"
)

// conceptHandler exposes one endpoint per QBO concept flow.
type conceptHandler struct {
	services *portssvc.ServiceContainer
}

func newConceptHandler(services *portssvc.ServiceContainer) *conceptHandler {
	return &conceptHandler{services: services}
}

// run executes a concept flow with the session id from the request
// context and renders either the resulting entity or the collapsed error
// payload.
func run(c *gin.Context, flow func(ctx *gin.Context, sessionID string) (any, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Session id missing from request context")
		c.JSON(http.StatusUnauthorized, gin.H{"response": invalidTokenMessage})
		return
	}

	result, err := flow(c, sessionID)
	if err != nil {
		renderConceptError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func renderConceptError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTokenRefresh), errors.Is(err, apperrors.ErrTokenExpired):
		logger.Warn("Concept call failed on expired credentials", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"response": invalidTokenMessage})
	case errors.Is(err, apperrors.ErrValidation):
		var fault *apperrors.FaultError
		if errors.As(err, &fault) {
			for _, detail := range fault.Errors {
				logger.Error("Error while calling the API", slog.String("code", detail.Code), slog.String("message", detail.Message), slog.String("detail", detail.Detail))
			}
		} else {
			logger.Error("Error while calling the API", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"response": failedMessage})
	default:
		logger.Error("Concept call failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"response": failedMessage})
	}
}

// accounting godoc
// @Summary Journal entry concept
// @Description Resolves a bank account, a credit card account and a vendor, then creates a two-line journal entry.
// @Tags concepts
// @Produce json
// @Success 200 {object} domain.JournalEntry
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /concepts/accounting [get]
func (h *conceptHandler) accounting(c *gin.Context) {
	run(c, func(ctx *gin.Context, sessionID string) (any, error) {
		return h.services.Accounting.CreateJournalEntry(ctx.Request.Context(), sessionID)
	})
}

// bill godoc
// @Summary Payables concept
// @Description Creates a vendor, a bill, a check payment for the bill and a vendor credit; returns the vendor credit.
// @Tags concepts
// @Produce json
// @Success 200 {object} domain.VendorCredit
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /concepts/bill [get]
func (h *conceptHandler) bill(c *gin.Context) {
	run(c, func(ctx *gin.Context, sessionID string) (any, error) {
		return h.services.Bill.RunBillFlow(ctx.Request.Context(), sessionID)
	})
}

// inventory godoc
// @Summary Inventory tracking concept
// @Description Creates an inventory item with ten units, invoices one unit, and returns the re-read item.
// @Tags concepts
// @Produce json
// @Success 200 {object} domain.Item
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /concepts/inventory [get]
func (h *conceptHandler) inventory(c *gin.Context) {
	run(c, func(ctx *gin.Context, sessionID string) (any, error) {
		return h.services.Inventory.RunInventoryFlow(ctx.Request.Context(), sessionID)
	})
}

// invoice godoc
// @Summary Receivables concept
// @Description Creates a customer, a service item and an invoice, emails it, and returns the recorded payment.
// @Tags concepts
// @Produce json
// @Success 200 {object} domain.Payment
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /concepts/invoice [get]
func (h *conceptHandler) invoice(c *gin.Context) {
	run(c, func(ctx *gin.Context, sessionID string) (any, error) {
		return h.services.Invoice.RunInvoiceFlow(ctx.Request.Context(), sessionID)
	})
}

// jobs godoc
// @Summary Estimate-to-invoice concept
// @Description Creates and revises an estimate, derives an invoice from it, and appends a discount line.
// @Tags concepts
// @Produce json
// @Success 200 {object} domain.Invoice
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /concepts/jobs [get]
func (h *conceptHandler) jobs(c *gin.Context) {
	run(c, func(ctx *gin.Context, sessionID string) (any, error) {
		return h.services.Jobs.RunJobsFlow(ctx.Request.Context(), sessionID)
	})
}

// reports godoc
// @Summary Reporting concept
// @Description Runs the balance sheet and profit-and-loss reports for the requested period.
// @Tags concepts
// @Produce json
// @Param start_date query string false "Period start (yyyy-MM-dd)"
// @Param end_date query string false "Period end (yyyy-MM-dd)"
// @Param summarize_column_by query string false "Column summarization"
// @Param accounting_method query string false "Cash or Accrual"
// @Success 200 {array} domain.Report
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /concepts/reports [get]
func (h *conceptHandler) reports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReportParamsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				logger.Warn("Invalid report parameter", slog.String("field", fieldErr.Field()), slog.String("rule", fieldErr.Tag()))
			}
		} else {
			logger.Warn("Invalid report parameters", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"response": "Invalid report parameters"})
		return
	}

	run(c, func(ctx *gin.Context, sessionID string) (any, error) {
		return h.services.Reports.RunReports(ctx.Request.Context(), sessionID, req.ToReportParams())
	})
}

// registerConceptRoutes registers the per-concept endpoints on the
// authenticated group.
func registerConceptRoutes(group *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newConceptHandler(services)
	concepts := group.Group("/concepts")
	concepts.GET("/accounting", h.accounting)
	concepts.GET("/bill", h.bill)
	concepts.GET("/inventory", h.inventory)
	concepts.GET("/invoice", h.invoice)
	concepts.GET("/jobs", h.jobs)
	concepts.GET("/reports", h.reports)
}
