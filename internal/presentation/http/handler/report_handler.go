package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linato/linato-pos/internal/application/service"
	"github.com/linato/linato-pos/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportDate parses the date query parameter, defaulting to today
func reportDate(c *gin.Context) (time.Time, bool) {
	d := c.Query("date")
	if d == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", d, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// Daily returns the one-day sales rollup
func (h *ReportHandler) Daily(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.reportService.DailySummary(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary retrieved", summary)
}

// SalesByProduct returns the day's sales grouped by product
func (h *ReportHandler) SalesByProduct(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rows, err := h.reportService.SalesByProduct(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product sales retrieved", rows)
}

// SalesByCategory returns the day's sales grouped by category
func (h *ReportHandler) SalesByCategory(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rows, err := h.reportService.SalesByCategory(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category sales retrieved", rows)
}

// Shift returns the cash reconciliation snapshot for one drawer session.
// Without a shift_id parameter it reports the caller's open shift.
func (h *ReportHandler) Shift(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var shiftID *uuid.UUID
	if raw := c.Query("shift_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid shift id")
			return
		}
		shiftID = &id
	}

	report, err := h.reportService.Shift(c.Request.Context(), *userID, shiftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift report retrieved", report)
}
