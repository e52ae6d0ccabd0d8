package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
)

// ReportHandler handles financial reporting for the admin dashboard.
type ReportHandler struct {
	reportService core.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs core.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// SalesSummary handles GET /reports/sales?from=RFC3339&to=RFC3339 (admin).
// The window defaults to the last 30 days when no bounds are given.
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'from' timestamp", Details: err.Error()})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'to' timestamp", Details: err.Error()})
			return
		}
		to = parsed
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "'from' must be before 'to'"})
		return
	}

	report, err := h.reportService.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, report)
}
