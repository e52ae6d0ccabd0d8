package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// StationHandler handles fuel station operations for service-distributer
// accounts, plus the admin-wide station listing.
type StationHandler struct {
	stationService core.StationService
}

// NewStationHandler creates a new StationHandler.
func NewStationHandler(ss core.StationService) *StationHandler {
	return &StationHandler{stationService: ss}
}

func mapStationErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrStationNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrStationNotFound.Error()}
	case errors.Is(err, core.ErrForbiddenAccess):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbiddenAccess.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// CreateStation handles POST /stations
func (h *StationHandler) CreateStation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	station, err := h.stationService.CreateStation(c.Request.Context(), session.TenantID, req)
	if err != nil {
		mapStationErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, station)
}

// ListStations handles GET /stations
func (h *StationHandler) ListStations(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	stations, err := h.stationService.ListStations(c.Request.Context(), session.TenantID)
	if err != nil {
		mapStationErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

// ListAllStations handles GET /stations/all (admin)
func (h *StationHandler) ListAllStations(c *gin.Context) {
	stations, err := h.stationService.ListAllStations(c.Request.Context())
	if err != nil {
		mapStationErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

// UpdateStation handles PUT /stations/:stationId
func (h *StationHandler) UpdateStation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	stationID := c.Param("stationId")
	if stationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Station ID is required"})
		return
	}

	var req models.UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	station, err := h.stationService.UpdateStation(c.Request.Context(), session.TenantID, stationID, req)
	if err != nil {
		mapStationErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, station)
}

// DeleteStation handles DELETE /stations/:stationId
func (h *StationHandler) DeleteStation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	stationID := c.Param("stationId")
	if stationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Station ID is required"})
		return
	}

	if err := h.stationService.DeleteStation(c.Request.Context(), session.TenantID, stationID); err != nil {
		mapStationErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Station deleted successfully"})
}
