package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// CarHandler handles fleet car operations for company accounts.
type CarHandler struct {
	carService core.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(cs core.CarService) *CarHandler {
	return &CarHandler{carService: cs}
}

// mapCarErrorToStatus maps errors from core.CarService to HTTP status codes
// and ErrorResponse.
func mapCarErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrCarNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrCarNotFound.Error()}
	case errors.Is(err, core.ErrForbiddenAccess):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbiddenAccess.Error()}
	case errors.Is(err, core.ErrCarLimitReached):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrCarLimitReached.Error()}
	case errors.Is(err, core.ErrNoActiveSubscription):
		statusCode = http.StatusPaymentRequired
		errResponse = ErrorResponse{Error: core.ErrNoActiveSubscription.Error()}
	case errors.Is(err, core.ErrCompanyNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrCompanyNotFound.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// CreateCar handles POST /cars
func (h *CarHandler) CreateCar(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), session.TenantID, req)
	if err != nil {
		mapCarErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

// ListCars handles GET /cars
func (h *CarHandler) ListCars(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	cars, err := h.carService.ListCars(c.Request.Context(), session.TenantID)
	if err != nil {
		mapCarErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// UpdateCar handles PUT /cars/:carId
func (h *CarHandler) UpdateCar(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	carID := c.Param("carId")
	if carID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Car ID is required"})
		return
	}

	var req models.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), session.TenantID, carID, req)
	if err != nil {
		mapCarErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// DeleteCar handles DELETE /cars/:carId
func (h *CarHandler) DeleteCar(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	carID := c.Param("carId")
	if carID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Car ID is required"})
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), session.TenantID, carID); err != nil {
		mapCarErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Car deleted successfully"})
}
