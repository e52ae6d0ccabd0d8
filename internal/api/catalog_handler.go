package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// CatalogHandler handles admin-side management of subscription plans and
// coupons.
type CatalogHandler struct {
	catalogService core.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs core.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func mapCatalogErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrPlanNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrPlanNotFound.Error()}
	case errors.Is(err, core.ErrCouponNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrCouponNotFound.Error()}
	case errors.Is(err, core.ErrCouponCodeTaken):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrCouponCodeTaken.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// CreatePlan handles POST /plans (admin)
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var req models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	plan, err := h.catalogService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /plans/:planId (admin)
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	plan, err := h.catalogService.GetPlan(c.Request.Context(), planID)
	if err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan handles PUT /plans/:planId (admin)
func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	var req models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	plan, err := h.catalogService.UpdatePlan(c.Request.Context(), planID, req)
	if err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /plans/:planId (admin)
func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	if err := h.catalogService.DeletePlan(c.Request.Context(), planID); err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Plan deleted successfully"})
}

// CreateCoupon handles POST /coupons (admin)
func (h *CatalogHandler) CreateCoupon(c *gin.Context) {
	var req models.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	coupon, err := h.catalogService.CreateCoupon(c.Request.Context(), req)
	if err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// ListCoupons handles GET /coupons (admin)
func (h *CatalogHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.catalogService.ListCoupons(c.Request.Context())
	if err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// DeleteCoupon handles DELETE /coupons/:couponId (admin)
func (h *CatalogHandler) DeleteCoupon(c *gin.Context) {
	couponID := c.Param("couponId")
	if couponID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Coupon ID is required"})
		return
	}

	if err := h.catalogService.DeleteCoupon(c.Request.Context(), couponID); err != nil {
		mapCatalogErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Coupon deleted successfully"})
}
