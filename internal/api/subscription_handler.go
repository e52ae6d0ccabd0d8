package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// SubscriptionHandler handles plan quoting, coupon validation, and purchases
// for company tenants.
type SubscriptionHandler struct {
	subscriptionService core.SubscriptionService
	catalogService      core.CatalogService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(ss core.SubscriptionService, cs core.CatalogService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: ss, catalogService: cs}
}

// mapSubscriptionErrorToStatus maps errors from core.SubscriptionService to
// HTTP status codes and ErrorResponse.
func mapSubscriptionErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrPlanNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrPlanNotFound.Error()}
	case errors.Is(err, core.ErrCouponNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrCouponNotFound.Error()}
	case errors.Is(err, core.ErrCouponExpired):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrCouponExpired.Error()}
	case errors.Is(err, core.ErrCouponNotApplicable):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrCouponNotApplicable.Error()}
	case errors.Is(err, core.ErrAlreadySubscribed):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrAlreadySubscribed.Error()}
	case errors.Is(err, core.ErrInsufficientBalance):
		statusCode = http.StatusPaymentRequired
		errResponse = ErrorResponse{Error: core.ErrInsufficientBalance.Error()}
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

// ListPlans handles GET /plans
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		mapSubscriptionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Quote handles GET /subscriptions/quote?planId=...&couponCode=...
func (h *SubscriptionHandler) Quote(c *gin.Context) {
	planID := c.Query("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "planId query parameter is required"})
		return
	}
	couponCode := c.Query("couponCode")

	summary, err := h.subscriptionService.Quote(c.Request.Context(), planID, couponCode)
	if err != nil {
		mapSubscriptionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ValidateCoupon handles GET /coupons/:code/validate
func (h *SubscriptionHandler) ValidateCoupon(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Coupon code is required"})
		return
	}

	coupon, err := h.subscriptionService.ValidateCoupon(c.Request.Context(), code)
	if err != nil {
		mapSubscriptionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// Purchase handles POST /subscriptions/purchase
func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.PurchaseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	company, summary, err := h.subscriptionService.Purchase(c.Request.Context(), session.TenantID, req)
	if err != nil {
		mapSubscriptionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, PurchaseResponse{Company: company, Summary: summary})
}
