package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
)

// TenantHandler exposes company self-service data and admin-side tenant
// listings.
type TenantHandler struct {
	tenantService core.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(ts core.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: ts}
}

// GetOwnCompany handles GET /companies/me (company). Returns the caller's
// company profile including balance and the current subscription snapshot.
func (h *TenantHandler) GetOwnCompany(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	company, err := h.tenantService.GetCompany(c.Request.Context(), session.TenantID)
	if err != nil {
		if errors.Is(err, core.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrCompanyNotFound.Error()})
			return
		}
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, company)
}

// ListCompanies handles GET /companies (admin)
func (h *TenantHandler) ListCompanies(c *gin.Context) {
	companies, err := h.tenantService.ListCompanies(c.Request.Context())
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ListDistributors handles GET /service-distributers (admin)
func (h *TenantHandler) ListDistributors(c *gin.Context) {
	distributors, err := h.tenantService.ListDistributors(c.Request.Context())
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, distributors)
}
