package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// WalletHandler handles wallet request filing (companies), wallet decisions
// (admins), and bank account management.
type WalletHandler struct {
	walletService core.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ws core.WalletService) *WalletHandler {
	return &WalletHandler{walletService: ws}
}

// mapWalletErrorToStatus maps errors from core.WalletService to HTTP status
// codes and ErrorResponse.
func mapWalletErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrWalletRequestNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrWalletRequestNotFound.Error()}
	case errors.Is(err, core.ErrWalletRequestNotPending):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrWalletRequestNotPending.Error()}
	case errors.Is(err, core.ErrCompanyNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrCompanyNotFound.Error()}
	case errors.Is(err, core.ErrBankAccountNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrBankAccountNotFound.Error()}
	case errors.Is(err, core.ErrInsufficientBalance):
		statusCode = http.StatusPaymentRequired
		errResponse = ErrorResponse{Error: core.ErrInsufficientBalance.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// CreateRequest handles POST /wallet/requests (company)
func (h *WalletHandler) CreateRequest(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.CreateWalletRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	request, err := h.walletService.CreateRequest(c.Request.Context(), session.TenantID, req)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// ListOwnRequests handles GET /wallet/requests (company)
func (h *WalletHandler) ListOwnRequests(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	requests, err := h.walletService.ListCompanyRequests(c.Request.Context(), session.TenantID)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListPendingRequests handles GET /wallet/requests/pending (admin)
func (h *WalletHandler) ListPendingRequests(c *gin.Context) {
	requests, err := h.walletService.ListPending(c.Request.Context())
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// DecideRequest handles POST /wallet/requests/:requestId/decision (admin)
func (h *WalletHandler) DecideRequest(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	requestID := c.Param("requestId")
	if requestID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Request ID is required"})
		return
	}

	var decision models.DecideWalletRequestRequest
	if err := c.ShouldBindJSON(&decision); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	request, err := h.walletService.Decide(c.Request.Context(), session.TenantID, requestID, decision)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ListActiveBankAccounts handles GET /wallet/bank-accounts (company)
func (h *WalletHandler) ListActiveBankAccounts(c *gin.Context) {
	accounts, err := h.walletService.ListBankAccounts(c.Request.Context(), true)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// ListAllBankAccounts handles GET /bank-accounts (admin)
func (h *WalletHandler) ListAllBankAccounts(c *gin.Context) {
	accounts, err := h.walletService.ListBankAccounts(c.Request.Context(), false)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// CreateBankAccount handles POST /bank-accounts (admin)
func (h *WalletHandler) CreateBankAccount(c *gin.Context) {
	var req models.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	account, err := h.walletService.CreateBankAccount(c.Request.Context(), req)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// UpdateBankAccount handles PUT /bank-accounts/:accountId (admin)
func (h *WalletHandler) UpdateBankAccount(c *gin.Context) {
	accountID := c.Param("accountId")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bank account ID is required"})
		return
	}

	var req models.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	account, err := h.walletService.UpdateBankAccount(c.Request.Context(), accountID, req)
	if err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteBankAccount handles DELETE /bank-accounts/:accountId (admin)
func (h *WalletHandler) DeleteBankAccount(c *gin.Context) {
	accountID := c.Param("accountId")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bank account ID is required"})
		return
	}

	if err := h.walletService.DeleteBankAccount(c.Request.Context(), accountID); err != nil {
		mapWalletErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Bank account deleted successfully"})
}
