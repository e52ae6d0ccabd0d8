package api

import (
	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
// Redirect, when set, is the path the client should navigate to (login on
// authentication failure, the principal's own dashboard on a role mismatch).
type ErrorResponse struct {
	Error    string `json:"error"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PurchaseResponse returns the post-purchase company state together with the
// price breakdown that was charged.
type PurchaseResponse struct {
	Company *models.Company      `json:"company"`
	Summary *core.PricingSummary `json:"summary"`
}
