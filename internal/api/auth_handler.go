package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/middleware"
)

// AuthHandler handles session establishment after client-side Firebase sign-in.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// ResolveSession handles POST /auth/session. The Authenticate middleware has
// already verified the token and resolved the role; this endpoint just hands
// the session back so the client knows which dashboard to navigate to.
func (h *AuthHandler) ResolveSession(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session not found in context"})
		return
	}
	c.JSON(http.StatusOK, session)
}
