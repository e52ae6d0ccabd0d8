package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/middleware"
	"petrolife-backend-go/internal/models"
)

// requireSession fetches the session placed by the auth middleware, answering
// 401 itself when it is absent. Handlers call it first and bail on !ok.
func requireSession(c *gin.Context) (*models.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session not found in context", Redirect: models.LoginPath})
		return nil, false
	}
	return session, true
}
