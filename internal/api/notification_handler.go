package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"petrolife-backend-go/internal/core"
)

// NotificationHandler handles dashboard notification listing and read marks.
type NotificationHandler struct {
	notificationService core.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns core.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), session.TenantID)
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles POST /notifications/:notificationId/read
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notificationID := c.Param("notificationId")
	if notificationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Notification ID is required"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID); err != nil {
		if errors.Is(err, core.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrNotificationNotFound.Error()})
			return
		}
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Notification marked as read"})
}
