package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// ErrNotificationNotFound is returned when a notification does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// notificationService implements the NotificationService interface.
type notificationService struct {
	notificationRepo db.NotificationRepository
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(notificationRepo db.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// Notify creates an unread notification for a tenant.
func (s *notificationService) Notify(ctx context.Context, recipientID, title, body string) error {
	n := &models.Notification{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Read:        false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification for recipient '%s': %w", recipientID, err)
	}
	return nil
}

// List retrieves a tenant's notifications, newest first.
func (s *notificationService) List(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.GetByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for recipient '%s': %w", recipientID, err)
	}
	return notifications, nil
}

// MarkRead flips a notification's read flag.
func (s *notificationService) MarkRead(ctx context.Context, notificationID string) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrNotificationNotFound, notificationID)
		}
		return fmt.Errorf("failed to mark notification '%s' read: %w", notificationID, err)
	}
	return nil
}
