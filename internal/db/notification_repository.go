package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petrolife-backend-go/internal/models"
)

const notificationsCollection = "notifications"

// firestoreNotificationRepository implements the NotificationRepository interface using Firestore.
type firestoreNotificationRepository struct {
	client *firestore.Client
}

// NewFirestoreNotificationRepository creates a new instance of firestoreNotificationRepository.
func NewFirestoreNotificationRepository(client *firestore.Client) NotificationRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for NotificationRepository.")
	}
	return &firestoreNotificationRepository{client: client}
}

// Create adds a new notification document with an auto-generated ID.
func (r *firestoreNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	docRef := r.client.Collection(notificationsCollection).NewDoc()
	n.ID = docRef.ID

	_, err := docRef.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByRecipientID retrieves all notifications for a tenant, newest first.
func (r *firestoreNotificationRepository) GetByRecipientID(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	if recipientID == "" {
		return nil, errors.New("recipientID cannot be empty for GetByRecipientID operation")
	}

	iter := r.client.Collection(notificationsCollection).Where("recipientId", "==", recipientID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var notifications []*models.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notifications for recipient '%s': %w", recipientID, err)
		}

		var n models.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification data for ID '%s': %w", doc.Ref.ID, err)
		}
		n.ID = doc.Ref.ID
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

// MarkRead flips the read flag on a single notification.
func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return errors.New("notificationID cannot be empty for MarkRead operation")
	}
	_, err := r.client.Collection(notificationsCollection).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("notification with ID '%s' not found: %w", notificationID, ErrNotFound)
		}
		return fmt.Errorf("failed to mark notification '%s' as read: %w", notificationID, err)
	}
	return nil
}
