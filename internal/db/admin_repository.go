package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"petrolife-backend-go/internal/models"
)

const adminsCollection = "admins"

// firestoreAdminRepository implements the AdminRepository interface using Firestore.
type firestoreAdminRepository struct {
	client *firestore.Client
}

// NewFirestoreAdminRepository creates a new instance of firestoreAdminRepository.
func NewFirestoreAdminRepository(client *firestore.Client) AdminRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AdminRepository.")
	}
	return &firestoreAdminRepository{client: client}
}

// GetByEmail retrieves the first admin record matching the given email.
// Returns ErrNotFound when the registry contains no such record.
func (r *firestoreAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}

	iter := r.client.Collection(adminsCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("admin with email '%s' not found: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admin by email '%s': %w", email, err)
	}

	var admin models.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, fmt.Errorf("failed to decode admin data for email '%s': %w", email, err)
	}
	admin.ID = doc.Ref.ID

	return &admin, nil
}
