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

const distributorsCollection = "serviceDistributers"

// firestoreDistributorRepository implements the DistributorRepository interface using Firestore.
type firestoreDistributorRepository struct {
	client *firestore.Client
}

// NewFirestoreDistributorRepository creates a new instance of firestoreDistributorRepository.
func NewFirestoreDistributorRepository(client *firestore.Client) DistributorRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for DistributorRepository.")
	}
	return &firestoreDistributorRepository{client: client}
}

// GetByEmail retrieves the first service-distributer record matching the given email.
func (r *firestoreDistributorRepository) GetByEmail(ctx context.Context, email string) (*models.Distributor, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}

	iter := r.client.Collection(distributorsCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("service-distributer with email '%s' not found: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query service-distributer by email '%s': %w", email, err)
	}

	var distributor models.Distributor
	if err := doc.DataTo(&distributor); err != nil {
		return nil, fmt.Errorf("failed to decode service-distributer data for email '%s': %w", email, err)
	}
	distributor.ID = doc.Ref.ID

	return &distributor, nil
}

// GetByID retrieves a service-distributer document from Firestore by its ID.
func (r *firestoreDistributorRepository) GetByID(ctx context.Context, distributorID string) (*models.Distributor, error) {
	if distributorID == "" {
		return nil, errors.New("distributorID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(distributorsCollection).Doc(distributorID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("service-distributer with ID '%s' not found: %w", distributorID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service-distributer with ID '%s': %w", distributorID, err)
	}

	var distributor models.Distributor
	if err := docSnap.DataTo(&distributor); err != nil {
		return nil, fmt.Errorf("failed to decode service-distributer data for ID '%s': %w", distributorID, err)
	}
	distributor.ID = docSnap.Ref.ID

	return &distributor, nil
}

// List retrieves all service-distributer records, newest first.
func (r *firestoreDistributorRepository) List(ctx context.Context) ([]*models.Distributor, error) {
	iter := r.client.Collection(distributorsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var distributors []*models.Distributor
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate service-distributers: %w", err)
		}

		var distributor models.Distributor
		if err := doc.DataTo(&distributor); err != nil {
			return nil, fmt.Errorf("failed to decode service-distributer data for ID '%s': %w", doc.Ref.ID, err)
		}
		distributor.ID = doc.Ref.ID
		distributors = append(distributors, &distributor)
	}
	return distributors, nil
}
