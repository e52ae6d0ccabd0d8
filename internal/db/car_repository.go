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

const carsCollection = "cars"

// firestoreCarRepository implements the CarRepository interface using Firestore.
type firestoreCarRepository struct {
	client *firestore.Client
}

// NewFirestoreCarRepository creates a new instance of firestoreCarRepository.
func NewFirestoreCarRepository(client *firestore.Client) CarRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CarRepository.")
	}
	return &firestoreCarRepository{client: client}
}

// Create adds a new car document to Firestore with an auto-generated ID.
func (r *firestoreCarRepository) Create(ctx context.Context, car *models.Car) (string, error) {
	docRef := r.client.Collection(carsCollection).NewDoc()
	car.ID = docRef.ID

	_, err := docRef.Create(ctx, car)
	if err != nil {
		return "", fmt.Errorf("failed to create car: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a car document from Firestore by its ID.
func (r *firestoreCarRepository) GetByID(ctx context.Context, carID string) (*models.Car, error) {
	if carID == "" {
		return nil, errors.New("carID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(carsCollection).Doc(carID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("car with ID '%s' not found: %w", carID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get car with ID '%s': %w", carID, err)
	}

	var car models.Car
	if err := docSnap.DataTo(&car); err != nil {
		return nil, fmt.Errorf("failed to decode car data for ID '%s': %w", carID, err)
	}
	car.ID = docSnap.Ref.ID

	return &car, nil
}

// GetByCompanyID retrieves all cars registered by a company, newest first.
func (r *firestoreCarRepository) GetByCompanyID(ctx context.Context, companyID string) ([]*models.Car, error) {
	if companyID == "" {
		return nil, errors.New("companyID cannot be empty for GetByCompanyID operation")
	}

	iter := r.client.Collection(carsCollection).Where("companyId", "==", companyID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var cars []*models.Car
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cars for company '%s': %w", companyID, err)
		}

		var car models.Car
		if err := doc.DataTo(&car); err != nil {
			return nil, fmt.Errorf("failed to decode car data for ID '%s': %w", doc.Ref.ID, err)
		}
		car.ID = doc.Ref.ID
		cars = append(cars, &car)
	}
	return cars, nil
}

// CountByCompanyID counts the cars a company has registered, for plan limit checks.
func (r *firestoreCarRepository) CountByCompanyID(ctx context.Context, companyID string) (int, error) {
	if companyID == "" {
		return 0, errors.New("companyID cannot be empty for CountByCompanyID operation")
	}

	docs, err := r.client.Collection(carsCollection).Where("companyId", "==", companyID).Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count cars for company '%s': %w", companyID, err)
	}
	return len(docs), nil
}

// Update overwrites an existing car document.
func (r *firestoreCarRepository) Update(ctx context.Context, car *models.Car) error {
	if car.ID == "" {
		return errors.New("car ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(carsCollection).Doc(car.ID).Set(ctx, car, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update car with ID '%s': %w", car.ID, err)
	}
	return nil
}

// Delete removes a car document by its ID.
func (r *firestoreCarRepository) Delete(ctx context.Context, carID string) error {
	if carID == "" {
		return errors.New("carID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(carsCollection).Doc(carID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete car with ID '%s': %w", carID, err)
	}
	return nil
}
