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

const stationsCollection = "stations"

// firestoreStationRepository implements the StationRepository interface using Firestore.
type firestoreStationRepository struct {
	client *firestore.Client
}

// NewFirestoreStationRepository creates a new instance of firestoreStationRepository.
func NewFirestoreStationRepository(client *firestore.Client) StationRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for StationRepository.")
	}
	return &firestoreStationRepository{client: client}
}

// Create adds a new station document to Firestore with an auto-generated ID.
func (r *firestoreStationRepository) Create(ctx context.Context, station *models.Station) (string, error) {
	docRef := r.client.Collection(stationsCollection).NewDoc()
	station.ID = docRef.ID

	_, err := docRef.Create(ctx, station)
	if err != nil {
		return "", fmt.Errorf("failed to create station: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a station document from Firestore by its ID.
func (r *firestoreStationRepository) GetByID(ctx context.Context, stationID string) (*models.Station, error) {
	if stationID == "" {
		return nil, errors.New("stationID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(stationsCollection).Doc(stationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("station with ID '%s' not found: %w", stationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get station with ID '%s': %w", stationID, err)
	}

	var station models.Station
	if err := docSnap.DataTo(&station); err != nil {
		return nil, fmt.Errorf("failed to decode station data for ID '%s': %w", stationID, err)
	}
	station.ID = docSnap.Ref.ID

	return &station, nil
}

// GetByDistributorID retrieves all stations operated by a service-distributer, newest first.
func (r *firestoreStationRepository) GetByDistributorID(ctx context.Context, distributorID string) ([]*models.Station, error) {
	if distributorID == "" {
		return nil, errors.New("distributorID cannot be empty for GetByDistributorID operation")
	}
	return r.collect(r.client.Collection(stationsCollection).Where("distributorId", "==", distributorID).OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

// List retrieves all stations across distributors, newest first.
func (r *firestoreStationRepository) List(ctx context.Context) ([]*models.Station, error) {
	return r.collect(r.client.Collection(stationsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

func (r *firestoreStationRepository) collect(iter *firestore.DocumentIterator) ([]*models.Station, error) {
	defer iter.Stop()

	var stations []*models.Station
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate stations: %w", err)
		}

		var station models.Station
		if err := doc.DataTo(&station); err != nil {
			return nil, fmt.Errorf("failed to decode station data for ID '%s': %w", doc.Ref.ID, err)
		}
		station.ID = doc.Ref.ID
		stations = append(stations, &station)
	}
	return stations, nil
}

// Update overwrites an existing station document.
func (r *firestoreStationRepository) Update(ctx context.Context, station *models.Station) error {
	if station.ID == "" {
		return errors.New("station ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(stationsCollection).Doc(station.ID).Set(ctx, station, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update station with ID '%s': %w", station.ID, err)
	}
	return nil
}

// Delete removes a station document by its ID.
func (r *firestoreStationRepository) Delete(ctx context.Context, stationID string) error {
	if stationID == "" {
		return errors.New("stationID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(stationsCollection).Doc(stationID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete station with ID '%s': %w", stationID, err)
	}
	return nil
}
