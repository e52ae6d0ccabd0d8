package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// ErrStationNotFound is returned when a fuel station does not exist.
var ErrStationNotFound = errors.New("station not found")

// stationService implements the StationService interface.
type stationService struct {
	stationRepo db.StationRepository
}

// NewStationService creates a new StationService instance.
func NewStationService(stationRepo db.StationRepository) StationService {
	return &stationService{stationRepo: stationRepo}
}

// CreateStation registers a fuel station under a service-distributer.
// New stations start active.
func (s *stationService) CreateStation(ctx context.Context, distributorID string, req models.CreateStationRequest) (*models.Station, error) {
	newStation := &models.Station{
		DistributorID: distributorID,
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		FuelTypes:     req.FuelTypes,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	stationID, err := s.stationRepo.Create(ctx, newStation)
	if err != nil {
		return nil, fmt.Errorf("failed to create station in repository: %w", err)
	}
	newStation.ID = stationID

	return newStation, nil
}

// ListStations retrieves a distributor's own stations.
func (s *stationService) ListStations(ctx context.Context, distributorID string) ([]*models.Station, error) {
	stations, err := s.stationRepo.GetByDistributorID(ctx, distributorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations for distributor '%s': %w", distributorID, err)
	}
	return stations, nil
}

// ListAllStations retrieves every station across distributors (admin view).
func (s *stationService) ListAllStations(ctx context.Context) ([]*models.Station, error) {
	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return stations, nil
}

// getOwnedStation fetches a station and verifies the distributor operates it.
func (s *stationService) getOwnedStation(ctx context.Context, distributorID, stationID string) (*models.Station, error) {
	station, err := s.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrStationNotFound, stationID)
		}
		return nil, fmt.Errorf("failed to get station '%s': %w", stationID, err)
	}
	if station.DistributorID != distributorID {
		return nil, fmt.Errorf("%w: station '%s' belongs to another distributor", ErrForbiddenAccess, stationID)
	}
	return station, nil
}

// UpdateStation applies the provided fields to a distributor-owned station.
func (s *stationService) UpdateStation(ctx context.Context, distributorID, stationID string, req models.UpdateStationRequest) (*models.Station, error) {
	station, err := s.getOwnedStation(ctx, distributorID, stationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		station.Name = *req.Name
	}
	if req.Address != nil {
		station.Address = *req.Address
	}
	if req.Latitude != nil {
		station.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		station.Longitude = *req.Longitude
	}
	if req.FuelTypes != nil {
		station.FuelTypes = *req.FuelTypes
	}
	if req.IsActive != nil {
		station.IsActive = *req.IsActive
	}
	station.UpdatedAt = time.Now().UTC()

	if err := s.stationRepo.Update(ctx, station); err != nil {
		return nil, fmt.Errorf("failed to update station '%s': %w", stationID, err)
	}
	return station, nil
}

// DeleteStation removes a distributor-owned station.
func (s *stationService) DeleteStation(ctx context.Context, distributorID, stationID string) error {
	if _, err := s.getOwnedStation(ctx, distributorID, stationID); err != nil {
		return err
	}
	if err := s.stationRepo.Delete(ctx, stationID); err != nil {
		return fmt.Errorf("failed to delete station '%s': %w", stationID, err)
	}
	return nil
}
