package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// Custom errors for the CarService
var (
	ErrCarNotFound          = errors.New("car not found")
	ErrForbiddenAccess      = errors.New("tenant does not have permission for this action")
	ErrCarLimitReached      = errors.New("car limit reached for the current subscription plan")
	ErrNoActiveSubscription = errors.New("company has no active subscription")
)

// carService implements the CarService interface.
type carService struct {
	carRepo     db.CarRepository
	companyRepo db.CompanyRepository
}

// NewCarService creates a new CarService instance.
func NewCarService(carRepo db.CarRepository, companyRepo db.CompanyRepository) CarService {
	return &carService{
		carRepo:     carRepo,
		companyRepo: companyRepo,
	}
}

// checkCarLimit enforces the active plan's MaxCarNumber against the company's
// current fleet size.
func (s *carService) checkCarLimit(sub *models.SelectedSubscription, currentCarCount int) error {
	if currentCarCount >= sub.MaxCarNumber {
		return fmt.Errorf("%w: plan '%s' allows %d car(s), current count %d", ErrCarLimitReached, sub.Title, sub.MaxCarNumber, currentCarCount)
	}
	return nil
}

// CreateCar registers a fleet car for a company. The company must hold an
// active subscription with headroom under its plan's car limit.
func (s *carService) CreateCar(ctx context.Context, companyID string, req models.CreateCarRequest) (*models.Car, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrCompanyNotFound, companyID)
		}
		return nil, fmt.Errorf("failed to get company '%s' for car limit check: %w", companyID, err)
	}

	sub := company.SelectedSubscription
	if sub == nil || !sub.IsActiveAt(time.Now().UTC()) {
		return nil, ErrNoActiveSubscription
	}

	currentCarCount, err := s.carRepo.CountByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cars for company '%s': %w", companyID, err)
	}
	if err := s.checkCarLimit(sub, currentCarCount); err != nil {
		return nil, err
	}

	newCar := &models.Car{
		CompanyID:   companyID,
		Name:        req.Name,
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		Year:        req.Year,
		FuelType:    req.FuelType,
		DriverName:  req.DriverName,
		DriverPhone: req.DriverPhone,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	carID, err := s.carRepo.Create(ctx, newCar)
	if err != nil {
		return nil, fmt.Errorf("failed to create car in repository: %w", err)
	}
	newCar.ID = carID

	return newCar, nil
}

// ListCars retrieves a company's fleet.
func (s *carService) ListCars(ctx context.Context, companyID string) ([]*models.Car, error) {
	cars, err := s.carRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars for company '%s': %w", companyID, err)
	}
	return cars, nil
}

// getOwnedCar fetches a car and verifies the requesting company owns it.
func (s *carService) getOwnedCar(ctx context.Context, companyID, carID string) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrCarNotFound, carID)
		}
		return nil, fmt.Errorf("failed to get car '%s': %w", carID, err)
	}
	if car.CompanyID != companyID {
		return nil, fmt.Errorf("%w: car '%s' belongs to another company", ErrForbiddenAccess, carID)
	}
	return car, nil
}

// UpdateCar applies the provided fields to a company-owned car.
func (s *carService) UpdateCar(ctx context.Context, companyID, carID string, req models.UpdateCarRequest) (*models.Car, error) {
	car, err := s.getOwnedCar(ctx, companyID, carID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		car.Name = *req.Name
	}
	if req.PlateNumber != nil {
		car.PlateNumber = *req.PlateNumber
	}
	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.FuelType != nil {
		car.FuelType = *req.FuelType
	}
	if req.DriverName != nil {
		car.DriverName = *req.DriverName
	}
	if req.DriverPhone != nil {
		car.DriverPhone = *req.DriverPhone
	}
	car.UpdatedAt = time.Now().UTC()

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to update car '%s': %w", carID, err)
	}
	return car, nil
}

// DeleteCar removes a company-owned car.
func (s *carService) DeleteCar(ctx context.Context, companyID, carID string) error {
	if _, err := s.getOwnedCar(ctx, companyID, carID); err != nil {
		return err
	}
	if err := s.carRepo.Delete(ctx, carID); err != nil {
		return fmt.Errorf("failed to delete car '%s': %w", carID, err)
	}
	return nil
}
