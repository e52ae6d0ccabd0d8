package core

import (
	"context"
	"errors"
	"fmt"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

type tenantService struct {
	companyRepo     db.CompanyRepository
	distributorRepo db.DistributorRepository
}

// NewTenantService creates a new TenantService.
func NewTenantService(companyRepo db.CompanyRepository, distributorRepo db.DistributorRepository) TenantService {
	return &tenantService{
		companyRepo:     companyRepo,
		distributorRepo: distributorRepo,
	}
}

func (s *tenantService) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *tenantService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *tenantService) ListDistributors(ctx context.Context) ([]*models.Distributor, error) {
	distributors, err := s.distributorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service distributers: %w", err)
	}
	return distributors, nil
}
