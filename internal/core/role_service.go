package core

import (
	"context"
	"errors"
	"fmt"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// ErrRoleNotFound is returned when an email matches no tenant registry.
// Callers must treat the principal as unauthorized: clear session state and
// redirect to login.
var ErrRoleNotFound = errors.New("no tenant registry contains this email")

// roleService implements the RoleService interface.
type roleService struct {
	adminRepo       db.AdminRepository
	companyRepo     db.CompanyRepository
	distributorRepo db.DistributorRepository
}

// NewRoleService creates a new RoleService instance.
func NewRoleService(ar db.AdminRepository, cr db.CompanyRepository, dr db.DistributorRepository) RoleService {
	return &roleService{
		adminRepo:       ar,
		companyRepo:     cr,
		distributorRepo: dr,
	}
}

// Resolve probes the tenant registries in fixed priority order (admins,
// then companies, then service-distributers) and returns the role of the
// first registry containing the email. Nothing enforces cross-registry
// email uniqueness, so on overlap the earlier registry silently wins.
//
// Registry misses continue the probe; any other backend error aborts it and
// is returned for the caller to log, leaving the principal unauthenticated.
func (s *roleService) Resolve(ctx context.Context, email string) (*models.RoleInfo, error) {
	if email == "" {
		return nil, ErrRoleNotFound
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return &models.RoleInfo{
			UserType:     models.UserTypeAdmin,
			RedirectPath: models.AdminDashboardPath,
			TenantID:     admin.ID,
		}, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to probe admins registry for '%s': %w", email, err)
	}

	company, err := s.companyRepo.GetByEmail(ctx, email)
	if err == nil {
		return &models.RoleInfo{
			UserType:     models.UserTypeCompany,
			RedirectPath: models.CompanyDashboardPath,
			TenantID:     company.ID,
		}, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to probe companies registry for '%s': %w", email, err)
	}

	distributor, err := s.distributorRepo.GetByEmail(ctx, email)
	if err == nil {
		return &models.RoleInfo{
			UserType:     models.UserTypeDistributor,
			RedirectPath: models.DistributorDashboardPath,
			TenantID:     distributor.ID,
		}, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to probe service-distributers registry for '%s': %w", email, err)
	}

	return nil, ErrRoleNotFound
}
