package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolife-backend-go/internal/models"
)

func TestRoleService_Resolve_AdminWins(t *testing.T) {
	// The same email exists in all three registries; the admins registry
	// is probed first and wins.
	adminRepo := &fakeAdminRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.Admin, error) {
			return &models.Admin{ID: "admin-1", Email: email}, nil
		},
	}
	companyRepo := &fakeCompanyRepo{company: &models.Company{ID: "co-1", Email: "boss@acme.example"}}
	distributorRepo := &fakeDistributorRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.Distributor, error) {
			return &models.Distributor{ID: "dist-1", Email: email}, nil
		},
	}

	svc := NewRoleService(adminRepo, companyRepo, distributorRepo)
	role, err := svc.Resolve(context.Background(), "boss@acme.example")

	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, role.UserType)
	assert.Equal(t, models.AdminDashboardPath, role.RedirectPath)
	assert.Equal(t, "admin-1", role.TenantID)
}

func TestRoleService_Resolve_CompanyBeforeDistributor(t *testing.T) {
	companyRepo := &fakeCompanyRepo{company: &models.Company{ID: "co-1", Email: "fleet@acme.example"}}
	distributorRepo := &fakeDistributorRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.Distributor, error) {
			return &models.Distributor{ID: "dist-1", Email: email}, nil
		},
	}

	svc := NewRoleService(&fakeAdminRepo{}, companyRepo, distributorRepo)
	role, err := svc.Resolve(context.Background(), "fleet@acme.example")

	require.NoError(t, err)
	assert.Equal(t, models.UserTypeCompany, role.UserType)
	assert.Equal(t, models.CompanyDashboardPath, role.RedirectPath)
	assert.Equal(t, "co-1", role.TenantID)
}

func TestRoleService_Resolve_Distributor(t *testing.T) {
	distributorRepo := &fakeDistributorRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.Distributor, error) {
			return &models.Distributor{ID: "dist-1", Email: email}, nil
		},
	}

	svc := NewRoleService(&fakeAdminRepo{}, &fakeCompanyRepo{}, distributorRepo)
	role, err := svc.Resolve(context.Background(), "pumps@fuelco.example")

	require.NoError(t, err)
	assert.Equal(t, models.UserTypeDistributor, role.UserType)
	assert.Equal(t, models.DistributorDashboardPath, role.RedirectPath)
}

func TestRoleService_Resolve_NoRegistryMatch(t *testing.T) {
	svc := NewRoleService(&fakeAdminRepo{}, &fakeCompanyRepo{}, &fakeDistributorRepo{})

	role, err := svc.Resolve(context.Background(), "stranger@nowhere.example")

	assert.Nil(t, role)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestRoleService_Resolve_EmptyEmail(t *testing.T) {
	svc := NewRoleService(&fakeAdminRepo{}, &fakeCompanyRepo{}, &fakeDistributorRepo{})

	_, err := svc.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestRoleService_Resolve_BackendErrorAborts(t *testing.T) {
	backendErr := errors.New("firestore unavailable")
	companyRepo := &fakeCompanyRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.Company, error) {
			return nil, backendErr
		},
	}
	distributorRepo := &fakeDistributorRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.Distributor, error) {
			t.Fatal("distributor registry must not be probed after a backend error")
			return nil, nil
		},
	}

	svc := NewRoleService(&fakeAdminRepo{}, companyRepo, distributorRepo)
	role, err := svc.Resolve(context.Background(), "fleet@acme.example")

	assert.Nil(t, role)
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, ErrRoleNotFound)
}
