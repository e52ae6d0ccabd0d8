package db

import (
	"context"
	"time"

	"petrolife-backend-go/internal/models"
)

// AdminRepository defines lookups against the admins tenant registry.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// CompanyRepository defines storage operations for company tenants.
// UpdateTx runs mutate against a freshly-read company inside a Firestore
// transaction so balance checks hold at write time, not just at read time.
type CompanyRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Company, error)
	GetByID(ctx context.Context, companyID string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	UpdateTx(ctx context.Context, companyID string, mutate func(*models.Company) error) (*models.Company, error)
}

// DistributorRepository defines storage operations for service-distributer tenants.
type DistributorRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Distributor, error)
	GetByID(ctx context.Context, distributorID string) (*models.Distributor, error)
	List(ctx context.Context) ([]*models.Distributor, error)
}

// PlanRepository defines storage operations for the subscription plan catalog.
type PlanRepository interface {
	Create(ctx context.Context, plan *models.SubscriptionPlan) (string, error)
	GetByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error)
	List(ctx context.Context) ([]*models.SubscriptionPlan, error)
	Update(ctx context.Context, plan *models.SubscriptionPlan) error
	Delete(ctx context.Context, planID string) error
}

// CouponRepository defines storage operations for coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) (string, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]*models.Coupon, error)
	Delete(ctx context.Context, couponID string) error
}

// CarRepository defines storage operations for company fleet cars.
type CarRepository interface {
	Create(ctx context.Context, car *models.Car) (string, error)
	GetByID(ctx context.Context, carID string) (*models.Car, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]*models.Car, error)
	CountByCompanyID(ctx context.Context, companyID string) (int, error) // for plan car limits
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, carID string) error
}

// StationRepository defines storage operations for distributor fuel stations.
type StationRepository interface {
	Create(ctx context.Context, station *models.Station) (string, error)
	GetByID(ctx context.Context, stationID string) (*models.Station, error)
	GetByDistributorID(ctx context.Context, distributorID string) ([]*models.Station, error)
	List(ctx context.Context) ([]*models.Station, error)
	Update(ctx context.Context, station *models.Station) error
	Delete(ctx context.Context, stationID string) error
}

// WalletRequestRepository defines storage operations for wallet charge/refund requests.
type WalletRequestRepository interface {
	Create(ctx context.Context, req *models.WalletRequest) (string, error)
	GetByID(ctx context.Context, requestID string) (*models.WalletRequest, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]*models.WalletRequest, error)
	ListPending(ctx context.Context) ([]*models.WalletRequest, error)
	Update(ctx context.Context, req *models.WalletRequest) error
}

// BankAccountRepository defines storage operations for platform bank accounts.
type BankAccountRepository interface {
	Create(ctx context.Context, account *models.BankAccount) (string, error)
	GetByID(ctx context.Context, accountID string) (*models.BankAccount, error)
	List(ctx context.Context, onlyActive bool) ([]*models.BankAccount, error)
	Update(ctx context.Context, account *models.BankAccount) error
	Delete(ctx context.Context, accountID string) error
}

// TransactionRepository defines append/query operations for financial records.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*models.Transaction, error)
}

// NotificationRepository defines storage operations for dashboard notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByRecipientID(ctx context.Context, recipientID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}
