package core

import (
	"context"
	"time"

	"petrolife-backend-go/internal/models"
)

// RoleService resolves an authenticated principal's email to a tenant role.
type RoleService interface {
	Resolve(ctx context.Context, email string) (*models.RoleInfo, error)
}

// SubscriptionService defines plan purchase and coupon operations for companies.
type SubscriptionService interface {
	ValidateCoupon(ctx context.Context, code string) (*models.Coupon, error)
	Quote(ctx context.Context, planID, couponCode string) (*PricingSummary, error)
	Purchase(ctx context.Context, companyID string, req models.PurchaseSubscriptionRequest) (*models.Company, *PricingSummary, error)
}

// WalletService defines wallet request filing, admin decisions, and bank accounts.
type WalletService interface {
	CreateRequest(ctx context.Context, companyID string, req models.CreateWalletRequestRequest) (*models.WalletRequest, error)
	ListCompanyRequests(ctx context.Context, companyID string) ([]*models.WalletRequest, error)
	ListPending(ctx context.Context) ([]*models.WalletRequest, error)
	Decide(ctx context.Context, adminID, requestID string, decision models.DecideWalletRequestRequest) (*models.WalletRequest, error)
	CreateBankAccount(ctx context.Context, req models.CreateBankAccountRequest) (*models.BankAccount, error)
	ListBankAccounts(ctx context.Context, onlyActive bool) ([]*models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, accountID string, req models.UpdateBankAccountRequest) (*models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, accountID string) error
}

// CarService defines fleet car operations for companies.
type CarService interface {
	CreateCar(ctx context.Context, companyID string, req models.CreateCarRequest) (*models.Car, error)
	ListCars(ctx context.Context, companyID string) ([]*models.Car, error)
	UpdateCar(ctx context.Context, companyID, carID string, req models.UpdateCarRequest) (*models.Car, error)
	DeleteCar(ctx context.Context, companyID, carID string) error
}

// StationService defines fuel station operations for service-distributers.
type StationService interface {
	CreateStation(ctx context.Context, distributorID string, req models.CreateStationRequest) (*models.Station, error)
	ListStations(ctx context.Context, distributorID string) ([]*models.Station, error)
	ListAllStations(ctx context.Context) ([]*models.Station, error)
	UpdateStation(ctx context.Context, distributorID, stationID string, req models.UpdateStationRequest) (*models.Station, error)
	DeleteStation(ctx context.Context, distributorID, stationID string) error
}

// CatalogService defines admin-side plan and coupon management.
type CatalogService interface {
	CreatePlan(ctx context.Context, req models.CreatePlanRequest) (*models.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, planID string) (*models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, planID string, req models.UpdatePlanRequest) (*models.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, planID string) error
	CreateCoupon(ctx context.Context, req models.CreateCouponRequest) (*models.Coupon, error)
	ListCoupons(ctx context.Context) ([]*models.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

// TenantService exposes company and service-distributer account data.
type TenantService interface {
	GetCompany(ctx context.Context, companyID string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	ListDistributors(ctx context.Context) ([]*models.Distributor, error)
}

// ReportService defines financial reporting for the admin dashboard.
type ReportService interface {
	SalesSummary(ctx context.Context, from, to time.Time) (*SalesReport, error)
}

// NotificationService defines dashboard notification operations.
type NotificationService interface {
	Notify(ctx context.Context, recipientID, title, body string) error
	List(ctx context.Context, recipientID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}
