package models

import "time"

// PurchaseSubscriptionRequest represents the request body for purchasing a plan.
type PurchaseSubscriptionRequest struct {
	PlanID     string `json:"planId" binding:"required"`
	CouponCode string `json:"couponCode,omitempty"`
}

// CreateCarRequest represents the request body for registering a fleet car.
type CreateCarRequest struct {
	Name        string `json:"name" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	Model       string `json:"model,omitempty"`
	Year        int    `json:"year,omitempty"`
	FuelType    string `json:"fuelType,omitempty"`
	DriverName  string `json:"driverName,omitempty"`
	DriverPhone string `json:"driverPhone,omitempty"`
}

// UpdateCarRequest represents the request body for updating a fleet car.
// Pointers distinguish empty values from fields not provided for update.
type UpdateCarRequest struct {
	Name        *string `json:"name,omitempty"`
	PlateNumber *string `json:"plateNumber,omitempty"`
	Model       *string `json:"model,omitempty"`
	Year        *int    `json:"year,omitempty"`
	FuelType    *string `json:"fuelType,omitempty"`
	DriverName  *string `json:"driverName,omitempty"`
	DriverPhone *string `json:"driverPhone,omitempty"`
}

// CreateStationRequest represents the request body for creating a fuel station.
type CreateStationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
	FuelTypes []string `json:"fuelTypes,omitempty"`
}

// UpdateStationRequest represents the request body for updating a fuel station.
type UpdateStationRequest struct {
	Name      *string   `json:"name,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	FuelTypes *[]string `json:"fuelTypes,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
}

// CreateWalletRequestRequest represents the request body for filing a wallet
// charge or refund request.
type CreateWalletRequestRequest struct {
	Type          WalletRequestType `json:"type" binding:"required,oneof=charge refund"`
	Amount        float64           `json:"amount" binding:"required,gt=0"`
	BankAccountID string            `json:"bankAccountId,omitempty"`
	ReceiptURL    string            `json:"receiptURL,omitempty"`
	Note          string            `json:"note,omitempty"`
}

// DecideWalletRequestRequest represents the admin's approve/reject decision.
type DecideWalletRequestRequest struct {
	Approve         bool   `json:"approve"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// CreatePlanRequest represents the request body for creating a subscription plan.
type CreatePlanRequest struct {
	Title             string   `json:"title" binding:"required"`
	Price             float64  `json:"price" binding:"required,gte=0"`
	PeriodName        string   `json:"periodName" binding:"required"`
	PeriodValueInDays int      `json:"periodValueInDays" binding:"required,gt=0"`
	MinCarNumber      int      `json:"minCarNumber" binding:"gte=0"`
	MaxCarNumber      int      `json:"maxCarNumber" binding:"required,gt=0"`
	Options           []string `json:"options,omitempty"`
}

// UpdatePlanRequest represents the request body for updating a subscription plan.
type UpdatePlanRequest struct {
	Title             *string   `json:"title,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	PeriodName        *string   `json:"periodName,omitempty"`
	PeriodValueInDays *int      `json:"periodValueInDays,omitempty"`
	MinCarNumber      *int      `json:"minCarNumber,omitempty"`
	MaxCarNumber      *int      `json:"maxCarNumber,omitempty"`
	Options           *[]string `json:"options,omitempty"`
}

// CreateCouponRequest represents the request body for creating a coupon.
type CreateCouponRequest struct {
	Code       string     `json:"code" binding:"required"`
	Percentage float64    `json:"percentage" binding:"gte=0,lte=100"`
	IsCompany  bool       `json:"isCompany"`
	ExpireDate *time.Time `json:"expireDate,omitempty"`
}

// CreateBankAccountRequest represents the request body for adding a bank account.
type CreateBankAccountRequest struct {
	BankName    string `json:"bankName" binding:"required"`
	AccountName string `json:"accountName" binding:"required"`
	IBAN        string `json:"iban" binding:"required"`
	IsActive    bool   `json:"isActive"`
}

// UpdateBankAccountRequest represents the request body for updating a bank account.
type UpdateBankAccountRequest struct {
	BankName    *string `json:"bankName,omitempty"`
	AccountName *string `json:"accountName,omitempty"`
	IBAN        *string `json:"iban,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
