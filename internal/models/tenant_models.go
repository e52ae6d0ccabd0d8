package models

import "time"

// Admin represents a platform administrator record in the admins registry.
type Admin struct {
	ID          string    `json:"id" firestore:"-"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Company represents a corporate fleet client. Its document holds the wallet
// balance and the denormalized copy of the purchased subscription.
type Company struct {
	ID                   string                `json:"id" firestore:"-"`
	Email                string                `json:"email" firestore:"email"`
	Name                 string                `json:"name" firestore:"name"`
	Phone                string                `json:"phone,omitempty" firestore:"phone,omitempty"`
	LogoURL              string                `json:"logoURL,omitempty" firestore:"logoURL,omitempty"`
	Address              string                `json:"address,omitempty" firestore:"address,omitempty"`
	Balance              float64               `json:"balance" firestore:"balance"`
	SelectedSubscription *SelectedSubscription `json:"selectedSubscription,omitempty" firestore:"selectedSubscription,omitempty"`
	CreatedAt            time.Time             `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt            time.Time             `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Distributor represents a fuel service-distributer tenant.
type Distributor struct {
	ID        string    `json:"id" firestore:"-"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	LogoURL   string    `json:"logoURL,omitempty" firestore:"logoURL,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// SelectedSubscription is the snapshot of a plan taken at purchase time.
// Expiry is derived from CreatedDate + PeriodValueInDays, never stored.
type SelectedSubscription struct {
	PlanID            string    `json:"planId" firestore:"planId"`
	Title             string    `json:"title" firestore:"title"`
	Price             float64   `json:"price" firestore:"price"` // per-month rate at purchase time
	PeriodName        string    `json:"periodName" firestore:"periodName"`
	PeriodValueInDays int       `json:"periodValueInDays" firestore:"periodValueInDays"`
	MinCarNumber      int       `json:"minCarNumber" firestore:"minCarNumber"`
	MaxCarNumber      int       `json:"maxCarNumber" firestore:"maxCarNumber"`
	PaidTotal         float64   `json:"paidTotal" firestore:"paidTotal"` // VAT-inclusive amount debited
	AppliedCouponCode string    `json:"appliedCouponCode,omitempty" firestore:"appliedCouponCode,omitempty"`
	CreatedDate       time.Time `json:"createdDate" firestore:"createdDate"`
}

// ExpiresAt returns the derived end of the subscription window.
func (s *SelectedSubscription) ExpiresAt() time.Time {
	return s.CreatedDate.AddDate(0, 0, s.PeriodValueInDays)
}

// IsActiveAt reports whether the subscription window covers the given instant.
func (s *SelectedSubscription) IsActiveAt(now time.Time) bool {
	return now.Before(s.ExpiresAt())
}
