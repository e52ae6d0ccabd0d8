package models

import "time"

// SubscriptionPlan is a catalog entry owned by the admin dashboard.
// Price is the per-month rate in currency units; annual plans are billed
// as twelve months by the pricing engine.
type SubscriptionPlan struct {
	ID                string    `json:"id" firestore:"-"`
	Title             string    `json:"title" firestore:"title"`
	Price             float64   `json:"price" firestore:"price"`
	PeriodName        string    `json:"periodName" firestore:"periodName"` // "monthly"/"annual", possibly localized
	PeriodValueInDays int       `json:"periodValueInDays" firestore:"periodValueInDays"`
	MinCarNumber      int       `json:"minCarNumber" firestore:"minCarNumber"`
	MaxCarNumber      int       `json:"maxCarNumber" firestore:"maxCarNumber"`
	Options           []string  `json:"options,omitempty" firestore:"options,omitempty"`
	CreatedAt         time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt         time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Coupon grants a percentage discount on a subscription purchase, optionally
// time-limited and restricted to company tenants.
type Coupon struct {
	ID         string     `json:"id" firestore:"-"`
	Code       string     `json:"code" firestore:"code"`
	Percentage float64    `json:"percentage" firestore:"percentage"` // 0-100
	IsCompany  bool       `json:"isCompany" firestore:"isCompany"`
	ExpireDate *time.Time `json:"expireDate,omitempty" firestore:"expireDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// IsExpiredAt reports whether the coupon's expiry timestamp has passed.
// A coupon without an expiry never expires.
func (c *Coupon) IsExpiredAt(now time.Time) bool {
	return c.ExpireDate != nil && now.After(*c.ExpireDate)
}
