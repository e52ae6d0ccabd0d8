package core

import (
	"strings"

	"petrolife-backend-go/internal/models"
)

// VATRate is the fixed value-added tax applied to subscription purchases.
const VATRate = 0.15

// Annual period markers. Plans created from the Arabic-localized admin
// dashboard carry localized period names, so classification tolerates both
// languages plus a days-in-period signal.
var annualPeriodNames = map[string]bool{
	"annual": true,
	"yearly": true,
	"سنوي":   true,
}

var monthlyPeriodNames = map[string]bool{
	"monthly": true,
	"شهري":    true,
}

// PricingSummary is the full cost breakdown for a subscription purchase.
// When a coupon applies, TotalWithoutVAT and VAT are back-computed from the
// discounted VAT-inclusive total so the displayed rows stay internally
// consistent with what is actually charged.
type PricingSummary struct {
	IsAnnual          bool    `json:"isAnnual"`
	SubscriptionPrice float64 `json:"subscriptionPrice"` // pre-VAT base
	VAT               float64 `json:"vat"`
	TotalWithoutVAT   float64 `json:"totalWithoutVAT"`
	CouponDiscount    float64 `json:"couponDiscount"`
	TotalWithVAT      float64 `json:"totalWithVAT"` // amount debited from the wallet
	AppliedCouponCode string  `json:"appliedCouponCode,omitempty"`
}

// IsAnnualPlan classifies a plan as annual via a tolerant match: an exact or
// localized period name, or a days-in-period value of 365/360.
func IsAnnualPlan(plan *models.SubscriptionPlan) bool {
	name := strings.ToLower(strings.TrimSpace(plan.PeriodName))
	if annualPeriodNames[name] {
		return true
	}
	if monthlyPeriodNames[name] {
		return false
	}
	return plan.PeriodValueInDays == 365 || plan.PeriodValueInDays == 360
}

// ComputeSummary computes the taxed, discounted price of a plan.
//
// plan.Price is the per-month rate. Annual plans are billed as twelve months.
// A coupon matching freeYearCode, or carrying a percentage of exactly 100,
// escalates a monthly plan to the full-year base as well, so the discount has
// a non-trivial base to apply against. The coupon percentage is applied to the
// VAT-inclusive total and the result clamped at zero.
//
// Coupon validity (existence, expiry, tenant restriction) is the caller's
// responsibility; a non-nil coupon here is taken as applicable.
func ComputeSummary(plan *models.SubscriptionPlan, coupon *models.Coupon, freeYearCode string) PricingSummary {
	summary := PricingSummary{IsAnnual: IsAnnualPlan(plan)}

	fullYear := summary.IsAnnual
	if coupon != nil && (coupon.Code == freeYearCode || coupon.Percentage == 100) {
		fullYear = true
	}

	if fullYear {
		summary.SubscriptionPrice = plan.Price * 12
	} else {
		summary.SubscriptionPrice = plan.Price
	}

	summary.VAT = summary.SubscriptionPrice * VATRate
	summary.TotalWithVAT = summary.SubscriptionPrice + summary.VAT
	summary.TotalWithoutVAT = summary.SubscriptionPrice

	if coupon != nil {
		summary.AppliedCouponCode = coupon.Code
		summary.CouponDiscount = summary.TotalWithVAT * (coupon.Percentage / 100)
		summary.TotalWithVAT -= summary.CouponDiscount
		if summary.TotalWithVAT < 0 {
			summary.TotalWithVAT = 0
		}
		// Reverse-computed so the ex-VAT and VAT rows agree with the
		// discounted total. The VAT row is no longer 15% of the original
		// ex-VAT price; this mirrors how totals are presented to the client.
		summary.TotalWithoutVAT = summary.TotalWithVAT / (1 + VATRate)
		summary.VAT = summary.TotalWithVAT - summary.TotalWithoutVAT
	}

	return summary
}
