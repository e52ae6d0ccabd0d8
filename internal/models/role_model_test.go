package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDashboardPathFor(t *testing.T) {
	tests := []struct {
		userType UserType
		want     string
	}{
		{UserTypeAdmin, AdminDashboardPath},
		{UserTypeCompany, CompanyDashboardPath},
		{UserTypeDistributor, DistributorDashboardPath},
		{UserType("unknown"), LoginPath},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DashboardPathFor(tt.userType), "userType=%s", tt.userType)
	}
}

func TestSelectedSubscriptionWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := &SelectedSubscription{PeriodValueInDays: 30, CreatedDate: start}

	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), sub.ExpiresAt())
	assert.True(t, sub.IsActiveAt(start.AddDate(0, 0, 29)))
	assert.False(t, sub.IsActiveAt(start.AddDate(0, 0, 30)))
	assert.False(t, sub.IsActiveAt(start.AddDate(0, 0, 31)))
}

func TestCouponExpiry(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	evergreen := &Coupon{Code: "EVERGREEN", Percentage: 10}
	assert.False(t, evergreen.IsExpiredAt(now))

	past := now.Add(-time.Minute)
	expired := &Coupon{Code: "OLD", Percentage: 10, ExpireDate: &past}
	assert.True(t, expired.IsExpiredAt(now))

	future := now.Add(time.Minute)
	live := &Coupon{Code: "LIVE", Percentage: 10, ExpireDate: &future}
	assert.False(t, live.IsExpiredAt(now))
}
