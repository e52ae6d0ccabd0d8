package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolife-backend-go/internal/models"
)

const testFreeYearCode = "FREEYEAR"

func newSubscriptionFixture(t *testing.T, company *models.Company) (SubscriptionService, *fakeCompanyRepo, *fakePlanRepo, *fakeCouponRepo, *fakeTransactionRepo, *fakeNotificationRepo) {
	t.Helper()
	companyRepo := &fakeCompanyRepo{company: company}
	planRepo := &fakePlanRepo{plans: map[string]*models.SubscriptionPlan{}}
	couponRepo := &fakeCouponRepo{coupons: map[string]*models.Coupon{}}
	txnRepo := &fakeTransactionRepo{}
	notifRepo := &fakeNotificationRepo{}
	notifier := NewNotificationService(notifRepo)
	svc := NewSubscriptionService(companyRepo, planRepo, couponRepo, txnRepo, notifier, testFreeYearCode)
	return svc, companyRepo, planRepo, couponRepo, txnRepo, notifRepo
}

func monthlyPlan(id string, price float64) *models.SubscriptionPlan {
	return &models.SubscriptionPlan{
		ID:                id,
		Title:             "Starter",
		Price:             price,
		PeriodName:        "monthly",
		PeriodValueInDays: 30,
		MaxCarNumber:      5,
	}
}

func TestSubscriptionService_ValidateCoupon(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(24 * time.Hour)

	tests := []struct {
		name    string
		coupon  *models.Coupon
		code    string
		wantErr error
	}{
		{
			name:    "unknown code",
			code:    "NOPE",
			wantErr: ErrCouponNotFound,
		},
		{
			name:    "expired",
			coupon:  &models.Coupon{Code: "OLD", Percentage: 10, IsCompany: true, ExpireDate: &past},
			code:    "OLD",
			wantErr: ErrCouponExpired,
		},
		{
			name:    "not for companies",
			coupon:  &models.Coupon{Code: "STAFF", Percentage: 10, IsCompany: false},
			code:    "STAFF",
			wantErr: ErrCouponNotApplicable,
		},
		{
			name:   "valid with expiry",
			coupon: &models.Coupon{Code: "SAVE10", Percentage: 10, IsCompany: true, ExpireDate: &future},
			code:   "SAVE10",
		},
		{
			name:   "valid without expiry",
			coupon: &models.Coupon{Code: "EVERGREEN", Percentage: 10, IsCompany: true},
			code:   "EVERGREEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, couponRepo, _, _ := newSubscriptionFixture(t, nil)
			if tt.coupon != nil {
				couponRepo.coupons[tt.coupon.Code] = tt.coupon
			}

			got, err := svc.ValidateCoupon(context.Background(), tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestSubscriptionService_Quote(t *testing.T) {
	svc, _, planRepo, couponRepo, _, _ := newSubscriptionFixture(t, nil)
	planRepo.plans["plan-1"] = monthlyPlan("plan-1", 100)
	couponRepo.coupons["SAVE20"] = &models.Coupon{Code: "SAVE20", Percentage: 20, IsCompany: true}

	summary, err := svc.Quote(context.Background(), "plan-1", "")
	require.NoError(t, err)
	assert.InDelta(t, 115.0, summary.TotalWithVAT, 1e-9)

	summary, err = svc.Quote(context.Background(), "plan-1", "SAVE20")
	require.NoError(t, err)
	assert.InDelta(t, 92.0, summary.TotalWithVAT, 1e-9)

	_, err = svc.Quote(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSubscriptionService_Purchase_DebitsWalletAndAssignsSnapshot(t *testing.T) {
	company := &models.Company{ID: "co-1", Email: "fleet@acme.example", Balance: 500}
	svc, companyRepo, planRepo, _, txnRepo, notifRepo := newSubscriptionFixture(t, company)
	planRepo.plans["plan-1"] = monthlyPlan("plan-1", 100)

	updated, summary, err := svc.Purchase(context.Background(), "co-1", models.PurchaseSubscriptionRequest{PlanID: "plan-1"})

	require.NoError(t, err)
	assert.InDelta(t, 385.0, updated.Balance, 1e-9)
	require.NotNil(t, updated.SelectedSubscription)
	assert.Equal(t, "plan-1", updated.SelectedSubscription.PlanID)
	assert.InDelta(t, 115.0, updated.SelectedSubscription.PaidTotal, 1e-9)
	assert.InDelta(t, 115.0, summary.TotalWithVAT, 1e-9)
	assert.Equal(t, 1, companyRepo.updateTxRuns)

	require.Len(t, txnRepo.created, 1)
	assert.Equal(t, models.TransactionSubscription, txnRepo.created[0].Type)
	assert.Equal(t, "co-1", txnRepo.created[0].CompanyID)

	require.Len(t, notifRepo.notifications, 1)
	assert.Equal(t, "co-1", notifRepo.notifications[0].RecipientID)
}

func TestSubscriptionService_Purchase_InsufficientBalance(t *testing.T) {
	company := &models.Company{ID: "co-1", Balance: 50}
	svc, companyRepo, planRepo, _, txnRepo, _ := newSubscriptionFixture(t, company)
	planRepo.plans["plan-1"] = monthlyPlan("plan-1", 100)

	_, _, err := svc.Purchase(context.Background(), "co-1", models.PurchaseSubscriptionRequest{PlanID: "plan-1"})

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	// The aborted transaction must leave the document untouched.
	assert.InDelta(t, 50.0, companyRepo.company.Balance, 1e-9)
	assert.Nil(t, companyRepo.company.SelectedSubscription)
	assert.Empty(t, txnRepo.created)
}

func TestSubscriptionService_Purchase_AlreadySubscribed(t *testing.T) {
	company := &models.Company{
		ID:      "co-1",
		Balance: 1000,
		SelectedSubscription: &models.SelectedSubscription{
			PlanID:            "plan-old",
			PeriodValueInDays: 30,
			CreatedDate:       time.Now().UTC().Add(-24 * time.Hour),
		},
	}
	svc, _, planRepo, _, _, _ := newSubscriptionFixture(t, company)
	planRepo.plans["plan-1"] = monthlyPlan("plan-1", 100)

	_, _, err := svc.Purchase(context.Background(), "co-1", models.PurchaseSubscriptionRequest{PlanID: "plan-1"})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Equal(t, "plan-old", company.SelectedSubscription.PlanID)
}

func TestSubscriptionService_Purchase_ExpiredSubscriptionIsReplaceable(t *testing.T) {
	company := &models.Company{
		ID:      "co-1",
		Balance: 200,
		SelectedSubscription: &models.SelectedSubscription{
			PlanID:            "plan-old",
			PeriodValueInDays: 30,
			CreatedDate:       time.Now().UTC().Add(-40 * 24 * time.Hour),
		},
	}
	svc, _, planRepo, _, _, _ := newSubscriptionFixture(t, company)
	planRepo.plans["plan-1"] = monthlyPlan("plan-1", 100)

	updated, _, err := svc.Purchase(context.Background(), "co-1", models.PurchaseSubscriptionRequest{PlanID: "plan-1"})

	require.NoError(t, err)
	assert.Equal(t, "plan-1", updated.SelectedSubscription.PlanID)
}

func TestSubscriptionService_Purchase_FreeYearSkipsBalanceCheck(t *testing.T) {
	// Zero balance, but the 100% coupon zeroes the total so the purchase
	// goes through and covers a full year.
	company := &models.Company{ID: "co-1", Balance: 0}
	svc, _, planRepo, couponRepo, _, _ := newSubscriptionFixture(t, company)
	planRepo.plans["plan-1"] = monthlyPlan("plan-1", 100)
	couponRepo.coupons[testFreeYearCode] = &models.Coupon{Code: testFreeYearCode, Percentage: 100, IsCompany: true}

	updated, summary, err := svc.Purchase(context.Background(), "co-1", models.PurchaseSubscriptionRequest{
		PlanID:     "plan-1",
		CouponCode: testFreeYearCode,
	})

	require.NoError(t, err)
	assert.Zero(t, summary.TotalWithVAT)
	assert.Zero(t, updated.Balance)
	require.NotNil(t, updated.SelectedSubscription)
	assert.Equal(t, testFreeYearCode, updated.SelectedSubscription.AppliedCouponCode)
	assert.Zero(t, updated.SelectedSubscription.PaidTotal)
}

func TestSubscriptionService_Purchase_UnknownPlan(t *testing.T) {
	svc, _, _, _, _, _ := newSubscriptionFixture(t, &models.Company{ID: "co-1", Balance: 100})

	_, _, err := svc.Purchase(context.Background(), "co-1", models.PurchaseSubscriptionRequest{PlanID: "ghost"})

	assert.ErrorIs(t, err, ErrPlanNotFound)
}
