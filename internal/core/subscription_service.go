package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// Custom errors for the SubscriptionService
var (
	ErrPlanNotFound        = errors.New("subscription plan not found")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponNotApplicable = errors.New("coupon is not applicable to company accounts")
	ErrAlreadySubscribed   = errors.New("company already has an active subscription")
	ErrInsufficientBalance = errors.New("wallet balance is insufficient for this purchase")
)

// subscriptionService implements the SubscriptionService interface.
type subscriptionService struct {
	companyRepo  db.CompanyRepository
	planRepo     db.PlanRepository
	couponRepo   db.CouponRepository
	txnRepo      db.TransactionRepository
	notifier     NotificationService
	freeYearCode string
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(
	cr db.CompanyRepository,
	pr db.PlanRepository,
	cpr db.CouponRepository,
	tr db.TransactionRepository,
	notifier NotificationService,
	freeYearCode string,
) SubscriptionService {
	return &subscriptionService{
		companyRepo:  cr,
		planRepo:     pr,
		couponRepo:   cpr,
		txnRepo:      tr,
		notifier:     notifier,
		freeYearCode: freeYearCode,
	}
}

// ValidateCoupon looks a coupon up by code and checks that it can be applied
// to a company purchase: it must exist, must not be past its expiry, and must
// carry the company flag.
func (s *subscriptionService) ValidateCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: code '%s'", ErrCouponNotFound, code)
		}
		return nil, fmt.Errorf("failed to look up coupon '%s': %w", code, err)
	}
	if coupon.IsExpiredAt(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: code '%s'", ErrCouponExpired, code)
	}
	if !coupon.IsCompany {
		return nil, fmt.Errorf("%w: code '%s'", ErrCouponNotApplicable, code)
	}
	return coupon, nil
}

// Quote computes the pricing summary for a plan and an optional coupon code
// without committing anything. Used by the checkout screen.
func (s *subscriptionService) Quote(ctx context.Context, planID, couponCode string) (*PricingSummary, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrPlanNotFound, planID)
		}
		return nil, fmt.Errorf("failed to get plan '%s': %w", planID, err)
	}

	var coupon *models.Coupon
	if couponCode != "" {
		coupon, err = s.ValidateCoupon(ctx, couponCode)
		if err != nil {
			return nil, err
		}
	}

	summary := ComputeSummary(plan, coupon, s.freeYearCode)
	return &summary, nil
}

// Purchase debits the company wallet and assigns the plan snapshot.
//
// Admission and debit run inside a single Firestore transaction via
// CompanyRepository.UpdateTx: the active-subscription window and the balance
// are re-checked against the freshly-read document at commit time, so two
// sessions racing on the same wallet cannot double-spend. A zero-cost
// purchase (100% coupon) bypasses the balance check entirely.
func (s *subscriptionService) Purchase(ctx context.Context, companyID string, req models.PurchaseSubscriptionRequest) (*models.Company, *PricingSummary, error) {
	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: ID '%s'", ErrPlanNotFound, req.PlanID)
		}
		return nil, nil, fmt.Errorf("failed to get plan '%s': %w", req.PlanID, err)
	}

	var coupon *models.Coupon
	if req.CouponCode != "" {
		coupon, err = s.ValidateCoupon(ctx, req.CouponCode)
		if err != nil {
			return nil, nil, err
		}
	}

	summary := ComputeSummary(plan, coupon, s.freeYearCode)
	now := time.Now().UTC()

	company, err := s.companyRepo.UpdateTx(ctx, companyID, func(c *models.Company) error {
		if c.SelectedSubscription != nil && c.SelectedSubscription.IsActiveAt(now) {
			return fmt.Errorf("%w: active until %s", ErrAlreadySubscribed, c.SelectedSubscription.ExpiresAt().Format(time.RFC3339))
		}
		if summary.TotalWithVAT > 0 && summary.TotalWithVAT > c.Balance {
			return fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientBalance, summary.TotalWithVAT, c.Balance)
		}

		c.Balance -= summary.TotalWithVAT
		c.SelectedSubscription = &models.SelectedSubscription{
			PlanID:            plan.ID,
			Title:             plan.Title,
			Price:             plan.Price,
			PeriodName:        plan.PeriodName,
			PeriodValueInDays: plan.PeriodValueInDays,
			MinCarNumber:      plan.MinCarNumber,
			MaxCarNumber:      plan.MaxCarNumber,
			PaidTotal:         summary.TotalWithVAT,
			AppliedCouponCode: summary.AppliedCouponCode,
			CreatedDate:       now,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Side records are best-effort; the purchase itself has already committed.
	txn := &models.Transaction{
		Type:        models.TransactionSubscription,
		CompanyID:   companyID,
		Amount:      summary.TotalWithVAT,
		Description: fmt.Sprintf("subscription purchase: %s", plan.Title),
		CreatedAt:   now,
	}
	if txnErr := s.txnRepo.Create(ctx, txn); txnErr != nil {
		fmt.Printf("Warning: failed to record subscription transaction for company '%s': %v\n", companyID, txnErr)
	}

	if s.notifier != nil {
		notifyErr := s.notifier.Notify(ctx, companyID, "Subscription activated",
			fmt.Sprintf("Your subscription to '%s' is active until %s.", plan.Title, company.SelectedSubscription.ExpiresAt().Format("2006-01-02")))
		if notifyErr != nil {
			fmt.Printf("Warning: failed to notify company '%s' about subscription purchase: %v\n", companyID, notifyErr)
		}
	}

	return company, &summary, nil
}
