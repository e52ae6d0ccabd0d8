package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// ErrCouponCodeTaken is returned when creating a coupon whose code already exists.
var ErrCouponCodeTaken = errors.New("coupon code already exists")

// catalogService implements the CatalogService interface: admin-side CRUD for
// the plan catalog and coupons, read-side listing for companies.
type catalogService struct {
	planRepo   db.PlanRepository
	couponRepo db.CouponRepository
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(planRepo db.PlanRepository, couponRepo db.CouponRepository) CatalogService {
	return &catalogService{
		planRepo:   planRepo,
		couponRepo: couponRepo,
	}
}

// CreatePlan adds a plan to the catalog.
func (s *catalogService) CreatePlan(ctx context.Context, req models.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	plan := &models.SubscriptionPlan{
		Title:             req.Title,
		Price:             req.Price,
		PeriodName:        req.PeriodName,
		PeriodValueInDays: req.PeriodValueInDays,
		MinCarNumber:      req.MinCarNumber,
		MaxCarNumber:      req.MaxCarNumber,
		Options:           req.Options,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	plan.ID = planID
	return plan, nil
}

// ListPlans retrieves the plan catalog.
func (s *catalogService) ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// GetPlan retrieves a single plan.
func (s *catalogService) GetPlan(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrPlanNotFound, planID)
		}
		return nil, fmt.Errorf("failed to get plan '%s': %w", planID, err)
	}
	return plan, nil
}

// UpdatePlan applies the provided fields to a catalog plan. Companies holding
// a snapshot of the previous version are unaffected; snapshots are
// denormalized at purchase time.
func (s *catalogService) UpdatePlan(ctx context.Context, planID string, req models.UpdatePlanRequest) (*models.SubscriptionPlan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.PeriodName != nil {
		plan.PeriodName = *req.PeriodName
	}
	if req.PeriodValueInDays != nil {
		plan.PeriodValueInDays = *req.PeriodValueInDays
	}
	if req.MinCarNumber != nil {
		plan.MinCarNumber = *req.MinCarNumber
	}
	if req.MaxCarNumber != nil {
		plan.MaxCarNumber = *req.MaxCarNumber
	}
	if req.Options != nil {
		plan.Options = *req.Options
	}
	plan.UpdatedAt = time.Now().UTC()

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan '%s': %w", planID, err)
	}
	return plan, nil
}

// DeletePlan removes a plan from the catalog.
func (s *catalogService) DeletePlan(ctx context.Context, planID string) error {
	if _, err := s.GetPlan(ctx, planID); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return fmt.Errorf("failed to delete plan '%s': %w", planID, err)
	}
	return nil
}

// CreateCoupon adds a coupon, rejecting duplicate codes.
func (s *catalogService) CreateCoupon(ctx context.Context, req models.CreateCouponRequest) (*models.Coupon, error) {
	existing, err := s.couponRepo.GetByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check coupon code '%s': %w", req.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code '%s'", ErrCouponCodeTaken, req.Code)
	}

	coupon := &models.Coupon{
		Code:       req.Code,
		Percentage: req.Percentage,
		IsCompany:  req.IsCompany,
		ExpireDate: req.ExpireDate,
		CreatedAt:  time.Now().UTC(),
	}
	couponID, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	coupon.ID = couponID
	return coupon, nil
}

// ListCoupons retrieves all coupons (admin view).
func (s *catalogService) ListCoupons(ctx context.Context) ([]*models.Coupon, error) {
	coupons, err := s.couponRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// DeleteCoupon removes a coupon by ID.
func (s *catalogService) DeleteCoupon(ctx context.Context, couponID string) error {
	if err := s.couponRepo.Delete(ctx, couponID); err != nil {
		return fmt.Errorf("failed to delete coupon '%s': %w", couponID, err)
	}
	return nil
}
