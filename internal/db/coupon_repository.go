package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"petrolife-backend-go/internal/models"
)

const couponsCollection = "coupons"

// firestoreCouponRepository implements the CouponRepository interface using Firestore.
type firestoreCouponRepository struct {
	client *firestore.Client
}

// NewFirestoreCouponRepository creates a new instance of firestoreCouponRepository.
func NewFirestoreCouponRepository(client *firestore.Client) CouponRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CouponRepository.")
	}
	return &firestoreCouponRepository{client: client}
}

// Create adds a new coupon document to Firestore with an auto-generated ID.
func (r *firestoreCouponRepository) Create(ctx context.Context, coupon *models.Coupon) (string, error) {
	docRef := r.client.Collection(couponsCollection).NewDoc()
	coupon.ID = docRef.ID

	_, err := docRef.Create(ctx, coupon)
	if err != nil {
		return "", fmt.Errorf("failed to create coupon: %w", err)
	}
	return docRef.ID, nil
}

// GetByCode retrieves the first coupon matching the given code.
func (r *firestoreCouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if code == "" {
		return nil, errors.New("code cannot be empty for GetByCode operation")
	}

	iter := r.client.Collection(couponsCollection).Where("code", "==", code).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("coupon with code '%s' not found: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query coupon by code '%s': %w", code, err)
	}

	var coupon models.Coupon
	if err := doc.DataTo(&coupon); err != nil {
		return nil, fmt.Errorf("failed to decode coupon data for code '%s': %w", code, err)
	}
	coupon.ID = doc.Ref.ID

	return &coupon, nil
}

// List retrieves all coupons, newest first.
func (r *firestoreCouponRepository) List(ctx context.Context) ([]*models.Coupon, error) {
	iter := r.client.Collection(couponsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var coupons []*models.Coupon
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate coupons: %w", err)
		}

		var coupon models.Coupon
		if err := doc.DataTo(&coupon); err != nil {
			return nil, fmt.Errorf("failed to decode coupon data for ID '%s': %w", doc.Ref.ID, err)
		}
		coupon.ID = doc.Ref.ID
		coupons = append(coupons, &coupon)
	}
	return coupons, nil
}

// Delete removes a coupon document by its ID.
func (r *firestoreCouponRepository) Delete(ctx context.Context, couponID string) error {
	if couponID == "" {
		return errors.New("couponID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(couponsCollection).Doc(couponID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete coupon with ID '%s': %w", couponID, err)
	}
	return nil
}
