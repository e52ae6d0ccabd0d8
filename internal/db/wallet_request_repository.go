package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petrolife-backend-go/internal/models"
)

const walletRequestsCollection = "walletRequests"

// firestoreWalletRequestRepository implements the WalletRequestRepository interface using Firestore.
type firestoreWalletRequestRepository struct {
	client *firestore.Client
}

// NewFirestoreWalletRequestRepository creates a new instance of firestoreWalletRequestRepository.
func NewFirestoreWalletRequestRepository(client *firestore.Client) WalletRequestRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for WalletRequestRepository.")
	}
	return &firestoreWalletRequestRepository{client: client}
}

// Create adds a new wallet request document to Firestore with an auto-generated ID.
func (r *firestoreWalletRequestRepository) Create(ctx context.Context, req *models.WalletRequest) (string, error) {
	docRef := r.client.Collection(walletRequestsCollection).NewDoc()
	req.ID = docRef.ID

	_, err := docRef.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create wallet request: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a wallet request document from Firestore by its ID.
func (r *firestoreWalletRequestRepository) GetByID(ctx context.Context, requestID string) (*models.WalletRequest, error) {
	if requestID == "" {
		return nil, errors.New("requestID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(walletRequestsCollection).Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("wallet request with ID '%s' not found: %w", requestID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet request with ID '%s': %w", requestID, err)
	}

	var req models.WalletRequest
	if err := docSnap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to decode wallet request data for ID '%s': %w", requestID, err)
	}
	req.ID = docSnap.Ref.ID

	return &req, nil
}

// GetByCompanyID retrieves all wallet requests filed by a company, newest first.
func (r *firestoreWalletRequestRepository) GetByCompanyID(ctx context.Context, companyID string) ([]*models.WalletRequest, error) {
	if companyID == "" {
		return nil, errors.New("companyID cannot be empty for GetByCompanyID operation")
	}
	return r.collect(r.client.Collection(walletRequestsCollection).Where("companyId", "==", companyID).OrderBy("createdAt", firestore.Desc).Documents(ctx))
}

// ListPending retrieves all wallet requests awaiting an admin decision.
func (r *firestoreWalletRequestRepository) ListPending(ctx context.Context) ([]*models.WalletRequest, error) {
	return r.collect(r.client.Collection(walletRequestsCollection).Where("status", "==", string(models.WalletRequestPending)).Documents(ctx))
}

func (r *firestoreWalletRequestRepository) collect(iter *firestore.DocumentIterator) ([]*models.WalletRequest, error) {
	defer iter.Stop()

	var requests []*models.WalletRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate wallet requests: %w", err)
		}

		var req models.WalletRequest
		if err := doc.DataTo(&req); err != nil {
			return nil, fmt.Errorf("failed to decode wallet request data for ID '%s': %w", doc.Ref.ID, err)
		}
		req.ID = doc.Ref.ID
		requests = append(requests, &req)
	}
	return requests, nil
}

// Update overwrites an existing wallet request document.
func (r *firestoreWalletRequestRepository) Update(ctx context.Context, req *models.WalletRequest) error {
	if req.ID == "" {
		return errors.New("wallet request ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(walletRequestsCollection).Doc(req.ID).Set(ctx, req, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update wallet request with ID '%s': %w", req.ID, err)
	}
	return nil
}
