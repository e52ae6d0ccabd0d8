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

const companiesCollection = "companies"

// firestoreCompanyRepository implements the CompanyRepository interface using Firestore.
type firestoreCompanyRepository struct {
	client *firestore.Client
}

// NewFirestoreCompanyRepository creates a new instance of firestoreCompanyRepository.
func NewFirestoreCompanyRepository(client *firestore.Client) CompanyRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CompanyRepository.")
	}
	return &firestoreCompanyRepository{client: client}
}

// GetByEmail retrieves the first company record matching the given email.
func (r *firestoreCompanyRepository) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}

	iter := r.client.Collection(companiesCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("company with email '%s' not found: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query company by email '%s': %w", email, err)
	}

	var company models.Company
	if err := doc.DataTo(&company); err != nil {
		return nil, fmt.Errorf("failed to decode company data for email '%s': %w", email, err)
	}
	company.ID = doc.Ref.ID

	return &company, nil
}

// GetByID retrieves a company document from Firestore by its ID.
func (r *firestoreCompanyRepository) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	if companyID == "" {
		return nil, errors.New("companyID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(companiesCollection).Doc(companyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("company with ID '%s' not found: %w", companyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company with ID '%s': %w", companyID, err)
	}

	var company models.Company
	if err := docSnap.DataTo(&company); err != nil {
		return nil, fmt.Errorf("failed to decode company data for ID '%s': %w", companyID, err)
	}
	company.ID = docSnap.Ref.ID

	return &company, nil
}

// List retrieves all company records, newest first.
func (r *firestoreCompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	iter := r.client.Collection(companiesCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var companies []*models.Company
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate companies: %w", err)
		}

		var company models.Company
		if err := doc.DataTo(&company); err != nil {
			return nil, fmt.Errorf("failed to decode company data for ID '%s': %w", doc.Ref.ID, err)
		}
		company.ID = doc.Ref.ID
		companies = append(companies, &company)
	}
	return companies, nil
}

// UpdateTx re-reads the company inside a Firestore transaction, applies mutate,
// and writes the result back. Errors returned by mutate abort the transaction,
// so admission checks (balance, active subscription window) hold at commit time
// even when another session raced on the same document.
func (r *firestoreCompanyRepository) UpdateTx(ctx context.Context, companyID string, mutate func(*models.Company) error) (*models.Company, error) {
	if companyID == "" {
		return nil, errors.New("companyID cannot be empty for UpdateTx operation")
	}

	docRef := r.client.Collection(companiesCollection).Doc(companyID)
	var updated models.Company

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("company with ID '%s' not found: %w", companyID, ErrNotFound)
			}
			return fmt.Errorf("failed to get company with ID '%s' in transaction: %w", companyID, err)
		}

		var company models.Company
		if err := docSnap.DataTo(&company); err != nil {
			return fmt.Errorf("failed to decode company data for ID '%s': %w", companyID, err)
		}
		company.ID = docSnap.Ref.ID

		if err := mutate(&company); err != nil {
			return err
		}

		updated = company
		return tx.Set(docRef, &company)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
