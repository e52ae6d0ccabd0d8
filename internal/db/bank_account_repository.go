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

const bankAccountsCollection = "bankAccounts"

// firestoreBankAccountRepository implements the BankAccountRepository interface using Firestore.
type firestoreBankAccountRepository struct {
	client *firestore.Client
}

// NewFirestoreBankAccountRepository creates a new instance of firestoreBankAccountRepository.
func NewFirestoreBankAccountRepository(client *firestore.Client) BankAccountRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for BankAccountRepository.")
	}
	return &firestoreBankAccountRepository{client: client}
}

// Create adds a new bank account document to Firestore with an auto-generated ID.
func (r *firestoreBankAccountRepository) Create(ctx context.Context, account *models.BankAccount) (string, error) {
	docRef := r.client.Collection(bankAccountsCollection).NewDoc()
	account.ID = docRef.ID

	_, err := docRef.Create(ctx, account)
	if err != nil {
		return "", fmt.Errorf("failed to create bank account: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a bank account document from Firestore by its ID.
func (r *firestoreBankAccountRepository) GetByID(ctx context.Context, accountID string) (*models.BankAccount, error) {
	if accountID == "" {
		return nil, errors.New("accountID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(bankAccountsCollection).Doc(accountID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("bank account with ID '%s' not found: %w", accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bank account with ID '%s': %w", accountID, err)
	}

	var account models.BankAccount
	if err := docSnap.DataTo(&account); err != nil {
		return nil, fmt.Errorf("failed to decode bank account data for ID '%s': %w", accountID, err)
	}
	account.ID = docSnap.Ref.ID
	return &account, nil
}

// List retrieves bank accounts; with onlyActive it filters to accounts
// companies are allowed to transfer into.
func (r *firestoreBankAccountRepository) List(ctx context.Context, onlyActive bool) ([]*models.BankAccount, error) {
	query := r.client.Collection(bankAccountsCollection).Query
	if onlyActive {
		query = query.Where("isActive", "==", true)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var accounts []*models.BankAccount
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate bank accounts: %w", err)
		}

		var account models.BankAccount
		if err := doc.DataTo(&account); err != nil {
			return nil, fmt.Errorf("failed to decode bank account data for ID '%s': %w", doc.Ref.ID, err)
		}
		account.ID = doc.Ref.ID
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

// Update overwrites an existing bank account document.
func (r *firestoreBankAccountRepository) Update(ctx context.Context, account *models.BankAccount) error {
	if account.ID == "" {
		return errors.New("bank account ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(bankAccountsCollection).Doc(account.ID).Set(ctx, account, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update bank account with ID '%s': %w", account.ID, err)
	}
	return nil
}

// Delete removes a bank account document by its ID.
func (r *firestoreBankAccountRepository) Delete(ctx context.Context, accountID string) error {
	if accountID == "" {
		return errors.New("accountID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(bankAccountsCollection).Doc(accountID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete bank account with ID '%s': %w", accountID, err)
	}
	return nil
}
