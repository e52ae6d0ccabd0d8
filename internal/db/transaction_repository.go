package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"petrolife-backend-go/internal/models"
)

const transactionsCollection = "transactions"

// firestoreTransactionRepository implements the TransactionRepository interface using Firestore.
type firestoreTransactionRepository struct {
	client *firestore.Client
}

// NewFirestoreTransactionRepository creates a new instance of firestoreTransactionRepository.
func NewFirestoreTransactionRepository(client *firestore.Client) TransactionRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for TransactionRepository.")
	}
	return &firestoreTransactionRepository{client: client}
}

// Create appends a new transaction document with an auto-generated ID.
func (r *firestoreTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	docRef := r.client.Collection(transactionsCollection).NewDoc()
	txn.ID = docRef.ID

	_, err := docRef.Create(ctx, txn)
	if err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}
	return nil
}

// ListByPeriod retrieves transactions created within [from, to), oldest first.
func (r *firestoreTransactionRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*models.Transaction, error) {
	iter := r.client.Collection(transactionsCollection).
		Where("createdAt", ">=", from).
		Where("createdAt", "<", to).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var txns []*models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate transactions: %w", err)
		}

		var txn models.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, fmt.Errorf("failed to decode transaction data for ID '%s': %w", doc.Ref.ID, err)
		}
		txn.ID = doc.Ref.ID
		txns = append(txns, &txn)
	}
	return txns, nil
}
