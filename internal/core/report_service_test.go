package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolife-backend-go/internal/models"
)

func TestReportService_SalesSummary(t *testing.T) {
	now := time.Now().UTC()
	txnRepo := &fakeTransactionRepo{created: []*models.Transaction{
		{Type: models.TransactionSubscription, Amount: 115, CreatedAt: now.Add(-2 * time.Hour)},
		{Type: models.TransactionSubscription, Amount: 11040, CreatedAt: now.Add(-1 * time.Hour)},
		{Type: models.TransactionWalletCharge, Amount: 500, CreatedAt: now.Add(-30 * time.Minute)},
		{Type: models.TransactionWalletRefund, Amount: 75, CreatedAt: now.Add(-15 * time.Minute)},
		// Outside the window, must not count.
		{Type: models.TransactionSubscription, Amount: 999, CreatedAt: now.Add(-48 * time.Hour)},
	}}
	svc := NewReportService(txnRepo)

	report, err := svc.SalesSummary(context.Background(), now.Add(-24*time.Hour), now)

	require.NoError(t, err)
	assert.Equal(t, 4, report.TransactionCount)
	assert.InDelta(t, 11155.0, report.SubscriptionSales, 1e-9)
	assert.Equal(t, 2, report.SubscriptionCount)
	assert.InDelta(t, 500.0, report.WalletChargeTotal, 1e-9)
	assert.Equal(t, 1, report.WalletChargeCount)
	assert.InDelta(t, 75.0, report.WalletRefundTotal, 1e-9)
	assert.Equal(t, 1, report.WalletRefundCount)
}

func TestReportService_EmptyWindow(t *testing.T) {
	svc := NewReportService(&fakeTransactionRepo{})
	now := time.Now().UTC()

	report, err := svc.SalesSummary(context.Background(), now.Add(-time.Hour), now)

	require.NoError(t, err)
	assert.Zero(t, report.TransactionCount)
	assert.Zero(t, report.SubscriptionSales)
}
