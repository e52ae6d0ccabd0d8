package core

import (
	"context"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// SalesReport aggregates the financial transactions in a reporting window.
type SalesReport struct {
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	SubscriptionSales float64   `json:"subscriptionSales"`
	SubscriptionCount int       `json:"subscriptionCount"`
	WalletChargeTotal float64   `json:"walletChargeTotal"`
	WalletChargeCount int       `json:"walletChargeCount"`
	WalletRefundTotal float64   `json:"walletRefundTotal"`
	WalletRefundCount int       `json:"walletRefundCount"`
	TransactionCount  int       `json:"transactionCount"`
}

// reportService implements the ReportService interface.
type reportService struct {
	txnRepo db.TransactionRepository
}

// NewReportService creates a new ReportService instance.
func NewReportService(txnRepo db.TransactionRepository) ReportService {
	return &reportService{txnRepo: txnRepo}
}

// SalesSummary sums transaction records by type over [from, to).
func (s *reportService) SalesSummary(ctx context.Context, from, to time.Time) (*SalesReport, error) {
	txns, err := s.txnRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for report: %w", err)
	}

	report := &SalesReport{From: from, To: to, TransactionCount: len(txns)}
	for _, txn := range txns {
		switch txn.Type {
		case models.TransactionSubscription:
			report.SubscriptionSales += txn.Amount
			report.SubscriptionCount++
		case models.TransactionWalletCharge:
			report.WalletChargeTotal += txn.Amount
			report.WalletChargeCount++
		case models.TransactionWalletRefund:
			report.WalletRefundTotal += txn.Amount
			report.WalletRefundCount++
		}
	}
	return report, nil
}
