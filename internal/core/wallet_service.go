package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petrolife-backend-go/internal/db"
	"petrolife-backend-go/internal/models"
)

// Custom errors for the WalletService
var (
	ErrWalletRequestNotFound   = errors.New("wallet request not found")
	ErrWalletRequestNotPending = errors.New("wallet request has already been decided")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrBankAccountNotFound     = errors.New("bank account not found")
)

// walletService implements the WalletService interface.
type walletService struct {
	walletRepo      db.WalletRequestRepository
	companyRepo     db.CompanyRepository
	bankAccountRepo db.BankAccountRepository
	txnRepo         db.TransactionRepository
	notifier        NotificationService
}

// NewWalletService creates a new WalletService instance.
func NewWalletService(
	wr db.WalletRequestRepository,
	cr db.CompanyRepository,
	br db.BankAccountRepository,
	tr db.TransactionRepository,
	notifier NotificationService,
) WalletService {
	return &walletService{
		walletRepo:      wr,
		companyRepo:     cr,
		bankAccountRepo: br,
		txnRepo:         tr,
		notifier:        notifier,
	}
}

// CreateRequest files a pending wallet charge or refund request for a company.
// No balance is touched until an admin approves it.
func (s *walletService) CreateRequest(ctx context.Context, companyID string, req models.CreateWalletRequestRequest) (*models.WalletRequest, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrCompanyNotFound, companyID)
		}
		return nil, fmt.Errorf("failed to get company '%s': %w", companyID, err)
	}

	request := &models.WalletRequest{
		CompanyID:     companyID,
		Type:          req.Type,
		Amount:        req.Amount,
		BankAccountID: req.BankAccountID,
		ReceiptURL:    req.ReceiptURL,
		Note:          req.Note,
		Status:        models.WalletRequestPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	requestID, err := s.walletRepo.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet request: %w", err)
	}
	request.ID = requestID

	return request, nil
}

// ListCompanyRequests retrieves a company's own wallet requests.
func (s *walletService) ListCompanyRequests(ctx context.Context, companyID string) ([]*models.WalletRequest, error) {
	requests, err := s.walletRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet requests for company '%s': %w", companyID, err)
	}
	return requests, nil
}

// ListPending retrieves all wallet requests awaiting an admin decision.
func (s *walletService) ListPending(ctx context.Context) ([]*models.WalletRequest, error) {
	requests, err := s.walletRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending wallet requests: %w", err)
	}
	return requests, nil
}

// Decide resolves a pending wallet request. Approval mutates the company
// balance inside a Firestore transaction: charges credit the wallet, refunds
// debit it and are rejected if they would drive the balance negative. The
// request status flips only after the balance write commits.
func (s *walletService) Decide(ctx context.Context, adminID, requestID string, decision models.DecideWalletRequestRequest) (*models.WalletRequest, error) {
	request, err := s.walletRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrWalletRequestNotFound, requestID)
		}
		return nil, fmt.Errorf("failed to get wallet request '%s': %w", requestID, err)
	}
	if request.Status != models.WalletRequestPending {
		return nil, fmt.Errorf("%w: status is '%s'", ErrWalletRequestNotPending, request.Status)
	}

	now := time.Now().UTC()

	if !decision.Approve {
		request.Status = models.WalletRequestRejected
		request.ProcessedBy = adminID
		request.ProcessedAt = &now
		request.RejectionReason = decision.RejectionReason
		if err := s.walletRepo.Update(ctx, request); err != nil {
			return nil, fmt.Errorf("failed to reject wallet request '%s': %w", requestID, err)
		}
		s.notifyDecision(ctx, request)
		return request, nil
	}

	_, err = s.companyRepo.UpdateTx(ctx, request.CompanyID, func(c *models.Company) error {
		switch request.Type {
		case models.WalletRequestCharge:
			c.Balance += request.Amount
		case models.WalletRequestRefund:
			if request.Amount > c.Balance {
				return fmt.Errorf("%w: refund %.2f exceeds balance %.2f", ErrInsufficientBalance, request.Amount, c.Balance)
			}
			c.Balance -= request.Amount
		default:
			return fmt.Errorf("unknown wallet request type '%s'", request.Type)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Status = models.WalletRequestApproved
	request.ProcessedBy = adminID
	request.ProcessedAt = &now
	if err := s.walletRepo.Update(ctx, request); err != nil {
		// The balance already moved; surface the inconsistency loudly.
		return nil, fmt.Errorf("balance updated but failed to mark wallet request '%s' approved: %w", requestID, err)
	}

	txnType := models.TransactionWalletCharge
	if request.Type == models.WalletRequestRefund {
		txnType = models.TransactionWalletRefund
	}
	txn := &models.Transaction{
		Type:        txnType,
		CompanyID:   request.CompanyID,
		Amount:      request.Amount,
		Description: fmt.Sprintf("wallet %s approved", request.Type),
		CreatedAt:   now,
	}
	if txnErr := s.txnRepo.Create(ctx, txn); txnErr != nil {
		fmt.Printf("Warning: failed to record wallet transaction for request '%s': %v\n", requestID, txnErr)
	}

	s.notifyDecision(ctx, request)
	return request, nil
}

func (s *walletService) notifyDecision(ctx context.Context, request *models.WalletRequest) {
	if s.notifier == nil {
		return
	}
	title := fmt.Sprintf("Wallet %s request %s", request.Type, request.Status)
	body := fmt.Sprintf("Your %s request for %.2f was %s.", request.Type, request.Amount, request.Status)
	if request.RejectionReason != "" {
		body += " Reason: " + request.RejectionReason
	}
	if err := s.notifier.Notify(ctx, request.CompanyID, title, body); err != nil {
		fmt.Printf("Warning: failed to notify company '%s' about wallet request '%s': %v\n", request.CompanyID, request.ID, err)
	}
}

// CreateBankAccount registers a platform bank account (admin only).
func (s *walletService) CreateBankAccount(ctx context.Context, req models.CreateBankAccountRequest) (*models.BankAccount, error) {
	account := &models.BankAccount{
		BankName:    req.BankName,
		AccountName: req.AccountName,
		IBAN:        req.IBAN,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	accountID, err := s.bankAccountRepo.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}
	account.ID = accountID
	return account, nil
}

// ListBankAccounts returns bank accounts; companies only see active ones.
func (s *walletService) ListBankAccounts(ctx context.Context, onlyActive bool) ([]*models.BankAccount, error) {
	accounts, err := s.bankAccountRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

// UpdateBankAccount applies the provided fields to a bank account (admin only).
func (s *walletService) UpdateBankAccount(ctx context.Context, accountID string, req models.UpdateBankAccountRequest) (*models.BankAccount, error) {
	account, err := s.bankAccountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrBankAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to get bank account '%s': %w", accountID, err)
	}

	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.IBAN != nil {
		account.IBAN = *req.IBAN
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.bankAccountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update bank account '%s': %w", accountID, err)
	}
	return account, nil
}

// DeleteBankAccount removes a bank account (admin only). Historical wallet
// requests keep their BankAccountID reference as-is.
func (s *walletService) DeleteBankAccount(ctx context.Context, accountID string) error {
	if _, err := s.bankAccountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrBankAccountNotFound, accountID)
		}
		return fmt.Errorf("failed to get bank account '%s': %w", accountID, err)
	}
	if err := s.bankAccountRepo.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete bank account '%s': %w", accountID, err)
	}
	return nil
}
