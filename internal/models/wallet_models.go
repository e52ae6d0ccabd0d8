package models

import "time"

// WalletRequestType distinguishes wallet top-ups from refunds.
type WalletRequestType string

// WalletRequestStatus is the lifecycle state of a wallet request.
type WalletRequestStatus string

const (
	WalletRequestCharge WalletRequestType = "charge"
	WalletRequestRefund WalletRequestType = "refund"

	WalletRequestPending  WalletRequestStatus = "pending"
	WalletRequestApproved WalletRequestStatus = "approved"
	WalletRequestRejected WalletRequestStatus = "rejected"
)

// WalletRequest is a company's request to credit (charge) or debit (refund)
// its wallet balance. Balance mutation happens only on admin approval.
type WalletRequest struct {
	ID              string              `json:"id" firestore:"-"`
	CompanyID       string              `json:"companyId" firestore:"companyId"`
	Type            WalletRequestType   `json:"type" firestore:"type"`
	Amount          float64             `json:"amount" firestore:"amount"`
	BankAccountID   string              `json:"bankAccountId,omitempty" firestore:"bankAccountId,omitempty"`
	ReceiptURL      string              `json:"receiptURL,omitempty" firestore:"receiptURL,omitempty"`
	Note            string              `json:"note,omitempty" firestore:"note,omitempty"`
	Status          WalletRequestStatus `json:"status" firestore:"status"`
	ProcessedBy     string              `json:"processedBy,omitempty" firestore:"processedBy,omitempty"`
	ProcessedAt     *time.Time          `json:"processedAt,omitempty" firestore:"processedAt,omitempty"`
	RejectionReason string              `json:"rejectionReason,omitempty" firestore:"rejectionReason,omitempty"`
	CreatedAt       time.Time           `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt       time.Time           `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// BankAccount is a platform bank account companies transfer top-ups into.
// Companies only ever see active accounts.
type BankAccount struct {
	ID          string    `json:"id" firestore:"-"`
	BankName    string    `json:"bankName" firestore:"bankName"`
	AccountName string    `json:"accountName" firestore:"accountName"`
	IBAN        string    `json:"iban" firestore:"iban"`
	IsActive    bool      `json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// TransactionType classifies financial transaction records for reporting.
type TransactionType string

const (
	TransactionSubscription TransactionType = "subscription"
	TransactionWalletCharge TransactionType = "wallet_charge"
	TransactionWalletRefund TransactionType = "wallet_refund"
)

// Transaction is an append-only financial record written whenever money moves:
// subscription purchases and approved wallet requests. The report service
// aggregates over these.
type Transaction struct {
	ID          string          `json:"id" firestore:"-"`
	Type        TransactionType `json:"type" firestore:"type"`
	CompanyID   string          `json:"companyId" firestore:"companyId"`
	Amount      float64         `json:"amount" firestore:"amount"`
	Description string          `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// Notification is a per-tenant message shown in the dashboard widget.
type Notification struct {
	ID          string    `json:"id" firestore:"-"`
	RecipientID string    `json:"recipientId" firestore:"recipientId"`
	Title       string    `json:"title" firestore:"title"`
	Body        string    `json:"body,omitempty" firestore:"body,omitempty"`
	Read        bool      `json:"read" firestore:"read"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
