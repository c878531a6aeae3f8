package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeCredit      TransactionType = "credit"
	TransactionTypeDebit       TransactionType = "debit"
	TransactionTypeInstallment TransactionType = "installment"
)

// IsIncome reports whether the transaction type adds to an account.
func (t TransactionType) IsIncome() bool {
	return t == TransactionTypeCredit
}

// IsExpense reports whether the transaction type is counted as spending in
// income/expense totals. Installments count as expenses here.
func (t TransactionType) IsExpense() bool {
	return t == TransactionTypeDebit || t == TransactionTypeInstallment
}

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit || t == TransactionTypeInstallment
}

// Transaction mirrors the backend's transaction resource. Amount is always
// non-negative; TransactionType decides the sign of its effect.
// TransactionDate is kept in the backend's lexical YYYY-MM-DDTHH:MM:SS form.
type Transaction struct {
	ID                 int32            `json:"id"`
	Description        string           `json:"description"`
	Amount             decimal.Decimal  `json:"amount"`
	TransactionType    TransactionType  `json:"transaction_type"`
	Category           *string          `json:"category"`
	TransactionDate    string           `json:"transaction_date"`
	AccountID          int32            `json:"account_id"`
	Note               *string          `json:"note,omitempty"`
	ForeignAmount      *decimal.Decimal `json:"foreign_amount,omitempty"`
	ForeignCurrency    *string          `json:"foreign_currency,omitempty"`
	IsInstallment      bool             `json:"is_installment"`
	InstallmentGroupID *string          `json:"installment_group_id,omitempty"`
	InstallmentNumber  *int32           `json:"installment_number,omitempty"`
	TotalInstallments  *int32           `json:"total_installments,omitempty"`
	ExcludeFromBudget  bool             `json:"exclude_from_budget"`
	RecurringGroupID   *string          `json:"recurring_group_id,omitempty"`
	IsFromRecurring    bool             `json:"is_from_recurring"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          *string          `json:"updated_at"`
}

// Clone returns a copy that shares no pointers with t.
func (t Transaction) Clone() Transaction {
	t.Category = clonePtr(t.Category)
	t.Note = clonePtr(t.Note)
	t.ForeignAmount = clonePtr(t.ForeignAmount)
	t.ForeignCurrency = clonePtr(t.ForeignCurrency)
	t.InstallmentGroupID = clonePtr(t.InstallmentGroupID)
	t.InstallmentNumber = clonePtr(t.InstallmentNumber)
	t.TotalInstallments = clonePtr(t.TotalInstallments)
	t.RecurringGroupID = clonePtr(t.RecurringGroupID)
	t.UpdatedAt = clonePtr(t.UpdatedAt)
	return t
}

type TransactionCreate struct {
	Description        string           `json:"description"`
	Amount             decimal.Decimal  `json:"amount"`
	TransactionType    TransactionType  `json:"transaction_type"`
	Category           *string          `json:"category,omitempty"`
	TransactionDate    string           `json:"transaction_date"`
	AccountID          int32            `json:"account_id"`
	Note               *string          `json:"note,omitempty"`
	ForeignAmount      *decimal.Decimal `json:"foreign_amount,omitempty"`
	ForeignCurrency    *string          `json:"foreign_currency,omitempty"`
	ExcludeFromBudget  bool             `json:"exclude_from_budget,omitempty"`
	IsInstallment      bool             `json:"is_installment,omitempty"`
	TotalInstallments  *int32           `json:"total_installments,omitempty"`
	BillingDay         *int32           `json:"billing_day,omitempty"`
	AnnualInterestRate *decimal.Decimal `json:"annual_interest_rate,omitempty"`
}

// Validate rejects negative amounts and unknown types before the backend sees them.
func (t *TransactionCreate) Validate() error {
	if t.Amount.IsNegative() {
		return ErrInvalidInput
	}
	if !t.TransactionType.IsValid() {
		return ErrInvalidInput
	}
	if t.AccountID == 0 || t.TransactionDate == "" {
		return ErrInvalidInput
	}
	return nil
}

type TransactionUpdate struct {
	Description     *string          `json:"description,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Category        *string          `json:"category,omitempty"`
	TransactionDate *string          `json:"transaction_date,omitempty"`
	Note            *string          `json:"note,omitempty"`
	ForeignCurrency *string          `json:"foreign_currency,omitempty"`
	TransactionType *TransactionType `json:"transaction_type,omitempty"`
}

type TransferCreate struct {
	FromAccountID   int32           `json:"from_account_id"`
	ToAccountID     int32           `json:"to_account_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date"`
	Description     string          `json:"description"`
	Note            *string         `json:"note,omitempty"`
}

type TransactionAPI interface {
	ListTransactions(ctx context.Context) ([]Transaction, error)
	CreateTransaction(ctx context.Context, input *TransactionCreate) (*Transaction, error)
	UpdateTransaction(ctx context.Context, id int32, input *TransactionUpdate) (*Transaction, error)
	DeleteTransaction(ctx context.Context, id int32) error
	Transfer(ctx context.Context, input *TransferCreate) error
	RecordDescription(ctx context.Context, description string) error
}
