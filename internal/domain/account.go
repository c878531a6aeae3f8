package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeCash        AccountType = "cash"
	AccountTypeBank        AccountType = "bank"
	AccountTypeCreditCard  AccountType = "credit_card"
	AccountTypeStoredValue AccountType = "stored_value"
	AccountTypeSecurities  AccountType = "securities"
	AccountTypeOther       AccountType = "other"
)

// accountTypeLabels maps account types to their display names
var accountTypeLabels = map[AccountType]string{
	AccountTypeCash:        "Cash",
	AccountTypeBank:        "Bank",
	AccountTypeCreditCard:  "Credit card",
	AccountTypeStoredValue: "Stored value",
	AccountTypeSecurities:  "Securities",
	AccountTypeOther:       "Other",
}

// Label returns the display name for the account type, or the raw value when unknown.
func (t AccountType) Label() string {
	if label, ok := accountTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	_, ok := accountTypeLabels[t]
	return ok
}

// Account mirrors the backend's account resource. Balance is maintained by
// the backend and is only ever replaced by a re-fetch.
type Account struct {
	ID          int32           `json:"id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Description *string         `json:"description"`
	UserID      int32           `json:"user_id"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   *string         `json:"updated_at"`
}

// Clone returns a copy that shares no pointers with a.
func (a Account) Clone() Account {
	a.Description = clonePtr(a.Description)
	a.UpdatedAt = clonePtr(a.UpdatedAt)
	return a
}

type AccountCreate struct {
	Name           string           `json:"name"`
	AccountType    AccountType      `json:"account_type"`
	Currency       string           `json:"currency,omitempty"`
	Description    *string          `json:"description,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

type AccountUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks the fields the backend would reject anyway, so the store
// can fail fast without a round trip.
func (a *AccountCreate) Validate() error {
	if a.Name == "" {
		return ErrNameRequired
	}
	if len(a.Name) > MaxAccountNameLength {
		return ErrNameTooLong
	}
	if !a.AccountType.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

type AccountAPI interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	CreateAccount(ctx context.Context, input *AccountCreate) (*Account, error)
	UpdateAccount(ctx context.Context, id int32, input *AccountUpdate) (*Account, error)
	DeleteAccount(ctx context.Context, id int32) error
}
