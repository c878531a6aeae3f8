package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_CreateRefetches(t *testing.T) {
	ledger := testutil.NewMockLedger()
	s := NewAccountStore(ledger, nil)

	initial := decimal.NewFromInt(250)
	err := s.Create(context.Background(), &domain.AccountCreate{
		Name:           "Checking",
		AccountType:    domain.AccountTypeBank,
		InitialBalance: &initial,
	})
	require.NoError(t, err)

	accounts := s.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, "USD", accounts[0].Currency)
	assert.True(t, accounts[0].Balance.Equal(initial))
	assert.Equal(t, 1, ledger.CallCount("ListAccounts"))
}

func TestAccountStore_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.AccountCreate
		wantErr error
	}{
		{"empty name", domain.AccountCreate{AccountType: domain.AccountTypeCash}, domain.ErrNameRequired},
		{"name too long", domain.AccountCreate{Name: strings.Repeat("a", 256), AccountType: domain.AccountTypeCash}, domain.ErrNameTooLong},
		{"unknown type", domain.AccountCreate{Name: "x", AccountType: "loan"}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := testutil.NewMockLedger()
			s := NewAccountStore(ledger, nil)

			err := s.Create(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "Failed to create account", s.Status().Error)
			assert.Zero(t, ledger.CallCount("CreateAccount"))
			assert.Zero(t, ledger.CallCount("ListAccounts"))
		})
	}
}

func TestAccountStore_WriteFailureRecordsDetail(t *testing.T) {
	ledger := testutil.NewMockLedger()
	ledger.AddAccount(domain.Account{ID: 1, Name: "Wallet", Currency: "USD"})
	s := NewAccountStore(ledger, nil)
	s.Fetch(context.Background())

	name := "Renamed"
	ledger.SetError("UpdateAccount", &domain.APIError{Kind: domain.ErrorKindValidation, Status: 400, Detail: "Account name already in use"})

	err := s.Update(context.Background(), 1, &domain.AccountUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "Account name already in use", s.Status().Error)
	assert.False(t, s.Status().Loading)

	// Snapshot is untouched by the failed write
	assert.Equal(t, "Wallet", s.Accounts()[0].Name)
}

func TestAccountStore_DeleteNotFound(t *testing.T) {
	ledger := testutil.NewMockLedger()
	s := NewAccountStore(ledger, nil)

	err := s.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "account 42 not found", s.Status().Error)
}

func TestAccountStore_SnapshotIsACopy(t *testing.T) {
	ledger := testutil.NewMockLedger()
	ledger.AddAccount(domain.Account{ID: 1, Name: "Wallet", Currency: "USD"})
	s := NewAccountStore(ledger, nil)
	s.Fetch(context.Background())

	accounts := s.Accounts()
	accounts[0].Name = "mutated"

	got, ok := s.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Wallet", got.Name)

	_, ok = s.ByID(99)
	assert.False(t, ok)
}

func TestAccountStore_SnapshotSharesNoPointers(t *testing.T) {
	ledger := testutil.NewMockLedger()
	desc := "daily spending"
	ledger.AddAccount(domain.Account{ID: 1, Name: "Wallet", Currency: "USD", Description: &desc})
	s := NewAccountStore(ledger, nil)
	s.Fetch(context.Background())

	accounts := s.Accounts()
	require.NotNil(t, accounts[0].Description)
	*accounts[0].Description = "mutated"

	got, ok := s.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "daily spending", *got.Description)
}
