package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount_Success(t *testing.T) {
	f := newHandlerFixture(t)
	sess := f.login(t)
	handler := NewAccountHandler()

	c, rec := newSessionContext(sess, http.MethodPost, "/api/v1/accounts", `{"name": "My Savings", "accountType": "bank", "initialBalance": "1000.5"}`)
	if err := handler.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	response := decodeBody[ListResponse[AccountResponse]](t, rec)
	if len(response.Items) != 1 {
		t.Fatalf("Expected 1 account, got %d", len(response.Items))
	}
	account := response.Items[0]
	if account.Name != "My Savings" {
		t.Errorf("Expected name 'My Savings', got %s", account.Name)
	}
	if account.Balance != "1000.50" {
		t.Errorf("Expected balance '1000.50', got %s", account.Balance)
	}
	if account.Currency != "USD" {
		t.Errorf("Expected currency 'USD', got %s", account.Currency)
	}
	if account.AccountTypeLabel != "Bank" {
		t.Errorf("Expected account type label 'Bank', got %s", account.AccountTypeLabel)
	}
}

func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantField  string
		wantDetail string
	}{
		{"missing name", `{"accountType": "bank"}`, "name", "Validation failed"},
		{"bad balance", `{"name": "Wallet", "accountType": "cash", "initialBalance": "lots"}`, "initialBalance", "Invalid initial balance"},
		{"unknown type", `{"name": "Wallet", "accountType": "piggy_bank"}`, "", "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			sess := f.login(t)

			c, rec := newSessionContext(sess, http.MethodPost, "/api/v1/accounts", tt.body)
			require.NoError(t, NewAccountHandler().CreateAccount(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			problem := decodeBody[ProblemDetails](t, rec)
			assert.Equal(t, ErrorTypeValidation, problem.Type)
			assert.Equal(t, tt.wantDetail, problem.Detail)
			if tt.wantField != "" {
				require.Len(t, problem.Errors, 1)
				assert.Equal(t, tt.wantField, problem.Errors[0].Field)
			}
			assert.Equal(t, 0, f.backend.Ledger.CallCount("CreateAccount"))
		})
	}
}

func TestGetAccounts_ShowsStaleSnapshotWithError(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.Ledger.AddAccount(domain.Account{ID: 1, Name: "Checking", AccountType: domain.AccountTypeBank, Currency: "USD", Balance: decimal.NewFromInt(250)})
	sess := f.login(t)

	f.backend.Ledger.SetError("ListAccounts", &domain.APIError{Kind: domain.ErrorKindServer, Status: http.StatusServiceUnavailable, Detail: "database offline"})
	sess.Accounts.Fetch(t.Context())

	c, rec := newSessionContext(sess, http.MethodGet, "/api/v1/accounts", "")
	require.NoError(t, NewAccountHandler().GetAccounts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ListResponse[AccountResponse]](t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "250.00", resp.Items[0].Balance)
	assert.Equal(t, "database offline", resp.Error)
	assert.False(t, resp.Loading)
}

func TestGetAccount(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.Ledger.AddAccount(domain.Account{ID: 7, Name: "Card", AccountType: domain.AccountTypeCreditCard, Currency: "EUR", Balance: decimal.RequireFromString("-12.3")})
	sess := f.login(t)
	handler := NewAccountHandler()

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", "7", http.StatusOK},
		{"missing", "8", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newSessionContext(sess, http.MethodGet, "/api/v1/accounts/"+tt.id, "")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, handler.GetAccount(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				account := decodeBody[AccountResponse](t, rec)
				assert.Equal(t, "-12.30", account.Balance)
				assert.Equal(t, "Credit card", account.AccountTypeLabel)
			}
		})
	}
}

func TestUpdateAccount(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.Ledger.AddAccount(domain.Account{ID: 3, Name: "Old", AccountType: domain.AccountTypeCash, Currency: "USD"})
	sess := f.login(t)

	c, rec := newSessionContext(sess, http.MethodPut, "/api/v1/accounts/3", `{"name": "Wallet"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, NewAccountHandler().UpdateAccount(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ListResponse[AccountResponse]](t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Wallet", resp.Items[0].Name)
}

func TestUpdateAccount_EmptyName(t *testing.T) {
	f := newHandlerFixture(t)
	sess := f.login(t)

	c, rec := newSessionContext(sess, http.MethodPut, "/api/v1/accounts/3", `{"name": ""}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, NewAccountHandler().UpdateAccount(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, f.backend.Ledger.CallCount("UpdateAccount"))
}

func TestDeleteAccount(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.Ledger.AddAccount(domain.Account{ID: 5, Name: "Gone", AccountType: domain.AccountTypeOther, Currency: "USD"})
	sess := f.login(t)
	handler := NewAccountHandler()

	c, rec := newSessionContext(sess, http.MethodDelete, "/api/v1/accounts/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, handler.DeleteAccount(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, sess.Accounts.Accounts())

	c, rec = newSessionContext(sess, http.MethodDelete, "/api/v1/accounts/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, handler.DeleteAccount(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "account 42 not found", decodeBody[ProblemDetails](t, rec).Detail)
}

func TestAccountHandler_RequiresSession(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/api/v1/accounts", "")
	require.NoError(t, NewAccountHandler().GetAccounts(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
