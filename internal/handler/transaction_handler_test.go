package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 16, 14, 30, 0, 0, time.Local)
}

func seedTwoAccounts(f *handlerFixture) {
	f.backend.Ledger.AddAccount(domain.Account{ID: 1, Name: "Checking", AccountType: domain.AccountTypeBank, Currency: "USD", Balance: decimal.NewFromInt(1000)})
	f.backend.Ledger.AddAccount(domain.Account{ID: 2, Name: "Savings", AccountType: domain.AccountTypeBank, Currency: "USD", Balance: decimal.Zero})
}

func TestCreateTransaction_RefreshesBalances(t *testing.T) {
	f := newHandlerFixture(t)
	seedTwoAccounts(f)
	sess := f.login(t)
	handler := NewTransactionHandler(fixedClock)

	c, rec := newSessionContext(sess, http.MethodPost, "/api/v1/transactions",
		`{"accountId": 1, "description": "  Lunch  ", "amount": "4.5", "type": "debit", "category": "Food"}`)
	require.NoError(t, handler.CreateTransaction(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[ListResponse[TransactionResponse]](t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "4.50", resp.Items[0].Amount)
	assert.Equal(t, "debit", resp.Items[0].Type)
	assert.Equal(t, "2026-10-16T14:30:00", resp.Items[0].TransactionDate)

	account, ok := sess.Accounts.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "995.50", account.Balance.StringFixed(2))
	assert.Equal(t, []string{"Lunch"}, f.backend.Ledger.Descriptions)
}

func TestCreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unparseable amount", `{"accountId": 1, "amount": "ten", "type": "debit"}`},
		{"negative amount", `{"accountId": 1, "amount": "-1", "type": "debit"}`},
		{"unknown type", `{"accountId": 1, "amount": "1", "type": "refund"}`},
		{"missing account", `{"amount": "1", "type": "credit"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			seedTwoAccounts(f)
			sess := f.login(t)

			c, rec := newSessionContext(sess, http.MethodPost, "/api/v1/transactions", tt.body)
			require.NoError(t, NewTransactionHandler(fixedClock).CreateTransaction(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, f.backend.Ledger.CallCount("CreateTransaction"))
		})
	}
}

func TestGetTransactions_Filters(t *testing.T) {
	f := newHandlerFixture(t)
	seedTwoAccounts(f)
	ledger := f.backend.Ledger
	ledger.AddTransaction(domain.Transaction{ID: 10, AccountID: 1, Amount: decimal.NewFromInt(5), TransactionType: domain.TransactionTypeDebit, TransactionDate: "2026-09-30T10:00:00"})
	ledger.AddTransaction(domain.Transaction{ID: 11, AccountID: 1, Amount: decimal.NewFromInt(6), TransactionType: domain.TransactionTypeDebit, TransactionDate: "2026-10-01T10:00:00"})
	ledger.AddTransaction(domain.Transaction{ID: 12, AccountID: 2, Amount: decimal.NewFromInt(7), TransactionType: domain.TransactionTypeCredit, TransactionDate: "2026-10-02T10:00:00"})
	sess := f.login(t)
	handler := NewTransactionHandler(fixedClock)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantIDs    []int32
	}{
		{"all", "/api/v1/transactions", http.StatusOK, []int32{10, 11, 12}},
		{"by account", "/api/v1/transactions?accountId=1", http.StatusOK, []int32{10, 11}},
		{"by month", "/api/v1/transactions?month=2026-10", http.StatusOK, []int32{11, 12}},
		{"both", "/api/v1/transactions?accountId=1&month=2026-10", http.StatusOK, []int32{11}},
		{"bad month", "/api/v1/transactions?month=October", http.StatusBadRequest, nil},
		{"bad account", "/api/v1/transactions?accountId=x", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newSessionContext(sess, http.MethodGet, tt.target, "")
			require.NoError(t, handler.GetTransactions(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			resp := decodeBody[ListResponse[TransactionResponse]](t, rec)
			ids := make([]int32, 0, len(resp.Items))
			for _, item := range resp.Items {
				ids = append(ids, item.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}

	assert.Len(t, sess.Transactions.Transactions(), 3, "filtering must not touch the store")
}

func TestUpdateTransaction(t *testing.T) {
	f := newHandlerFixture(t)
	seedTwoAccounts(f)
	f.backend.Ledger.AddTransaction(domain.Transaction{ID: 20, AccountID: 1, Amount: decimal.NewFromInt(5), TransactionType: domain.TransactionTypeDebit, TransactionDate: "2026-10-01T10:00:00"})
	sess := f.login(t)
	handler := NewTransactionHandler(fixedClock)

	c, rec := newSessionContext(sess, http.MethodPut, "/api/v1/transactions/20", `{"amount": "12.25", "description": "Dinner"}`)
	c.SetParamNames("id")
	c.SetParamValues("20")
	require.NoError(t, handler.UpdateTransaction(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ListResponse[TransactionResponse]](t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "12.25", resp.Items[0].Amount)
	assert.Equal(t, "Dinner", resp.Items[0].Description)

	c, rec = newSessionContext(sess, http.MethodPut, "/api/v1/transactions/20", `{"type": "refund"}`)
	c.SetParamNames("id")
	c.SetParamValues("20")
	require.NoError(t, handler.UpdateTransaction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	sess := f.login(t)

	c, rec := newSessionContext(sess, http.MethodDelete, "/api/v1/transactions/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, NewTransactionHandler(fixedClock).DeleteTransaction(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "transaction 99 not found", decodeBody[ProblemDetails](t, rec).Detail)
	assert.Equal(t, "transaction 99 not found", sess.Transactions.Status().Error)
}

func TestCreateTransfer(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantField   string
		wantBalance [2]string
	}{
		{
			name:        "moves money",
			body:        `{"fromAccountId": 1, "toAccountId": 2, "amount": "300", "description": "Move"}`,
			wantStatus:  http.StatusCreated,
			wantBalance: [2]string{"700.00", "300.00"},
		},
		{
			name:        "same account",
			body:        `{"fromAccountId": 1, "toAccountId": 1, "amount": "300"}`,
			wantStatus:  http.StatusBadRequest,
			wantField:   "toAccountId",
			wantBalance: [2]string{"1000.00", "0.00"},
		},
		{
			name:        "zero amount",
			body:        `{"fromAccountId": 1, "toAccountId": 2, "amount": "0"}`,
			wantStatus:  http.StatusBadRequest,
			wantField:   "amount",
			wantBalance: [2]string{"1000.00", "0.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			seedTwoAccounts(f)
			sess := f.login(t)

			c, rec := newSessionContext(sess, http.MethodPost, "/api/v1/transactions/transfers", tt.body)
			require.NoError(t, NewTransactionHandler(fixedClock).CreateTransfer(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantField != "" {
				problem := decodeBody[ProblemDetails](t, rec)
				require.Len(t, problem.Errors, 1)
				assert.Equal(t, tt.wantField, problem.Errors[0].Field)
			} else {
				resp := decodeBody[ListResponse[TransactionResponse]](t, rec)
				assert.Len(t, resp.Items, 2)
			}

			from, _ := sess.Accounts.ByID(1)
			to, _ := sess.Accounts.ByID(2)
			assert.Equal(t, tt.wantBalance[0], from.Balance.StringFixed(2))
			assert.Equal(t, tt.wantBalance[1], to.Balance.StringFixed(2))
		})
	}
}
