package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboardHandler() *DashboardHandler {
	return NewDashboardHandler(service.NewDashboardService(service.NewBudgetService(fixedClock), fixedClock))
}

func seedDashboard(f *handlerFixture) {
	ledger := f.backend.Ledger
	ledger.AddAccount(domain.Account{ID: 1, Name: "Checking", AccountType: domain.AccountTypeBank, Currency: "USD", Balance: decimal.NewFromInt(4900)})
	ledger.AddAccount(domain.Account{ID: 2, Name: "Euro cash", AccountType: domain.AccountTypeCash, Currency: "EUR", Balance: decimal.NewFromInt(50)})
	ledger.AddTransaction(domain.Transaction{AccountID: 1, Amount: decimal.NewFromInt(5000), TransactionType: domain.TransactionTypeCredit, TransactionDate: "2026-10-01T09:00:00"})
	ledger.AddTransaction(domain.Transaction{AccountID: 1, Amount: decimal.NewFromInt(100), TransactionType: domain.TransactionTypeDebit, TransactionDate: "2026-10-16T12:00:00"})
}

func TestGetSummary_Modes(t *testing.T) {
	f := newHandlerFixture(t)
	seedDashboard(f)
	sess := f.login(t)
	handler := newTestDashboardHandler()

	tests := []struct {
		name        string
		target      string
		wantMode    string
		wantIncome  string
		wantExpense string
		wantNet     string
		wantUSD     string
	}{
		{"default is total", "/api/v1/dashboard", "total", "5000.00", "100.00", "4900.00", "4900.00"},
		{"month", "/api/v1/dashboard?mode=month", "month", "5000.00", "100.00", "4900.00", "4900.00"},
		{"day", "/api/v1/dashboard?mode=day", "day", "0.00", "100.00", "-100.00", "-100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newSessionContext(sess, http.MethodGet, tt.target, "")
			if err := handler.GetSummary(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", rec.Code)
			}

			resp := decodeBody[DashboardSummaryResponse](t, rec)
			assert.Equal(t, tt.wantMode, resp.Mode)
			assert.Equal(t, tt.wantIncome, resp.Stats.Income)
			assert.Equal(t, tt.wantExpense, resp.Stats.Expense)
			assert.Equal(t, tt.wantNet, resp.Stats.Net)

			require.Len(t, resp.TotalByCurrency, 2)
			assert.Equal(t, "EUR", resp.TotalByCurrency[0].Currency)
			assert.Equal(t, "USD", resp.TotalByCurrency[1].Currency)
			assert.Equal(t, tt.wantUSD, resp.TotalByCurrency[1].Total)
			assert.Len(t, resp.Accounts, 2)
			assert.Empty(t, resp.Errors)
		})
	}
}

func TestGetSummary_InvalidMode(t *testing.T) {
	f := newHandlerFixture(t)
	sess := f.login(t)

	c, rec := newSessionContext(sess, http.MethodGet, "/api/v1/dashboard?mode=week", "")
	require.NoError(t, newTestDashboardHandler().GetSummary(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decodeBody[ProblemDetails](t, rec)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "mode", problem.Errors[0].Field)
}

func TestGetSummary_ReportsStoreErrors(t *testing.T) {
	f := newHandlerFixture(t)
	seedDashboard(f)
	sess := f.login(t)

	f.backend.Ledger.SetError("ListTransactions", &domain.APIError{Kind: domain.ErrorKindServer, Status: http.StatusInternalServerError})
	sess.Transactions.Fetch(t.Context())

	c, rec := newSessionContext(sess, http.MethodGet, "/api/v1/dashboard", "")
	require.NoError(t, newTestDashboardHandler().GetSummary(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[DashboardSummaryResponse](t, rec)
	assert.Equal(t, "5000.00", resp.Stats.Income, "stale transactions are still summarised")
	assert.Equal(t, []string{"Failed to load transactions"}, resp.Errors)
}
