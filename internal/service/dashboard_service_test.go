package service

import (
	"context"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 14, 30, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func openSession(t *testing.T) (*testutil.FakeBackend, *session.Session) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	fb.Ledger.Now = clock
	fb.AddUser("ana@example.com", "s3cret-pass", "")

	m := session.NewManager(session.Options{BaseURL: fb.URL(), Timeout: 5 * time.Second, Now: clock})
	t.Cleanup(m.Stop)

	sess, err := m.Login(context.Background(), domain.Credentials{Username: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	return fb, sess
}

// seedRoundTrip records a salary, a lunch and a monthly food budget through
// the stores, exactly as a user would.
func seedRoundTrip(t *testing.T, sess *session.Session) domain.Account {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, sess.Accounts.Create(ctx, &domain.AccountCreate{Name: "Checking", AccountType: domain.AccountTypeBank, Currency: "USD"}))
	require.Len(t, sess.Accounts.Accounts(), 1)
	account := sess.Accounts.Accounts()[0]

	food := "Food"
	require.NoError(t, sess.Transactions.Create(ctx, &domain.TransactionCreate{
		Description:     "Salary",
		Amount:          decimal.NewFromInt(5000),
		TransactionType: domain.TransactionTypeCredit,
		TransactionDate: "2026-10-16T09:00:00",
		AccountID:       account.ID,
	}))
	require.NoError(t, sess.Transactions.Create(ctx, &domain.TransactionCreate{
		Description:     "Lunch",
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.TransactionTypeDebit,
		Category:        &food,
		TransactionDate: "2026-10-16T12:30:00",
		AccountID:       account.ID,
	}))

	monthly := domain.BudgetPeriodMonthly
	require.NoError(t, sess.Budgets.Create(ctx, &domain.BudgetCreate{
		Name:           "Food",
		CategoryNames:  []string{"Food"},
		Amount:         decimal.NewFromInt(3000),
		DailyLimitMode: domain.DailyLimitModeAuto,
		RangeMode:      domain.RangeModeRecurring,
		Period:         &monthly,
	}))

	// Balances are recomputed by the backend; pick them up
	sess.Accounts.Fetch(ctx)
	return account
}

func TestDashboardService_RoundTrip(t *testing.T) {
	_, sess := openSession(t)
	account := seedRoundTrip(t, sess)

	svc := NewDashboardService(NewBudgetService(clock), clock)

	for _, mode := range []domain.TimeRangeMode{domain.TimeRangeTotal, domain.TimeRangeMonth, domain.TimeRangeDay} {
		t.Run(string(mode), func(t *testing.T) {
			summary := svc.GetSummary(sess, mode)

			assert.Equal(t, mode, summary.Mode)
			assert.Equal(t, "5000.00", summary.Stats.Income.StringFixed(2))
			assert.Equal(t, "100.00", summary.Stats.Expense.StringFixed(2))
			assert.Equal(t, "4900.00", summary.Stats.Net.StringFixed(2))
			assert.Equal(t, "4900.00", summary.TotalByCurrency["USD"].StringFixed(2))

			require.Len(t, summary.Accounts, 1)
			assert.Equal(t, account.ID, summary.Accounts[0].AccountID)
			assert.Equal(t, "4900.00", summary.Accounts[0].Amount.StringFixed(2))

			require.Len(t, summary.Budgets, 1)
			view := summary.Budgets[0]
			assert.Equal(t, "100.00", view.Budget.Spent.StringFixed(2))
			assert.Equal(t, "2900.00", view.Remaining.StringFixed(2))
			assert.Equal(t, domain.BudgetStatusGood, view.Status)
			assert.Equal(t, "100.00", view.DailySpent.StringFixed(2))
			assert.Equal(t, "All accounts", view.AccountNames)
		})
	}
}

func TestDashboardService_WindowedVersusLiveBalance(t *testing.T) {
	fb, sess := openSession(t)
	account := fb.Ledger.AddAccount(domain.Account{Name: "Savings", Currency: "EUR", Balance: decimal.NewFromInt(10000)})
	fb.Ledger.AddTransaction(domain.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(250), TransactionType: domain.TransactionTypeCredit, TransactionDate: "2026-10-02T10:00:00"})
	fb.Ledger.AddTransaction(domain.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(40), TransactionType: domain.TransactionTypeInstallment, TransactionDate: "2026-10-16T08:00:00"})
	fb.Ledger.AddTransaction(domain.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(999), TransactionType: domain.TransactionTypeDebit, TransactionDate: "2026-09-30T23:59:00"})
	require.NoError(t, sess.Load(context.Background()))

	svc := NewDashboardService(NewBudgetService(clock), clock)

	assert.Equal(t, "10000.00", svc.GetSummary(sess, domain.TimeRangeTotal).TotalByCurrency["EUR"].StringFixed(2))
	assert.Equal(t, "210.00", svc.GetSummary(sess, domain.TimeRangeMonth).TotalByCurrency["EUR"].StringFixed(2))
	assert.Equal(t, "-40.00", svc.GetSummary(sess, domain.TimeRangeDay).TotalByCurrency["EUR"].StringFixed(2))
}

func TestDashboardService_EmptySession(t *testing.T) {
	_, sess := openSession(t)
	svc := NewDashboardService(NewBudgetService(clock), clock)

	summary := svc.GetSummary(sess, domain.TimeRangeMonth)
	assert.Empty(t, summary.TotalByCurrency)
	assert.True(t, summary.Stats.Net.IsZero())
	assert.Empty(t, summary.Accounts)
	assert.Empty(t, summary.Budgets)
}
