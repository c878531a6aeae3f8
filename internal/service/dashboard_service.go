package service

import (
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/aggregate"
	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
)

// DashboardService assembles the dashboard from a session's stores
type DashboardService struct {
	budgets *BudgetService
	now     func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(budgets *BudgetService, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{budgets: budgets, now: now}
}

// GetSummary computes every dashboard figure for mode from the session's
// current snapshots. It never calls the backend.
func (s *DashboardService) GetSummary(sess *session.Session, mode domain.TimeRangeMode) *domain.DashboardSummary {
	accounts := sess.Accounts.Accounts()
	transactions := sess.Transactions.Transactions()
	now := s.now()

	figures := make([]domain.AccountFigure, 0, len(accounts))
	for _, account := range accounts {
		figures = append(figures, domain.AccountFigure{
			AccountID: account.ID,
			Name:      account.Name,
			Currency:  account.Currency,
			Amount:    aggregate.AccountBalance(account.ID, accounts, transactions, mode, now),
		})
	}

	return &domain.DashboardSummary{
		Mode:            mode,
		TotalByCurrency: aggregate.TotalByCurrencyForTimeRange(accounts, transactions, mode, now),
		Stats:           aggregate.IncomeExpenseStats(transactions, mode, now),
		Accounts:        figures,
		Budgets:         s.budgets.Views(sess),
	}
}
