package service

import (
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/aggregate"
	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/store"
	"github.com/dafibh/fortuna/ledger-gateway/internal/util"
	"github.com/shopspring/decimal"
)

// BudgetService derives the per-budget figures shown next to each budget
type BudgetService struct {
	now func() time.Time
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(now func() time.Time) *BudgetService {
	if now == nil {
		now = time.Now
	}
	return &BudgetService{now: now}
}

// Views pairs every budget in the session with its daily spend, daily limit,
// remaining amount and status.
func (s *BudgetService) Views(sess *session.Session) []domain.BudgetView {
	budgets := sess.Budgets.Budgets()
	transactions := sess.Transactions.Transactions()
	now := s.now()

	views := make([]domain.BudgetView, 0, len(budgets))
	for _, budget := range budgets {
		views = append(views, domain.BudgetView{
			Budget:       budget,
			DailySpent:   aggregate.DailySpent(budget, transactions, now),
			DailyLimit:   aggregate.DailyLimit(budget),
			Remaining:    aggregate.Remaining(budget),
			Status:       aggregate.Status(budget),
			AccountNames: store.AccountNames(budget.AccountIDs, sess.Accounts),
		})
	}
	return views
}

// DefaultCreate returns the pre-filled create form for a range mode.
// Custom budgets run from today 00:00 to the same day next month 23:59;
// recurring budgets default to monthly.
func (s *BudgetService) DefaultCreate(rangeMode domain.RangeMode) (*domain.BudgetCreate, error) {
	input := &domain.BudgetCreate{
		CategoryNames:  []string{},
		Amount:         decimal.Zero,
		DailyLimitMode: domain.DailyLimitModeAuto,
		RangeMode:      rangeMode,
		AccountIDs:     []int32{},
	}

	switch rangeMode {
	case domain.RangeModeCustom:
		start, end := util.DefaultCustomRange(s.now())
		input.StartDate = &start
		input.EndDate = &end
	case domain.RangeModeRecurring:
		period := domain.BudgetPeriodMonthly
		input.Period = &period
	default:
		return nil, domain.ErrInvalidInput
	}
	return input, nil
}

// CurrentCycle returns the start and end of the period a recurring budget
// is in now. ok is false for custom budgets.
func (s *BudgetService) CurrentCycle(budget domain.Budget) (start, end time.Time, ok bool) {
	if budget.RangeMode != domain.RangeModeRecurring || budget.Period == nil {
		return time.Time{}, time.Time{}, false
	}
	start, end, err := util.PeriodRange(*budget.Period, s.now())
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
