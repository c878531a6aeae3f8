// Package aggregate derives budget and dashboard figures from the entity
// collections held by a session. Every function is pure: inputs are never
// modified and no function panics on well-typed input.
package aggregate

import (
	"slices"
	"strings"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/util"
	"github.com/shopspring/decimal"
)

// Status thresholds, in percent of the budget amount
var (
	warningThreshold = decimal.NewFromInt(80)
	normalThreshold  = decimal.NewFromInt(50)
	hundred          = decimal.NewFromInt(100)
)

// DateFilter decides whether a transaction date belongs to a window.
type DateFilter func(transactionDate string) bool

// OnDay matches dates falling on t's local calendar day.
func OnDay(t time.Time) DateFilter {
	return HasPrefix(util.DateKey(t))
}

// InMonth matches dates falling in t's local calendar month.
func InMonth(t time.Time) DateFilter {
	return HasPrefix(util.MonthKey(t))
}

// HasPrefix matches dates that start with prefix. The comparison is purely
// lexical; no timezone conversion happens.
func HasPrefix(prefix string) DateFilter {
	return func(transactionDate string) bool {
		return strings.HasPrefix(transactionDate, prefix)
	}
}

// AnyDate matches every date.
func AnyDate(string) bool { return true }

// InBudgetScope reports whether tx counts against budget: it must be a debit
// (installments are left out here), on one of the budget's accounts and in one
// of its categories (an empty binding means all), and accepted by dateFilter.
func InBudgetScope(tx domain.Transaction, budget domain.Budget, dateFilter DateFilter) bool {
	if tx.TransactionType != domain.TransactionTypeDebit {
		return false
	}
	if len(budget.AccountIDs) > 0 && !slices.Contains(budget.AccountIDs, tx.AccountID) {
		return false
	}
	if len(budget.CategoryNames) > 0 {
		if tx.Category == nil || !slices.Contains(budget.CategoryNames, *tx.Category) {
			return false
		}
	}
	return dateFilter(tx.TransactionDate)
}

// DailySpent sums the in-scope transactions dated on asOf's local day.
func DailySpent(budget domain.Budget, transactions []domain.Transaction, asOf time.Time) decimal.Decimal {
	onDay := OnDay(asOf)
	total := decimal.Zero
	for _, tx := range transactions {
		if InBudgetScope(tx, budget, onDay) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Status classifies a budget by its spent amount. The first matching rule
// wins: spent above amount, then 80% and 50% of amount. A zero amount is
// over budget as soon as anything is spent.
func Status(budget domain.Budget) domain.BudgetStatus {
	if budget.Spent.GreaterThan(budget.Amount) {
		return domain.BudgetStatusOverBudget
	}
	if !budget.Amount.IsPositive() {
		if budget.Spent.IsPositive() {
			return domain.BudgetStatusOverBudget
		}
		return domain.BudgetStatusGood
	}

	// spent/amount*100 >= threshold, compared without dividing
	pct := budget.Spent.Mul(hundred)
	switch {
	case pct.GreaterThanOrEqual(budget.Amount.Mul(warningThreshold)):
		return domain.BudgetStatusWarning
	case pct.GreaterThanOrEqual(budget.Amount.Mul(normalThreshold)):
		return domain.BudgetStatusNormal
	default:
		return domain.BudgetStatusGood
	}
}

// Remaining is the amount left in the budget; negative once overspent.
func Remaining(budget domain.Budget) decimal.Decimal {
	return budget.Amount.Sub(budget.Spent)
}

// DailyLimit returns the per-day allowance: the explicit limit in manual
// mode, otherwise the amount spread evenly over the budget's days.
func DailyLimit(budget domain.Budget) decimal.Decimal {
	if budget.DailyLimitMode == domain.DailyLimitModeManual {
		if budget.DailyLimit == nil {
			return decimal.Zero
		}
		return *budget.DailyLimit
	}
	days := util.InclusiveDays(budget.StartDate, budget.EndDate)
	if days == 0 {
		return decimal.Zero
	}
	return budget.Amount.Div(decimal.NewFromInt(int64(days))).Round(2)
}
