package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TimeRangeMode selects the window dashboard figures are computed over.
type TimeRangeMode string

const (
	TimeRangeTotal TimeRangeMode = "total"
	TimeRangeMonth TimeRangeMode = "month"
	TimeRangeDay   TimeRangeMode = "day"
)

// ParseTimeRangeMode parses a mode name; the empty string means total.
func ParseTimeRangeMode(s string) (TimeRangeMode, error) {
	switch TimeRangeMode(s) {
	case "", TimeRangeTotal:
		return TimeRangeTotal, nil
	case TimeRangeMonth:
		return TimeRangeMonth, nil
	case TimeRangeDay:
		return TimeRangeDay, nil
	}
	return "", fmt.Errorf("%w: unknown time range mode %q", ErrInvalidInput, s)
}

// IncomeExpenseStats holds income and expense totals for a window.
type IncomeExpenseStats struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// AccountFigure is an account's figure for a dashboard window: its live
// balance in total mode, its net change in month and day mode.
type AccountFigure struct {
	AccountID int32           `json:"accountId"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
}

// BudgetView is a budget together with the figures derived from the
// transactions currently held in memory.
type BudgetView struct {
	Budget       Budget          `json:"budget"`
	DailySpent   decimal.Decimal `json:"dailySpent"`
	DailyLimit   decimal.Decimal `json:"dailyLimit"`
	Remaining    decimal.Decimal `json:"remaining"`
	Status       BudgetStatus    `json:"status"`
	AccountNames string          `json:"accountNames"`
}

// DashboardSummary contains the dashboard figures for one time range mode
type DashboardSummary struct {
	Mode            TimeRangeMode              `json:"mode"`
	TotalByCurrency map[string]decimal.Decimal `json:"totalByCurrency"`
	Stats           IncomeExpenseStats         `json:"stats"`
	Accounts        []AccountFigure            `json:"accounts"`
	Budgets         []BudgetView               `json:"budgets"`
}
