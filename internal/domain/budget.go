package domain

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
)

type DailyLimitMode string

const (
	DailyLimitModeAuto   DailyLimitMode = "auto"
	DailyLimitModeManual DailyLimitMode = "manual"
)

type RangeMode string

const (
	RangeModeCustom    RangeMode = "custom"
	RangeModeRecurring RangeMode = "recurring"
)

type BudgetPeriod string

const (
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

var budgetPeriodLabels = map[BudgetPeriod]string{
	BudgetPeriodMonthly:   "Monthly",
	BudgetPeriodQuarterly: "Quarterly",
	BudgetPeriodYearly:    "Yearly",
}

// Label returns the display name for the period, or the raw value when unknown.
func (p BudgetPeriod) Label() string {
	if label, ok := budgetPeriodLabels[p]; ok {
		return label
	}
	return string(p)
}

func (p BudgetPeriod) IsValid() bool {
	_, ok := budgetPeriodLabels[p]
	return ok
}

// Budget mirrors the backend's budget resource. Spent, IsLatestPeriod and the
// day counters are computed by the backend; the client never writes them.
// Empty CategoryNames or AccountIDs mean the budget applies to all of them.
type Budget struct {
	ID               int32            `json:"id"`
	Name             string           `json:"name"`
	CategoryNames    []string         `json:"category_names"`
	Amount           decimal.Decimal  `json:"amount"`
	DailyLimit       *decimal.Decimal `json:"daily_limit,omitempty"`
	DailyLimitMode   DailyLimitMode   `json:"daily_limit_mode"`
	Spent            decimal.Decimal  `json:"spent"`
	RangeMode        RangeMode        `json:"range_mode"`
	Period           *BudgetPeriod    `json:"period,omitempty"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	AccountIDs       []int32          `json:"account_ids"`
	UserID           int32            `json:"user_id"`
	ParentBudgetID   *int32           `json:"parent_budget_id,omitempty"`
	IsLatestPeriod   bool             `json:"is_latest_period"`
	OverBudgetDays   int32            `json:"over_budget_days"`
	WithinBudgetDays int32            `json:"within_budget_days"`
	LastStatsUpdate  *string          `json:"last_stats_update"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        *string          `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with b.
func (b Budget) Clone() Budget {
	b.CategoryNames = slices.Clone(b.CategoryNames)
	b.AccountIDs = slices.Clone(b.AccountIDs)
	b.DailyLimit = clonePtr(b.DailyLimit)
	b.Period = clonePtr(b.Period)
	b.ParentBudgetID = clonePtr(b.ParentBudgetID)
	b.LastStatsUpdate = clonePtr(b.LastStatsUpdate)
	b.UpdatedAt = clonePtr(b.UpdatedAt)
	return b
}

type BudgetCreate struct {
	Name           string           `json:"name"`
	CategoryNames  []string         `json:"category_names"`
	Amount         decimal.Decimal  `json:"amount"`
	DailyLimit     *decimal.Decimal `json:"daily_limit,omitempty"`
	DailyLimitMode DailyLimitMode   `json:"daily_limit_mode"`
	RangeMode      RangeMode        `json:"range_mode"`
	Period         *BudgetPeriod    `json:"period,omitempty"`
	StartDate      *string          `json:"start_date,omitempty"`
	EndDate        *string          `json:"end_date,omitempty"`
	AccountIDs     []int32          `json:"account_ids"`
}

// Validate checks the create payload. Recurring budgets need a period and
// leave the dates to the backend; custom budgets need both dates.
func (b *BudgetCreate) Validate() error {
	if b.Name == "" {
		return ErrNameRequired
	}
	if b.Amount.IsNegative() {
		return ErrInvalidInput
	}
	switch b.DailyLimitMode {
	case DailyLimitModeAuto:
	case DailyLimitModeManual:
		if b.DailyLimit == nil || b.DailyLimit.IsNegative() {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	switch b.RangeMode {
	case RangeModeRecurring:
		if b.Period == nil || !b.Period.IsValid() {
			return ErrInvalidInput
		}
	case RangeModeCustom:
		if b.StartDate == nil || b.EndDate == nil || *b.StartDate > *b.EndDate {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	return nil
}

type BudgetUpdate struct {
	Name           *string          `json:"name,omitempty"`
	CategoryNames  []string         `json:"category_names,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	DailyLimit     *decimal.Decimal `json:"daily_limit,omitempty"`
	DailyLimitMode *DailyLimitMode  `json:"daily_limit_mode,omitempty"`
	RangeMode      *RangeMode       `json:"range_mode,omitempty"`
	Period         *BudgetPeriod    `json:"period,omitempty"`
	StartDate      *string          `json:"start_date,omitempty"`
	EndDate        *string          `json:"end_date,omitempty"`
	AccountIDs     []int32          `json:"account_ids,omitempty"`
}

// BudgetStatus classifies how much of a budget has been used.
type BudgetStatus string

const (
	BudgetStatusOverBudget BudgetStatus = "over-budget"
	BudgetStatusWarning    BudgetStatus = "warning"
	BudgetStatusNormal     BudgetStatus = "normal"
	BudgetStatusGood       BudgetStatus = "good"
)

type budgetStatusStyle struct {
	label string
	color string
}

// budgetStatusStyles holds the presentation attributes of each status
var budgetStatusStyles = map[BudgetStatus]budgetStatusStyle{
	BudgetStatusOverBudget: {label: "Over budget", color: "#f44336"},
	BudgetStatusWarning:    {label: "Warning", color: "#FF9800"},
	BudgetStatusNormal:     {label: "Normal", color: "#2196F3"},
	BudgetStatusGood:       {label: "Good", color: "#4CAF50"},
}

// Color returns the status's fixed presentation colour (red, orange, blue, green).
func (s BudgetStatus) Color() string {
	return budgetStatusStyles[s].color
}

func (s BudgetStatus) Label() string {
	return budgetStatusStyles[s].label
}

type BudgetAPI interface {
	ListBudgets(ctx context.Context) ([]Budget, error)
	CreateBudget(ctx context.Context, input *BudgetCreate) (*Budget, error)
	UpdateBudget(ctx context.Context, id int32, input *BudgetUpdate) (*Budget, error)
	DeleteBudget(ctx context.Context, id int32) error
}
