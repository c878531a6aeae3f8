package handler

import (
	"net/http"
	"sort"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// CurrencyTotalResponse is the sum of one currency's account figures
type CurrencyTotalResponse struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// StatsResponse holds the income and expense totals of a window
type StatsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// AccountFigureResponse is an account's figure for the selected window
type AccountFigureResponse struct {
	AccountID int32  `json:"accountId"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	Amount    string `json:"amount"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	Mode            string                  `json:"mode"`
	TotalByCurrency []CurrencyTotalResponse `json:"totalByCurrency"`
	Stats           StatsResponse           `json:"stats"`
	Accounts        []AccountFigureResponse `json:"accounts"`
	Budgets         []BudgetViewResponse    `json:"budgets"`
	Errors          []string                `json:"errors,omitempty"`
}

// GetSummary godoc
// @Summary Get dashboard summary
// @Description Get balances per currency, income and expense stats and budget views for the selected window
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param mode query string false "total (default), month or day"
// @Success 200 {object} DashboardSummaryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	mode, err := domain.ParseTimeRangeMode(c.QueryParam("mode"))
	if err != nil {
		return NewValidationError(c, "Invalid mode", []ValidationError{
			{Field: "mode", Message: "Must be one of: total, month, day"},
		})
	}

	summary := h.dashboardService.GetSummary(sess, mode)

	resp := DashboardSummaryResponse{
		Mode:            string(summary.Mode),
		TotalByCurrency: currencyTotals(summary.TotalByCurrency),
		Stats: StatsResponse{
			Income:  summary.Stats.Income.StringFixed(2),
			Expense: summary.Stats.Expense.StringFixed(2),
			Net:     summary.Stats.Net.StringFixed(2),
		},
		Accounts: make([]AccountFigureResponse, 0, len(summary.Accounts)),
		Budgets:  make([]BudgetViewResponse, 0, len(summary.Budgets)),
	}
	for _, figure := range summary.Accounts {
		resp.Accounts = append(resp.Accounts, AccountFigureResponse{
			AccountID: figure.AccountID,
			Name:      figure.Name,
			Currency:  figure.Currency,
			Amount:    figure.Amount.StringFixed(2),
		})
	}
	for _, view := range summary.Budgets {
		resp.Budgets = append(resp.Budgets, toBudgetViewResponse(view))
	}
	for _, status := range []storeStatus{sess.Accounts.Status(), sess.Transactions.Status(), sess.Budgets.Status()} {
		if status.Error != "" {
			resp.Errors = append(resp.Errors, status.Error)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// currencyTotals flattens the per-currency map in currency order
func currencyTotals(totals map[string]decimal.Decimal) []CurrencyTotalResponse {
	out := make([]CurrencyTotalResponse, 0, len(totals))
	for currency, total := range totals {
		out = append(out, CurrencyTotalResponse{Currency: currency, Total: total.StringFixed(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}
