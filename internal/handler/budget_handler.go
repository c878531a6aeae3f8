package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/dafibh/fortuna/ledger-gateway/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the create and update budget request body.
// Omitted fields are left unchanged on update.
type BudgetRequest struct {
	Name           *string  `json:"name,omitempty"`
	CategoryNames  []string `json:"categoryNames,omitempty"`
	Amount         *string  `json:"amount,omitempty"`
	DailyLimit     *string  `json:"dailyLimit,omitempty"`
	DailyLimitMode *string  `json:"dailyLimitMode,omitempty"`
	RangeMode      *string  `json:"rangeMode,omitempty"`
	Period         *string  `json:"period,omitempty"`
	StartDate      *string  `json:"startDate,omitempty"`
	EndDate        *string  `json:"endDate,omitempty"`
	AccountIDs     []int32  `json:"accountIds,omitempty"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID               int32    `json:"id"`
	Name             string   `json:"name"`
	CategoryNames    []string `json:"categoryNames"`
	Amount           string   `json:"amount"`
	DailyLimit       *string  `json:"dailyLimit"`
	DailyLimitMode   string   `json:"dailyLimitMode"`
	Spent            string   `json:"spent"`
	RangeMode        string   `json:"rangeMode"`
	Period           *string  `json:"period"`
	PeriodLabel      *string  `json:"periodLabel"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	AccountIDs       []int32  `json:"accountIds"`
	IsLatestPeriod   bool     `json:"isLatestPeriod"`
	OverBudgetDays   int32    `json:"overBudgetDays"`
	WithinBudgetDays int32    `json:"withinBudgetDays"`
}

// BudgetViewResponse is a budget with the figures derived from the session's transactions
type BudgetViewResponse struct {
	Budget       BudgetResponse `json:"budget"`
	DailySpent   string         `json:"dailySpent"`
	DailyLimit   string         `json:"dailyLimit"`
	Remaining    string         `json:"remaining"`
	Status       string         `json:"status"`
	StatusLabel  string         `json:"statusLabel"`
	StatusColor  string         `json:"statusColor"`
	AccountNames string         `json:"accountNames"`
}

// GetBudgets godoc
// @Summary List budgets
// @Description List the session's budgets
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse[BudgetResponse]
// @Failure 401 {object} ProblemDetails
// @Router /budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}
	return c.JSON(http.StatusOK, listBudgets(sess.Budgets))
}

// GetBudgetViews godoc
// @Summary List budget views
// @Description List budgets with today's spend, remaining amount and status
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse[BudgetViewResponse]
// @Failure 401 {object} ProblemDetails
// @Router /budgets/views [get]
func (h *BudgetHandler) GetBudgetViews(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(h.budgetService.Views(sess), sess.Budgets.Status(), toBudgetViewResponse))
}

// GetDefaults godoc
// @Summary Get budget defaults
// @Description Get a prefilled budget for the create form
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param rangeMode query string false "custom or recurring"
// @Success 200 {object} domain.BudgetCreate
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /budgets/defaults [get]
func (h *BudgetHandler) GetDefaults(c echo.Context) error {
	rangeMode := domain.RangeMode(c.QueryParam("rangeMode"))
	if rangeMode == "" {
		rangeMode = domain.RangeModeRecurring
	}

	input, err := h.budgetService.DefaultCreate(rangeMode)
	if err != nil {
		return NewValidationError(c, "Invalid range mode", []ValidationError{
			{Field: "rangeMode", Message: "Must be one of: custom, recurring"},
		})
	}
	return c.JSON(http.StatusOK, input)
}

// CreateBudget godoc
// @Summary Create a budget
// @Description Create a budget and return the refreshed budget list
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BudgetRequest true "Budget creation request"
// @Success 201 {object} ListResponse[BudgetResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, fieldErrs := req.toCreate()
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrs)
	}

	if err := sess.Budgets.Create(c.Request().Context(), input); err != nil {
		return NewDomainError(c, err, "Failed to create budget")
	}

	log.Info().Str("session_id", sess.ID).Str("name", input.Name).Str("range_mode", string(input.RangeMode)).Msg("Budget created")

	return c.JSON(http.StatusCreated, listBudgets(sess.Budgets))
}

// UpdateBudget godoc
// @Summary Update a budget
// @Description Update the given fields of a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Param request body BudgetRequest true "Budget update request"
// @Success 200 {object} ListResponse[BudgetResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, fieldErrs := req.toUpdate()
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrs)
	}

	if err := sess.Budgets.Update(c.Request().Context(), int32(id), input); err != nil {
		return NewDomainError(c, err, "Failed to update budget")
	}

	return c.JSON(http.StatusOK, listBudgets(sess.Budgets))
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Description Delete a budget on the backend
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := sess.Budgets.Delete(c.Request().Context(), int32(id)); err != nil {
		return NewDomainError(c, err, "Failed to delete budget")
	}

	log.Info().Str("session_id", sess.ID).Int("budget_id", id).Msg("Budget deleted")

	return c.NoContent(http.StatusNoContent)
}

func (r *BudgetRequest) toCreate() (*domain.BudgetCreate, []ValidationError) {
	update, errs := r.toUpdate()
	if len(errs) > 0 {
		return nil, errs
	}

	input := &domain.BudgetCreate{
		CategoryNames:  r.CategoryNames,
		Amount:         decimal.Zero,
		DailyLimit:     update.DailyLimit,
		DailyLimitMode: domain.DailyLimitModeAuto,
		Period:         update.Period,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		AccountIDs:     r.AccountIDs,
	}
	if r.Name != nil {
		input.Name = *r.Name
	}
	if update.Amount != nil {
		input.Amount = *update.Amount
	}
	if update.DailyLimitMode != nil {
		input.DailyLimitMode = *update.DailyLimitMode
	}
	if update.RangeMode != nil {
		input.RangeMode = *update.RangeMode
	}
	if input.CategoryNames == nil {
		input.CategoryNames = []string{}
	}
	if input.AccountIDs == nil {
		input.AccountIDs = []int32{}
	}
	return input, nil
}

func (r *BudgetRequest) toUpdate() (*domain.BudgetUpdate, []ValidationError) {
	var errs []ValidationError
	input := &domain.BudgetUpdate{
		Name:          r.Name,
		CategoryNames: r.CategoryNames,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		AccountIDs:    r.AccountIDs,
	}

	if r.Amount != nil {
		amount, err := decimal.NewFromString(*r.Amount)
		if err != nil {
			errs = append(errs, ValidationError{Field: "amount", Message: "Must be a valid decimal number"})
		} else {
			input.Amount = &amount
		}
	}
	if r.DailyLimit != nil {
		limit, err := decimal.NewFromString(*r.DailyLimit)
		if err != nil {
			errs = append(errs, ValidationError{Field: "dailyLimit", Message: "Must be a valid decimal number"})
		} else {
			input.DailyLimit = &limit
		}
	}
	if r.DailyLimitMode != nil {
		mode := domain.DailyLimitMode(*r.DailyLimitMode)
		if mode != domain.DailyLimitModeAuto && mode != domain.DailyLimitModeManual {
			errs = append(errs, ValidationError{Field: "dailyLimitMode", Message: "Must be one of: auto, manual"})
		}
		input.DailyLimitMode = &mode
	}
	if r.RangeMode != nil {
		mode := domain.RangeMode(*r.RangeMode)
		if mode != domain.RangeModeCustom && mode != domain.RangeModeRecurring {
			errs = append(errs, ValidationError{Field: "rangeMode", Message: "Must be one of: custom, recurring"})
		}
		input.RangeMode = &mode
	}
	if r.Period != nil {
		period := domain.BudgetPeriod(*r.Period)
		if !period.IsValid() {
			errs = append(errs, ValidationError{Field: "period", Message: "Must be one of: monthly, quarterly, yearly"})
		}
		input.Period = &period
	}
	return input, errs
}

func listBudgets(budgets *store.BudgetStore) ListResponse[BudgetResponse] {
	return newListResponse(budgets.Budgets(), budgets.Status(), toBudgetResponse)
}

func toBudgetResponse(budget domain.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:               budget.ID,
		Name:             budget.Name,
		CategoryNames:    budget.CategoryNames,
		Amount:           budget.Amount.StringFixed(2),
		DailyLimitMode:   string(budget.DailyLimitMode),
		Spent:            budget.Spent.StringFixed(2),
		RangeMode:        string(budget.RangeMode),
		StartDate:        budget.StartDate,
		EndDate:          budget.EndDate,
		AccountIDs:       budget.AccountIDs,
		IsLatestPeriod:   budget.IsLatestPeriod,
		OverBudgetDays:   budget.OverBudgetDays,
		WithinBudgetDays: budget.WithinBudgetDays,
	}
	if budget.DailyLimit != nil {
		limit := budget.DailyLimit.StringFixed(2)
		resp.DailyLimit = &limit
	}
	if budget.Period != nil {
		period := string(*budget.Period)
		label := budget.Period.Label()
		resp.Period = &period
		resp.PeriodLabel = &label
	}
	if resp.CategoryNames == nil {
		resp.CategoryNames = []string{}
	}
	if resp.AccountIDs == nil {
		resp.AccountIDs = []int32{}
	}
	return resp
}

func toBudgetViewResponse(view domain.BudgetView) BudgetViewResponse {
	return BudgetViewResponse{
		Budget:       toBudgetResponse(view.Budget),
		DailySpent:   view.DailySpent.StringFixed(2),
		DailyLimit:   view.DailyLimit.StringFixed(2),
		Remaining:    view.Remaining.StringFixed(2),
		Status:       string(view.Status),
		StatusLabel:  view.Status.Label(),
		StatusColor:  view.Status.Color(),
		AccountNames: view.AccountNames,
	}
}
