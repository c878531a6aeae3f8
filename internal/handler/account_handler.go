package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct{}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// CreateAccountRequest represents the create account request body
type CreateAccountRequest struct {
	Name           string  `json:"name"`
	AccountType    string  `json:"accountType"`
	Currency       string  `json:"currency,omitempty"`
	Description    *string `json:"description,omitempty"`
	InitialBalance string  `json:"initialBalance,omitempty"`
}

// UpdateAccountRequest represents the update account request body
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID               int32   `json:"id"`
	Name             string  `json:"name"`
	AccountType      string  `json:"accountType"`
	AccountTypeLabel string  `json:"accountTypeLabel"`
	Balance          string  `json:"balance"`
	Currency         string  `json:"currency"`
	Description      *string `json:"description"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        *string `json:"updatedAt"`
}

// CreateAccount godoc
// @Summary Create an account
// @Description Create an account and return the refreshed account list
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAccountRequest true "Account creation request"
// @Success 201 {object} ListResponse[AccountResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := &domain.AccountCreate{
		Name:        req.Name,
		AccountType: domain.AccountType(req.AccountType),
		Currency:    req.Currency,
		Description: req.Description,
	}
	if req.InitialBalance != "" {
		balance, err := decimal.NewFromString(req.InitialBalance)
		if err != nil {
			return NewValidationError(c, "Invalid initial balance", []ValidationError{
				{Field: "initialBalance", Message: "Must be a valid decimal number"},
			})
		}
		input.InitialBalance = &balance
	}
	if err := sess.Accounts.Create(c.Request().Context(), input); err != nil {
		return NewDomainError(c, err, "Failed to create account")
	}

	log.Info().Str("session_id", sess.ID).Str("name", input.Name).Msg("Account created")

	return c.JSON(http.StatusCreated, h.list(sess.Accounts.Accounts(), sess.Accounts.Status()))
}

// GetAccounts godoc
// @Summary List accounts
// @Description List the session's accounts with the store status
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse[AccountResponse]
// @Failure 401 {object} ProblemDetails
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}
	return c.JSON(http.StatusOK, h.list(sess.Accounts.Accounts(), sess.Accounts.Status()))
}

// GetAccount godoc
// @Summary Get an account
// @Description Get one account by id
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	account, ok := sess.Accounts.ByID(int32(id))
	if !ok {
		return NewNotFoundError(c, "Account not found")
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// UpdateAccount godoc
// @Summary Update an account
// @Description Rename an account or change its description
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param request body UpdateAccountRequest true "Account update request"
// @Success 200 {object} ListResponse[AccountResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Name != nil && *req.Name == "" {
		return NewDomainError(c, domain.ErrNameRequired, "")
	}

	input := &domain.AccountUpdate{Name: req.Name, Description: req.Description}
	if err := sess.Accounts.Update(c.Request().Context(), int32(id), input); err != nil {
		return NewDomainError(c, err, "Failed to update account")
	}

	return c.JSON(http.StatusOK, h.list(sess.Accounts.Accounts(), sess.Accounts.Status()))
}

// DeleteAccount godoc
// @Summary Delete an account
// @Description Delete an account on the backend
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	if err := sess.Accounts.Delete(c.Request().Context(), int32(id)); err != nil {
		return NewDomainError(c, err, "Failed to delete account")
	}

	log.Info().Str("session_id", sess.ID).Int("account_id", id).Msg("Account deleted")

	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) list(accounts []domain.Account, status storeStatus) ListResponse[AccountResponse] {
	return newListResponse(accounts, status, toAccountResponse)
}

func toAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:               account.ID,
		Name:             account.Name,
		AccountType:      string(account.AccountType),
		AccountTypeLabel: account.AccountType.Label(),
		Balance:          account.Balance.StringFixed(2),
		Currency:         account.Currency,
		Description:      account.Description,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
}
