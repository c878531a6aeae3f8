package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	now func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(now func() time.Time) *TransactionHandler {
	if now == nil {
		now = time.Now
	}
	return &TransactionHandler{now: now}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	AccountID         int32   `json:"accountId"`
	Description       string  `json:"description"`
	Amount            string  `json:"amount"`
	Type              string  `json:"type"`
	Category          *string `json:"category,omitempty"`
	Date              *string `json:"date,omitempty"`
	Note              *string `json:"note,omitempty"`
	ForeignAmount     string  `json:"foreignAmount,omitempty"`
	ForeignCurrency   *string `json:"foreignCurrency,omitempty"`
	ExcludeFromBudget bool    `json:"excludeFromBudget,omitempty"`
}

// UpdateTransactionRequest represents the update transaction request body
type UpdateTransactionRequest struct {
	Description     *string `json:"description,omitempty"`
	Amount          *string `json:"amount,omitempty"`
	Type            *string `json:"type,omitempty"`
	Category        *string `json:"category,omitempty"`
	Date            *string `json:"date,omitempty"`
	Note            *string `json:"note,omitempty"`
	ForeignCurrency *string `json:"foreignCurrency,omitempty"`
}

// CreateTransferRequest represents the create transfer request body
type CreateTransferRequest struct {
	FromAccountID int32   `json:"fromAccountId"`
	ToAccountID   int32   `json:"toAccountId"`
	Amount        string  `json:"amount"`
	Date          *string `json:"date,omitempty"`
	Description   string  `json:"description"`
	Note          *string `json:"note,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                int32   `json:"id"`
	AccountID         int32   `json:"accountId"`
	Description       string  `json:"description"`
	Amount            string  `json:"amount"`
	Type              string  `json:"type"`
	Category          *string `json:"category"`
	TransactionDate   string  `json:"transactionDate"`
	Note              *string `json:"note,omitempty"`
	ForeignAmount     *string `json:"foreignAmount,omitempty"`
	ForeignCurrency   *string `json:"foreignCurrency,omitempty"`
	IsInstallment     bool    `json:"isInstallment"`
	InstallmentNumber *int32  `json:"installmentNumber,omitempty"`
	TotalInstallments *int32  `json:"totalInstallments,omitempty"`
	ExcludeFromBudget bool    `json:"excludeFromBudget"`
	IsFromRecurring   bool    `json:"isFromRecurring"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         *string `json:"updatedAt"`
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Create an income or expense transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} ListResponse[TransactionResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	input := &domain.TransactionCreate{
		Description:       req.Description,
		Amount:            amount,
		TransactionType:   domain.TransactionType(req.Type),
		Category:          req.Category,
		TransactionDate:   h.dateOrNow(req.Date),
		AccountID:         req.AccountID,
		Note:              req.Note,
		ForeignCurrency:   req.ForeignCurrency,
		ExcludeFromBudget: req.ExcludeFromBudget,
	}
	if req.ForeignAmount != "" {
		foreign, err := decimal.NewFromString(req.ForeignAmount)
		if err != nil {
			return NewValidationError(c, "Invalid foreign amount", []ValidationError{
				{Field: "foreignAmount", Message: "Must be a valid decimal number"},
			})
		}
		input.ForeignAmount = &foreign
	}

	if err := sess.Transactions.Create(c.Request().Context(), input); err != nil {
		return NewDomainError(c, err, "Failed to create transaction")
	}
	// Account balances move with every transaction write.
	sess.Accounts.Fetch(c.Request().Context())

	log.Info().Str("session_id", sess.ID).Int32("account_id", input.AccountID).Str("amount", amount.String()).Msg("Transaction created")

	return c.JSON(http.StatusCreated, h.list(sess.Transactions.Transactions(), sess.Transactions.Status()))
}

// GetTransactions godoc
// @Summary List transactions
// @Description List the session's transactions, optionally filtered by account and month
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param accountId query int false "Account ID"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} ListResponse[TransactionResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var accountID int32
	if raw := c.QueryParam("accountId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return NewValidationError(c, "Invalid account ID", nil)
		}
		accountID = int32(id)
	}
	month := c.QueryParam("month")
	if month != "" {
		if _, err := time.Parse(util.MonthLayout, month); err != nil {
			return NewValidationError(c, "Invalid month", []ValidationError{
				{Field: "month", Message: "Must be in YYYY-MM format"},
			})
		}
	}

	all := sess.Transactions.Transactions()
	filtered := all[:0]
	for _, tx := range all {
		if accountID != 0 && tx.AccountID != accountID {
			continue
		}
		if month != "" && (len(tx.TransactionDate) < len(month) || tx.TransactionDate[:len(month)] != month) {
			continue
		}
		filtered = append(filtered, tx)
	}

	return c.JSON(http.StatusOK, h.list(filtered, sess.Transactions.Status()))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Update the given fields of a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Transaction update request"
// @Success 200 {object} ListResponse[TransactionResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := &domain.TransactionUpdate{
		Description:     req.Description,
		Category:        req.Category,
		TransactionDate: req.Date,
		Note:            req.Note,
		ForeignCurrency: req.ForeignCurrency,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Invalid amount", []ValidationError{
				{Field: "amount", Message: "Must be a valid decimal number"},
			})
		}
		input.Amount = &amount
	}
	if req.Type != nil {
		txType := domain.TransactionType(*req.Type)
		if !txType.IsValid() {
			return NewValidationError(c, "Invalid transaction type", []ValidationError{
				{Field: "type", Message: "Must be one of: credit, debit, installment"},
			})
		}
		input.TransactionType = &txType
	}

	if err := sess.Transactions.Update(c.Request().Context(), int32(id), input); err != nil {
		return NewDomainError(c, err, "Failed to update transaction")
	}
	sess.Accounts.Fetch(c.Request().Context())

	return c.JSON(http.StatusOK, h.list(sess.Transactions.Transactions(), sess.Transactions.Status()))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Delete a transaction on the backend
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := sess.Transactions.Delete(c.Request().Context(), int32(id)); err != nil {
		return NewDomainError(c, err, "Failed to delete transaction")
	}
	sess.Accounts.Fetch(c.Request().Context())

	log.Info().Str("session_id", sess.ID).Int("transaction_id", id).Msg("Transaction deleted")

	return c.NoContent(http.StatusNoContent)
}

// CreateTransfer godoc
// @Summary Create a transfer
// @Description Move an amount between two accounts as a linked expense and income pair
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransferRequest true "Transfer request"
// @Success 201 {object} ListResponse[TransactionResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /transactions/transfers [post]
func (h *TransactionHandler) CreateTransfer(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}
	if req.FromAccountID == req.ToAccountID {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "toAccountId", Message: "Cannot transfer to the same account"},
		})
	}
	if !amount.IsPositive() {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	}

	input := &domain.TransferCreate{
		FromAccountID:   req.FromAccountID,
		ToAccountID:     req.ToAccountID,
		Amount:          amount,
		TransactionDate: h.dateOrNow(req.Date),
		Description:     req.Description,
		Note:            req.Note,
	}
	if err := sess.Transactions.Transfer(c.Request().Context(), input); err != nil {
		return NewDomainError(c, err, "Transfer failed")
	}
	sess.Accounts.Fetch(c.Request().Context())

	log.Info().Str("session_id", sess.ID).Int32("from_account_id", req.FromAccountID).Int32("to_account_id", req.ToAccountID).Msg("Transfer created")

	return c.JSON(http.StatusCreated, h.list(sess.Transactions.Transactions(), sess.Transactions.Status()))
}

func (h *TransactionHandler) dateOrNow(date *string) string {
	if date != nil && *date != "" {
		return *date
	}
	return h.now().Format(util.DateTimeLayout)
}

func (h *TransactionHandler) list(transactions []domain.Transaction, status storeStatus) ListResponse[TransactionResponse] {
	return newListResponse(transactions, status, toTransactionResponse)
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                tx.ID,
		AccountID:         tx.AccountID,
		Description:       tx.Description,
		Amount:            tx.Amount.StringFixed(2),
		Type:              string(tx.TransactionType),
		Category:          tx.Category,
		TransactionDate:   tx.TransactionDate,
		Note:              tx.Note,
		ForeignCurrency:   tx.ForeignCurrency,
		IsInstallment:     tx.IsInstallment,
		InstallmentNumber: tx.InstallmentNumber,
		TotalInstallments: tx.TotalInstallments,
		ExcludeFromBudget: tx.ExcludeFromBudget,
		IsFromRecurring:   tx.IsFromRecurring,
		CreatedAt:         tx.CreatedAt,
		UpdatedAt:         tx.UpdatedAt,
	}
	if tx.ForeignAmount != nil {
		foreign := tx.ForeignAmount.StringFixed(2)
		resp.ForeignAmount = &foreign
	}
	return resp
}
