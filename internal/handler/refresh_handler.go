package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RefreshHandler reloads every store of the caller's session
type RefreshHandler struct{}

// NewRefreshHandler creates a new RefreshHandler
func NewRefreshHandler() *RefreshHandler {
	return &RefreshHandler{}
}

// StoreStatusResponse reports each store's bookkeeping after a reload
type StoreStatusResponse struct {
	Accounts      storeStatus `json:"accounts"`
	Transactions  storeStatus `json:"transactions"`
	Budgets       storeStatus `json:"budgets"`
	Categories    storeStatus `json:"categories"`
	ExchangeRates storeStatus `json:"exchangeRates"`
}

// Refresh godoc
// @Summary Reload session stores
// @Description Reload every store of the caller's session from the backend
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StoreStatusResponse
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /refresh [post]
func (h *RefreshHandler) Refresh(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	if err := sess.Load(c.Request().Context()); err != nil {
		return NewDomainError(c, err, "Refresh interrupted")
	}

	return c.JSON(http.StatusOK, StoreStatusResponse{
		Accounts:      sess.Accounts.Status(),
		Transactions:  sess.Transactions.Status(),
		Budgets:       sess.Budgets.Status(),
		Categories:    sess.Categories.Status(),
		ExchangeRates: sess.ExchangeRates.Status(),
	})
}
