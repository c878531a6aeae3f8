package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/labstack/echo/v4"
)

// ExchangeRateHandler serves the bank quotes loaded into the session
type ExchangeRateHandler struct{}

// NewExchangeRateHandler creates a new ExchangeRateHandler
func NewExchangeRateHandler() *ExchangeRateHandler {
	return &ExchangeRateHandler{}
}

// ExchangeRateResponse represents an exchange rate in API responses
type ExchangeRateResponse struct {
	Bank         string  `json:"bank,omitempty"`
	CurrencyCode string  `json:"currencyCode"`
	CurrencyName string  `json:"currencyName"`
	BuyingRate   *string `json:"buyingRate"`
	SellingRate  *string `json:"sellingRate"`
	UpdatedAt    string  `json:"updatedAt"`
}

// GetExchangeRates godoc
// @Summary List exchange rates
// @Description List the bank quotes loaded into the session
// @Tags exchange-rates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse[ExchangeRateResponse]
// @Failure 401 {object} ProblemDetails
// @Router /exchange-rates [get]
func (h *ExchangeRateHandler) GetExchangeRates(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(sess.ExchangeRates.Rates(), sess.ExchangeRates.Status(), toExchangeRateResponse))
}

func toExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	resp := ExchangeRateResponse{
		Bank:         rate.Bank,
		CurrencyCode: rate.CurrencyCode,
		CurrencyName: rate.CurrencyName,
		UpdatedAt:    rate.UpdatedAt,
	}
	// Quotes keep their full precision.
	if rate.BuyingRate != nil {
		buying := rate.BuyingRate.String()
		resp.BuyingRate = &buying
	}
	if rate.SellingRate != nil {
		selling := rate.SellingRate.String()
		resp.SellingRate = &selling
	}
	return resp
}
