package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a bank quote fetched from the backend. Rates are displayed,
// never used to convert amounts.
type ExchangeRate struct {
	Bank         string           `json:"bank,omitempty"`
	CurrencyCode string           `json:"currency_code"`
	CurrencyName string           `json:"currency_name"`
	BuyingRate   *decimal.Decimal `json:"buying_rate"`
	SellingRate  *decimal.Decimal `json:"selling_rate"`
	UpdatedAt    string           `json:"updated_at"`
}

func (r ExchangeRate) Clone() ExchangeRate {
	r.BuyingRate = clonePtr(r.BuyingRate)
	r.SellingRate = clonePtr(r.SellingRate)
	return r
}

type ExchangeRateAPI interface {
	ListExchangeRates(ctx context.Context) ([]ExchangeRate, error)
}
