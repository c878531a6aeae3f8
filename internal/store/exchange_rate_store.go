package store

import (
	"context"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

const ExchangeRateStoreName = "exchange_rates"

// ExchangeRateStore holds the latest bank quotes. It is read-only.
type ExchangeRateStore struct {
	api  domain.ExchangeRateAPI
	coll *collection[domain.ExchangeRate]
}

func NewExchangeRateStore(api domain.ExchangeRateAPI, onRefresh RefreshFunc) *ExchangeRateStore {
	return &ExchangeRateStore{
		api:  api,
		coll: newCollection[domain.ExchangeRate](ExchangeRateStoreName, domain.ExchangeRate.Clone, onRefresh),
	}
}

func (s *ExchangeRateStore) Rates() []domain.ExchangeRate {
	return s.coll.snapshot()
}

func (s *ExchangeRateStore) Status() Status {
	return s.coll.status()
}

func (s *ExchangeRateStore) Fetch(ctx context.Context) {
	s.coll.fetch(ctx, s.api.ListExchangeRates, "Failed to load exchange rates")
}
