// Package session owns the per-login state: one upstream client bound to the
// backend credential and the five entity stores loaded through it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/store"
	"github.com/dafibh/fortuna/ledger-gateway/internal/upstream"
	"golang.org/x/sync/errgroup"
)

// Session is one authenticated user's view of the backend.
type Session struct {
	ID        string
	Subject   string
	ExpiresAt time.Time

	Accounts      *store.AccountStore
	Transactions  *store.TransactionStore
	Budgets       *store.BudgetStore
	Categories    *store.CategoryStore
	ExchangeRates *store.ExchangeRateStore

	token    string
	client   *upstream.Client
	mu       sync.Mutex
	lastSeen time.Time
}

func newSession(id, subject string, expiresAt time.Time, client *upstream.Client, onRefresh store.RefreshFunc, now time.Time) *Session {
	return &Session{
		ID:            id,
		Subject:       subject,
		ExpiresAt:     expiresAt,
		Accounts:      store.NewAccountStore(client, onRefresh),
		Transactions:  store.NewTransactionStore(client, onRefresh),
		Budgets:       store.NewBudgetStore(client, onRefresh),
		Categories:    store.NewCategoryStore(client, onRefresh),
		ExchangeRates: store.NewExchangeRateStore(client, onRefresh),
		token:         client.Token(),
		client:        client,
		lastSeen:      now,
	}
}

// Token returns the backend credential the session was created from
func (s *Session) Token() string {
	return s.token
}

// Load fetches every store concurrently. Fetch failures are recorded on the
// individual stores; Load itself only fails when ctx is cancelled.
func (s *Session) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range []func(context.Context){
		s.Accounts.Fetch,
		s.Transactions.Fetch,
		s.Budgets.Fetch,
		s.Categories.Fetch,
		s.ExchangeRates.Fetch,
	} {
		g.Go(func() error {
			fetch(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Expired reports whether the credential's expiry has passed
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns when the session was last used
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
