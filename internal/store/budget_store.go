package store

import (
	"context"
	"strings"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

const BudgetStoreName = "budgets"

const (
	allAccountsLabel    = "All accounts"
	unknownAccountLabel = "Unknown account"
)

// BudgetStore holds the session's budgets. Spent and the day counters come
// from the backend and are never written back.
type BudgetStore struct {
	api  domain.BudgetAPI
	coll *collection[domain.Budget]
}

func NewBudgetStore(api domain.BudgetAPI, onRefresh RefreshFunc) *BudgetStore {
	return &BudgetStore{
		api:  api,
		coll: newCollection[domain.Budget](BudgetStoreName, domain.Budget.Clone, onRefresh),
	}
}

func (s *BudgetStore) Budgets() []domain.Budget {
	return s.coll.snapshot()
}

func (s *BudgetStore) Status() Status {
	return s.coll.status()
}

func (s *BudgetStore) Fetch(ctx context.Context) {
	s.coll.fetch(ctx, s.api.ListBudgets, "Failed to load budgets")
}

func (s *BudgetStore) Create(ctx context.Context, input *domain.BudgetCreate) error {
	return s.coll.write(ctx, "create", "Failed to create budget", func(ctx context.Context) error {
		if err := input.Validate(); err != nil {
			return err
		}
		_, err := s.api.CreateBudget(ctx, input)
		return err
	}, s.Fetch)
}

func (s *BudgetStore) Update(ctx context.Context, id int32, input *domain.BudgetUpdate) error {
	return s.coll.write(ctx, "update", "Failed to update budget", func(ctx context.Context) error {
		_, err := s.api.UpdateBudget(ctx, id, input)
		return err
	}, s.Fetch)
}

func (s *BudgetStore) Delete(ctx context.Context, id int32) error {
	return s.coll.write(ctx, "delete", "Failed to delete budget", func(ctx context.Context) error {
		return s.api.DeleteBudget(ctx, id)
	}, s.Fetch)
}

// AccountNames renders a budget's account binding for display.
func AccountNames(accountIDs []int32, accounts *AccountStore) string {
	if len(accountIDs) == 0 {
		return allAccountsLabel
	}
	names := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := accounts.ByID(id); ok {
			names = append(names, account.Name)
		} else {
			names = append(names, unknownAccountLabel)
		}
	}
	return strings.Join(names, ", ")
}
