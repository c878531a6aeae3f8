package store

import (
	"context"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

const AccountStoreName = "accounts"

// AccountStore holds the session's accounts.
type AccountStore struct {
	api  domain.AccountAPI
	coll *collection[domain.Account]
}

// NewAccountStore creates an empty AccountStore
func NewAccountStore(api domain.AccountAPI, onRefresh RefreshFunc) *AccountStore {
	return &AccountStore{
		api:  api,
		coll: newCollection[domain.Account](AccountStoreName, domain.Account.Clone, onRefresh),
	}
}

// Accounts returns a copy of the accounts from the last successful fetch
func (s *AccountStore) Accounts() []domain.Account {
	return s.coll.snapshot()
}

func (s *AccountStore) Status() Status {
	return s.coll.status()
}

// ByID looks an account up in the current snapshot.
func (s *AccountStore) ByID(id int32) (domain.Account, bool) {
	return s.coll.find(func(a domain.Account) bool { return a.ID == id })
}

// Fetch reloads all accounts. Errors are recorded in Status, not returned.
func (s *AccountStore) Fetch(ctx context.Context) {
	s.coll.fetch(ctx, s.api.ListAccounts, "Failed to load accounts")
}

func (s *AccountStore) Create(ctx context.Context, input *domain.AccountCreate) error {
	return s.coll.write(ctx, "create", "Failed to create account", func(ctx context.Context) error {
		if err := input.Validate(); err != nil {
			return err
		}
		_, err := s.api.CreateAccount(ctx, input)
		return err
	}, s.Fetch)
}

func (s *AccountStore) Update(ctx context.Context, id int32, input *domain.AccountUpdate) error {
	return s.coll.write(ctx, "update", "Failed to update account", func(ctx context.Context) error {
		_, err := s.api.UpdateAccount(ctx, id, input)
		return err
	}, s.Fetch)
}

func (s *AccountStore) Delete(ctx context.Context, id int32) error {
	return s.coll.write(ctx, "delete", "Failed to delete account", func(ctx context.Context) error {
		return s.api.DeleteAccount(ctx, id)
	}, s.Fetch)
}
