package store

import (
	"context"
	"strings"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

const TransactionStoreName = "transactions"

// TransactionStore holds the session's transactions.
type TransactionStore struct {
	api  domain.TransactionAPI
	coll *collection[domain.Transaction]
}

func NewTransactionStore(api domain.TransactionAPI, onRefresh RefreshFunc) *TransactionStore {
	return &TransactionStore{
		api:  api,
		coll: newCollection[domain.Transaction](TransactionStoreName, domain.Transaction.Clone, onRefresh),
	}
}

func (s *TransactionStore) Transactions() []domain.Transaction {
	return s.coll.snapshot()
}

func (s *TransactionStore) Status() Status {
	return s.coll.status()
}

func (s *TransactionStore) Fetch(ctx context.Context) {
	s.coll.fetch(ctx, s.api.ListTransactions, "Failed to load transactions")
}

func (s *TransactionStore) Create(ctx context.Context, input *domain.TransactionCreate) error {
	return s.coll.write(ctx, "create", "Failed to create transaction", func(ctx context.Context) error {
		if err := input.Validate(); err != nil {
			return err
		}
		if _, err := s.api.CreateTransaction(ctx, input); err != nil {
			return err
		}
		s.recordDescription(ctx, input.Description)
		return nil
	}, s.Fetch)
}

func (s *TransactionStore) Update(ctx context.Context, id int32, input *domain.TransactionUpdate) error {
	return s.coll.write(ctx, "update", "Failed to update transaction", func(ctx context.Context) error {
		if input.Amount != nil && input.Amount.IsNegative() {
			return domain.ErrInvalidInput
		}
		if _, err := s.api.UpdateTransaction(ctx, id, input); err != nil {
			return err
		}
		if input.Description != nil {
			s.recordDescription(ctx, *input.Description)
		}
		return nil
	}, s.Fetch)
}

// Transfer moves money between two accounts as a paired debit and credit.
func (s *TransactionStore) Transfer(ctx context.Context, input *domain.TransferCreate) error {
	return s.coll.write(ctx, "transfer", "Transfer failed", func(ctx context.Context) error {
		if input.FromAccountID == input.ToAccountID || !input.Amount.IsPositive() {
			return domain.ErrInvalidInput
		}
		return s.api.Transfer(ctx, input)
	}, s.Fetch)
}

func (s *TransactionStore) Delete(ctx context.Context, id int32) error {
	return s.coll.write(ctx, "delete", "Failed to delete transaction", func(ctx context.Context) error {
		return s.api.DeleteTransaction(ctx, id)
	}, s.Fetch)
}

// recordDescription bumps the description in the backend's history. It is
// best effort: a failure is logged and never fails the transaction write.
func (s *TransactionStore) recordDescription(ctx context.Context, description string) {
	description = strings.TrimSpace(description)
	if description == "" {
		return
	}
	if err := s.api.RecordDescription(ctx, description); err != nil {
		s.coll.logger().Warn().Err(err).Msg("Failed to update description history")
	}
}
