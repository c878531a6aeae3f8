package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedTransactions reads the ledger immediately but holds the first
// response until release is closed.
type gatedTransactions struct {
	*testutil.MockLedger
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	// firstErr, when set, is what the held first call fails with
	firstErr error
}

func (g *gatedTransactions) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	items, err := g.MockLedger.ListTransactions(ctx)

	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()

	if first {
		close(g.started)
		<-g.release
		if g.firstErr != nil {
			return nil, g.firstErr
		}
	}
	return items, err
}

func TestFetch_StaleResultIsDropped(t *testing.T) {
	ledger := testutil.NewMockLedger()
	ledger.AddTransaction(domain.Transaction{ID: 1, Description: "old", Amount: decimal.NewFromInt(1), TransactionType: domain.TransactionTypeDebit})

	api := &gatedTransactions{MockLedger: ledger, started: make(chan struct{}), release: make(chan struct{})}
	s := NewTransactionStore(api, nil)

	done := make(chan struct{})
	go func() {
		s.Fetch(context.Background())
		close(done)
	}()
	<-api.started

	assert.True(t, s.Status().Loading)

	ledger.AddTransaction(domain.Transaction{ID: 2, Description: "new", Amount: decimal.NewFromInt(2), TransactionType: domain.TransactionTypeCredit})
	s.Fetch(context.Background())
	require.Len(t, s.Transactions(), 2)

	close(api.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("first fetch did not return")
	}

	// The slower, older response must not replace the newer snapshot
	assert.Len(t, s.Transactions(), 2)
	assert.False(t, s.Status().Loading)
}

func TestFetch_StaleFailureDoesNotMarkNewerSnapshot(t *testing.T) {
	ledger := testutil.NewMockLedger()
	ledger.AddTransaction(domain.Transaction{ID: 1, Description: "lunch", Amount: decimal.NewFromInt(12), TransactionType: domain.TransactionTypeDebit})

	api := &gatedTransactions{
		MockLedger: ledger,
		started:    make(chan struct{}),
		release:    make(chan struct{}),
		firstErr:   &domain.APIError{Kind: domain.ErrorKindServer, Status: 502},
	}
	s := NewTransactionStore(api, nil)

	done := make(chan struct{})
	go func() {
		s.Fetch(context.Background())
		close(done)
	}()
	<-api.started

	s.Fetch(context.Background())
	require.Len(t, s.Transactions(), 1)

	close(api.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("first fetch did not return")
	}

	assert.Len(t, s.Transactions(), 1)
	assert.Equal(t, Status{}, s.Status())
}

func TestFetch_ErrorKeepsPreviousSnapshot(t *testing.T) {
	ledger := testutil.NewMockLedger()
	ledger.AddAccount(domain.Account{ID: 1, Name: "Wallet", Currency: "USD"})
	s := NewAccountStore(ledger, nil)

	s.Fetch(context.Background())
	require.Len(t, s.Accounts(), 1)

	ledger.SetError("ListAccounts", &domain.APIError{Kind: domain.ErrorKindServer, Status: 500})
	s.Fetch(context.Background())

	assert.Len(t, s.Accounts(), 1)
	assert.Equal(t, "Failed to load accounts", s.Status().Error)
	assert.False(t, s.Status().Loading)
}

func TestFetch_SuccessClearsError(t *testing.T) {
	ledger := testutil.NewMockLedger()
	s := NewAccountStore(ledger, nil)

	ledger.SetError("ListAccounts", &domain.APIError{Kind: domain.ErrorKindTransport})
	s.Fetch(context.Background())
	assert.NotEmpty(t, s.Status().Error)

	ledger.SetError("ListAccounts", nil)
	s.Fetch(context.Background())
	assert.Empty(t, s.Status().Error)
	assert.NotNil(t, s.Accounts())
}

func TestFetch_NotifiesRefresh(t *testing.T) {
	ledger := testutil.NewMockLedger()
	var refreshed []string
	s := NewCategoryStore(ledger, func(name string) { refreshed = append(refreshed, name) })

	s.Fetch(context.Background())
	ledger.SetError("ListCategories", &domain.APIError{Kind: domain.ErrorKindServer, Status: 502})
	s.Fetch(context.Background())

	assert.Equal(t, []string{CategoryStoreName}, refreshed)
}
