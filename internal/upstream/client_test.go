package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, fb *testutil.FakeBackend) *Client {
	t.Helper()
	fb.AddUser("ana@example.com", "s3cret-pass", "")
	token, err := NewClient(fb.URL(), 5*time.Second).Login(context.Background(), domain.Credentials{Username: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.False(t, token.Requires2FA)
	return NewClient(fb.URL(), 5*time.Second).WithToken(token.AccessToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.AddUser("ana@example.com", "s3cret-pass", "")

	called := false
	client := NewClient(fb.URL(), 5*time.Second)
	client.OnUnauthorized(func() { called = true })

	_, err := client.Login(context.Background(), domain.Credentials{Username: "ana@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Incorrect email or password", domain.ErrorMessage(err, ""))
	assert.False(t, called, "a failed login must not reset the session")
}

func TestLogin_TwoFactor(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.AddUser("bo@example.com", "s3cret-pass", "123456")
	client := NewClient(fb.URL(), 5*time.Second)
	creds := domain.Credentials{Username: "bo@example.com", Password: "s3cret-pass"}

	token, err := client.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.True(t, token.Requires2FA)

	_, err = client.VerifyTwoFactor(context.Background(), creds, "000000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	token, err = client.VerifyTwoFactor(context.Background(), creds, "123456")
	require.NoError(t, err)
	assert.False(t, token.Requires2FA)
	assert.NotEmpty(t, token.AccessToken)
}

func TestRegister_ValidationListDetail(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	client := NewClient(fb.URL(), 5*time.Second)

	_, err := client.Register(context.Background(), &domain.RegisterRequest{Email: "c@example.com", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", domain.ErrorMessage(err, ""))

	user, err := client.Register(context.Background(), &domain.RegisterRequest{Email: "c@example.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, "c@example.com", user.Email)
}

func TestResources_RoundTrip(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	client := login(t, fb)
	ctx := context.Background()

	initial := decimal.NewFromInt(100)
	account, err := client.CreateAccount(ctx, &domain.AccountCreate{Name: "Wallet", AccountType: domain.AccountTypeCash, InitialBalance: &initial})
	require.NoError(t, err)

	food := "Food"
	_, err = client.CreateTransaction(ctx, &domain.TransactionCreate{
		Description:     "Lunch",
		Amount:          decimal.RequireFromString("12.34"),
		TransactionType: domain.TransactionTypeDebit,
		Category:        &food,
		TransactionDate: "2026-10-16T12:00:00",
		AccountID:       account.ID,
	})
	require.NoError(t, err)
	require.NoError(t, client.RecordDescription(ctx, "Lunch & drinks"))

	accounts, err := client.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "87.66", accounts[0].Balance.StringFixed(2))

	transactions, err := client.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Food", *transactions[0].Category)
	assert.Equal(t, []string{"Lunch & drinks"}, fb.Ledger.Descriptions)

	_, err = client.CreateCategory(ctx, &domain.CategoryCreate{Name: "Food"})
	require.NoError(t, err)
	_, err = client.CreateCategory(ctx, &domain.CategoryCreate{Name: "Rent"})
	require.NoError(t, err)
	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	require.NoError(t, client.ReorderCategories(ctx, []domain.CategoryOrder{
		{CategoryID: categories[1].ID, OrderIndex: 0},
		{CategoryID: categories[0].ID, OrderIndex: 1},
	}))
	categories, err = client.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rent", categories[0].Name)

	err = client.DeleteAccount(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnauthorizedHook(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	client := login(t, fb)

	var calls atomic.Int32
	client.OnUnauthorized(func() { calls.Add(1) })

	fb.Revoke(client.Token())
	_, err := client.ListAccounts(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second).ListAccounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "Failed to load accounts", domain.ErrorMessage(err, "Failed to load accounts"))
}

func TestServerErrorKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"upstream bank API down"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).ListExchangeRates(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInternalError)
	assert.Equal(t, "upstream bank API down", domain.ErrorMessage(err, ""))
}
