package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

var (
	_ domain.AccountAPI      = (*Client)(nil)
	_ domain.TransactionAPI  = (*Client)(nil)
	_ domain.BudgetAPI       = (*Client)(nil)
	_ domain.CategoryAPI     = (*Client)(nil)
	_ domain.ExchangeRateAPI = (*Client)(nil)
	_ domain.AuthAPI         = (*Client)(nil)
)

func itemPath(collection string, id int32) string {
	return fmt.Sprintf("/%s/%d", collection, id)
}

// Accounts

func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.getJSON(ctx, "/accounts/", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context, input *domain.AccountCreate) (*domain.Account, error) {
	var account domain.Account
	if err := c.sendJSON(ctx, http.MethodPost, "/accounts/", input, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id int32, input *domain.AccountUpdate) (*domain.Account, error) {
	var account domain.Account
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("accounts", id), input, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id int32) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("accounts", id), nil, nil)
}

// Transactions

func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := c.getJSON(ctx, "/transactions/", &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) CreateTransaction(ctx context.Context, input *domain.TransactionCreate) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := c.sendJSON(ctx, http.MethodPost, "/transactions/", input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int32, input *domain.TransactionUpdate) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("transactions", id), input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int32) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("transactions", id), nil, nil)
}

func (c *Client) Transfer(ctx context.Context, input *domain.TransferCreate) error {
	return c.sendJSON(ctx, http.MethodPost, "/transactions/transfer", input, nil)
}

// RecordDescription moves description to the front of the user's description history.
func (c *Client) RecordDescription(ctx context.Context, description string) error {
	query := url.Values{"description": {description}}
	return c.do(ctx, http.MethodPost, "/description-history/update", query, nil, "", nil)
}

// Budgets

func (c *Client) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	var budgets []domain.Budget
	if err := c.getJSON(ctx, "/budgets/", &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) CreateBudget(ctx context.Context, input *domain.BudgetCreate) (*domain.Budget, error) {
	var budget domain.Budget
	if err := c.sendJSON(ctx, http.MethodPost, "/budgets/", input, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id int32, input *domain.BudgetUpdate) (*domain.Budget, error) {
	var budget domain.Budget
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("budgets", id), input, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id int32) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("budgets", id), nil, nil)
}

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, "/categories/", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, input *domain.CategoryCreate) (*domain.Category, error) {
	var category domain.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/categories/", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int32, input *domain.CategoryUpdate) (*domain.Category, error) {
	var category domain.Category
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("categories", id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int32) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("categories", id), nil, nil)
}

func (c *Client) ReorderCategories(ctx context.Context, orders []domain.CategoryOrder) error {
	return c.sendJSON(ctx, http.MethodPost, "/categories/reorder", orders, nil)
}

// Exchange rates

func (c *Client) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	var rates []domain.ExchangeRate
	if err := c.getJSON(ctx, "/exchange-rates/latest", &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// Auth

// Login posts the credentials as the form the backend's OAuth2 password flow expects.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.Token, error) {
	form := url.Values{
		"username": {creds.Username},
		"password": {creds.Password},
	}
	var token domain.Token
	if err := c.sendForm(ctx, "/auth/login", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) VerifyTwoFactor(ctx context.Context, creds domain.Credentials, code string) (*domain.Token, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Token    string `json:"token"`
	}{creds.Username, creds.Password, code}

	var token domain.Token
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login/2fa/verify", body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Register(ctx context.Context, input *domain.RegisterRequest) (*domain.User, error) {
	var user domain.User
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
