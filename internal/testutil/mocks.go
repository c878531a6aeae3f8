package testutil

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/util"
	"github.com/shopspring/decimal"
)

// MockLedger is an in-memory implementation of the backend's resource APIs.
// It applies the backend's own bookkeeping (balances, budget spent, category
// order) so tests can observe the effects of writes after a re-fetch.
//
// Set an entry in Errors to make the named operation fail, e.g.
// Errors["ListAccounts"] = &domain.APIError{...}.
type MockLedger struct {
	mu sync.Mutex

	Accounts      map[int32]*domain.Account
	Transactions  map[int32]*domain.Transaction
	Budgets       map[int32]*domain.Budget
	Categories    map[int32]*domain.Category
	ExchangeRates []domain.ExchangeRate
	Descriptions  []string
	Reorders      [][]domain.CategoryOrder
	Errors        map[string]error
	Delays        map[string]time.Duration
	Calls         map[string]int
	Now           func() time.Time

	nextID int32
}

// NewMockLedger creates an empty MockLedger
func NewMockLedger() *MockLedger {
	return &MockLedger{
		Accounts:     make(map[int32]*domain.Account),
		Transactions: make(map[int32]*domain.Transaction),
		Budgets:      make(map[int32]*domain.Budget),
		Categories:   make(map[int32]*domain.Category),
		Errors:       make(map[string]error),
		Delays:       make(map[string]time.Duration),
		Calls:        make(map[string]int),
		Now:          time.Now,
		nextID:       1,
	}
}

var (
	_ domain.AccountAPI      = (*MockLedger)(nil)
	_ domain.TransactionAPI  = (*MockLedger)(nil)
	_ domain.BudgetAPI       = (*MockLedger)(nil)
	_ domain.CategoryAPI     = (*MockLedger)(nil)
	_ domain.ExchangeRateAPI = (*MockLedger)(nil)
)

// enter locks the ledger, counts the call and returns the injected error, if any.
// The caller must unlock.
func (m *MockLedger) enter(op string) error {
	m.mu.Lock()
	delay := m.Delays[op]
	m.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	m.mu.Lock()
	m.Calls[op]++
	return m.Errors[op]
}

// CallCount returns how many times op was invoked
func (m *MockLedger) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[op]
}

// SetError makes op fail with err until cleared with a nil err
func (m *MockLedger) SetError(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.Errors, op)
		return
	}
	m.Errors[op] = err
}

// SetDelay makes op wait d before answering
func (m *MockLedger) SetDelay(op string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Delays[op] = d
}

func (m *MockLedger) id() int32 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MockLedger) stamp() string {
	return m.Now().Format(util.DateTimeLayout)
}

func notFound(what string, id int32) error {
	return &domain.APIError{Kind: domain.ErrorKindNotFound, Status: 404, Detail: fmt.Sprintf("%s %d not found", what, id)}
}

func invalid(detail string) error {
	return &domain.APIError{Kind: domain.ErrorKindValidation, Status: 400, Detail: detail}
}

// Accounts

func (m *MockLedger) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	err := m.enter("ListAccounts")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockLedger) CreateAccount(ctx context.Context, input *domain.AccountCreate) (*domain.Account, error) {
	err := m.enter("CreateAccount")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	balance := decimal.Zero
	if input.InitialBalance != nil {
		balance = *input.InitialBalance
	}
	account := &domain.Account{
		ID:          m.id(),
		Name:        input.Name,
		AccountType: input.AccountType,
		Balance:     balance,
		Currency:    currency,
		Description: input.Description,
		UserID:      1,
		CreatedAt:   m.stamp(),
	}
	m.Accounts[account.ID] = account
	created := *account
	return &created, nil
}

func (m *MockLedger) UpdateAccount(ctx context.Context, id int32, input *domain.AccountUpdate) (*domain.Account, error) {
	err := m.enter("UpdateAccount")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	account, ok := m.Accounts[id]
	if !ok {
		return nil, notFound("account", id)
	}
	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Description != nil {
		account.Description = input.Description
	}
	updated := *account
	return &updated, nil
}

func (m *MockLedger) DeleteAccount(ctx context.Context, id int32) error {
	err := m.enter("DeleteAccount")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := m.Accounts[id]; !ok {
		return notFound("account", id)
	}
	delete(m.Accounts, id)
	for txID, tx := range m.Transactions {
		if tx.AccountID == id {
			delete(m.Transactions, txID)
		}
	}
	return nil
}

// Transactions

func (m *MockLedger) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	err := m.enter("ListTransactions")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Transaction, 0, len(m.Transactions))
	for _, tx := range m.Transactions {
		out = append(out, *tx)
	}
	// Newest first, as the backend lists them
	sort.Slice(out, func(i, j int) bool {
		if out[i].TransactionDate != out[j].TransactionDate {
			return out[i].TransactionDate > out[j].TransactionDate
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MockLedger) applyToBalance(tx *domain.Transaction, sign int64) {
	account, ok := m.Accounts[tx.AccountID]
	if !ok {
		return
	}
	delta := tx.Amount.Mul(decimal.NewFromInt(sign))
	if tx.TransactionType.IsExpense() {
		delta = delta.Neg()
	}
	account.Balance = account.Balance.Add(delta)
}

func (m *MockLedger) CreateTransaction(ctx context.Context, input *domain.TransactionCreate) (*domain.Transaction, error) {
	err := m.enter("CreateTransaction")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if _, ok := m.Accounts[input.AccountID]; !ok {
		return nil, notFound("account", input.AccountID)
	}
	tx := &domain.Transaction{
		ID:                m.id(),
		Description:       input.Description,
		Amount:            input.Amount,
		TransactionType:   input.TransactionType,
		Category:          input.Category,
		TransactionDate:   input.TransactionDate,
		AccountID:         input.AccountID,
		Note:              input.Note,
		ForeignAmount:     input.ForeignAmount,
		ForeignCurrency:   input.ForeignCurrency,
		IsInstallment:     input.IsInstallment,
		ExcludeFromBudget: input.ExcludeFromBudget,
		CreatedAt:         m.stamp(),
	}
	m.Transactions[tx.ID] = tx
	m.applyToBalance(tx, 1)
	created := *tx
	return &created, nil
}

func (m *MockLedger) UpdateTransaction(ctx context.Context, id int32, input *domain.TransactionUpdate) (*domain.Transaction, error) {
	err := m.enter("UpdateTransaction")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	tx, ok := m.Transactions[id]
	if !ok {
		return nil, notFound("transaction", id)
	}
	m.applyToBalance(tx, -1)
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Category != nil {
		tx.Category = input.Category
	}
	if input.TransactionDate != nil {
		tx.TransactionDate = *input.TransactionDate
	}
	if input.Note != nil {
		tx.Note = input.Note
	}
	if input.TransactionType != nil {
		tx.TransactionType = *input.TransactionType
	}
	m.applyToBalance(tx, 1)
	updated := *tx
	return &updated, nil
}

func (m *MockLedger) DeleteTransaction(ctx context.Context, id int32) error {
	err := m.enter("DeleteTransaction")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	tx, ok := m.Transactions[id]
	if !ok {
		return notFound("transaction", id)
	}
	m.applyToBalance(tx, -1)
	delete(m.Transactions, id)
	return nil
}

func (m *MockLedger) Transfer(ctx context.Context, input *domain.TransferCreate) error {
	err := m.enter("Transfer")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	for _, id := range []int32{input.FromAccountID, input.ToAccountID} {
		if _, ok := m.Accounts[id]; !ok {
			return notFound("account", id)
		}
	}
	legs := []*domain.Transaction{
		{AccountID: input.FromAccountID, TransactionType: domain.TransactionTypeDebit},
		{AccountID: input.ToAccountID, TransactionType: domain.TransactionTypeCredit},
	}
	for _, leg := range legs {
		leg.ID = m.id()
		leg.Description = input.Description
		leg.Amount = input.Amount
		leg.TransactionDate = input.TransactionDate
		leg.Note = input.Note
		leg.ExcludeFromBudget = true
		leg.CreatedAt = m.stamp()
		m.Transactions[leg.ID] = leg
		m.applyToBalance(leg, 1)
	}
	return nil
}

func (m *MockLedger) RecordDescription(ctx context.Context, description string) error {
	err := m.enter("RecordDescription")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	m.Descriptions = slices.DeleteFunc(m.Descriptions, func(d string) bool { return d == description })
	m.Descriptions = append([]string{description}, m.Descriptions...)
	return nil
}

// Budgets

// budgetWindow resolves the date range the backend would use for b.
func (m *MockLedger) budgetWindow(b *domain.Budget) (string, string) {
	if b.RangeMode == domain.RangeModeRecurring && b.Period != nil {
		start, end, err := util.PeriodRange(*b.Period, m.Now())
		if err == nil {
			return start.Format(util.DateTimeLayout), end.Format(util.DateTimeLayout)
		}
	}
	return b.StartDate, b.EndDate
}

// spent mirrors the backend: debits and installments not excluded from
// budgets, in scope and inside the budget's range.
func (m *MockLedger) spent(b *domain.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range m.Transactions {
		if !tx.TransactionType.IsExpense() || tx.ExcludeFromBudget {
			continue
		}
		if len(b.AccountIDs) > 0 && !slices.Contains(b.AccountIDs, tx.AccountID) {
			continue
		}
		if len(b.CategoryNames) > 0 && (tx.Category == nil || !slices.Contains(b.CategoryNames, *tx.Category)) {
			continue
		}
		if tx.TransactionDate < b.StartDate {
			continue
		}
		if end := b.EndDate; len(tx.TransactionDate) >= len(end) && tx.TransactionDate[:len(end)] > end {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

func (m *MockLedger) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	err := m.enter("ListBudgets")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Budget, 0, len(m.Budgets))
	for _, b := range m.Budgets {
		b.StartDate, b.EndDate = m.budgetWindow(b)
		b.Spent = m.spent(b)
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockLedger) CreateBudget(ctx context.Context, input *domain.BudgetCreate) (*domain.Budget, error) {
	err := m.enter("CreateBudget")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, invalid("name is required")
	}
	b := &domain.Budget{
		ID:             m.id(),
		Name:           input.Name,
		CategoryNames:  slices.Clone(input.CategoryNames),
		Amount:         input.Amount,
		DailyLimit:     input.DailyLimit,
		DailyLimitMode: input.DailyLimitMode,
		RangeMode:      input.RangeMode,
		Period:         input.Period,
		AccountIDs:     slices.Clone(input.AccountIDs),
		UserID:         1,
		IsLatestPeriod: true,
		CreatedAt:      m.stamp(),
	}
	if input.StartDate != nil {
		b.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		b.EndDate = *input.EndDate
	}
	b.StartDate, b.EndDate = m.budgetWindow(b)
	m.Budgets[b.ID] = b
	created := b.Clone()
	return &created, nil
}

func (m *MockLedger) UpdateBudget(ctx context.Context, id int32, input *domain.BudgetUpdate) (*domain.Budget, error) {
	err := m.enter("UpdateBudget")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	b, ok := m.Budgets[id]
	if !ok {
		return nil, notFound("budget", id)
	}
	if input.Name != nil {
		b.Name = *input.Name
	}
	if input.CategoryNames != nil {
		b.CategoryNames = slices.Clone(input.CategoryNames)
	}
	if input.Amount != nil {
		b.Amount = *input.Amount
	}
	if input.DailyLimit != nil {
		b.DailyLimit = input.DailyLimit
	}
	if input.DailyLimitMode != nil {
		b.DailyLimitMode = *input.DailyLimitMode
	}
	if input.AccountIDs != nil {
		b.AccountIDs = slices.Clone(input.AccountIDs)
	}
	if input.StartDate != nil {
		b.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		b.EndDate = *input.EndDate
	}
	updated := b.Clone()
	return &updated, nil
}

func (m *MockLedger) DeleteBudget(ctx context.Context, id int32) error {
	err := m.enter("DeleteBudget")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := m.Budgets[id]; !ok {
		return notFound("budget", id)
	}
	delete(m.Budgets, id)
	return nil
}

// Categories

func (m *MockLedger) ListCategories(ctx context.Context) ([]domain.Category, error) {
	err := m.enter("ListCategories")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MockLedger) CreateCategory(ctx context.Context, input *domain.CategoryCreate) (*domain.Category, error) {
	err := m.enter("CreateCategory")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	next := int32(0)
	for _, c := range m.Categories {
		if c.Name == input.Name {
			return nil, invalid("category already exists")
		}
		if c.OrderIndex >= next {
			next = c.OrderIndex + 1
		}
	}
	category := &domain.Category{ID: m.id(), Name: input.Name, UserID: 1, OrderIndex: next, CreatedAt: m.stamp()}
	m.Categories[category.ID] = category
	created := *category
	return &created, nil
}

func (m *MockLedger) UpdateCategory(ctx context.Context, id int32, input *domain.CategoryUpdate) (*domain.Category, error) {
	err := m.enter("UpdateCategory")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	category, ok := m.Categories[id]
	if !ok {
		return nil, notFound("category", id)
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.OrderIndex != nil {
		category.OrderIndex = *input.OrderIndex
	}
	updated := *category
	return &updated, nil
}

func (m *MockLedger) DeleteCategory(ctx context.Context, id int32) error {
	err := m.enter("DeleteCategory")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := m.Categories[id]; !ok {
		return notFound("category", id)
	}
	delete(m.Categories, id)
	return nil
}

func (m *MockLedger) ReorderCategories(ctx context.Context, orders []domain.CategoryOrder) error {
	err := m.enter("ReorderCategories")
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	m.Reorders = append(m.Reorders, slices.Clone(orders))
	for _, order := range orders {
		if category, ok := m.Categories[order.CategoryID]; ok {
			category.OrderIndex = order.OrderIndex
		}
	}
	return nil
}

// Exchange rates

func (m *MockLedger) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	err := m.enter("ListExchangeRates")
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return slices.Clone(m.ExchangeRates), nil
}

// Seeding helpers

// AddAccount inserts an account directly, bypassing CreateAccount
func (m *MockLedger) AddAccount(account domain.Account) domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == 0 {
		account.ID = m.id()
	} else if account.ID >= m.nextID {
		m.nextID = account.ID + 1
	}
	m.Accounts[account.ID] = &account
	return account
}

// AddTransaction inserts a transaction directly; the account balance is not adjusted
func (m *MockLedger) AddTransaction(tx domain.Transaction) domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == 0 {
		tx.ID = m.id()
	} else if tx.ID >= m.nextID {
		m.nextID = tx.ID + 1
	}
	m.Transactions[tx.ID] = &tx
	return tx
}

// AddCategory inserts a category directly
func (m *MockLedger) AddCategory(category domain.Category) domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category.ID == 0 {
		category.ID = m.id()
	} else if category.ID >= m.nextID {
		m.nextID = category.ID + 1
	}
	m.Categories[category.ID] = &category
	return category
}
