package aggregate

import (
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// windowFilter returns the date filter for mode, relative to now.
func windowFilter(mode domain.TimeRangeMode, now time.Time) DateFilter {
	switch mode {
	case domain.TimeRangeDay:
		return OnDay(now)
	case domain.TimeRangeMonth:
		return InMonth(now)
	default:
		return AnyDate
	}
}

// TotalByCurrency sums live account balances per currency code.
func TotalByCurrency(accounts []domain.Account) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, account := range accounts {
		totals[account.Currency] = totals[account.Currency].Add(account.Balance)
	}
	return totals
}

// IncomeExpenseStats totals credits as income and debits plus installments as
// expense, over the window selected by mode.
func IncomeExpenseStats(transactions []domain.Transaction, mode domain.TimeRangeMode, now time.Time) domain.IncomeExpenseStats {
	inWindow := windowFilter(mode, now)

	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range transactions {
		if !inWindow(tx.TransactionDate) {
			continue
		}
		switch {
		case tx.TransactionType.IsIncome():
			income = income.Add(tx.Amount)
		case tx.TransactionType.IsExpense():
			expense = expense.Add(tx.Amount)
		}
	}

	return domain.IncomeExpenseStats{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// AccountBalance returns the account's live balance in total mode. In month
// and day mode it returns the account's net change within the window instead,
// not its balance level.
func AccountBalance(accountID int32, accounts []domain.Account, transactions []domain.Transaction, mode domain.TimeRangeMode, now time.Time) decimal.Decimal {
	if mode == domain.TimeRangeTotal {
		for _, account := range accounts {
			if account.ID == accountID {
				return account.Balance
			}
		}
		return decimal.Zero
	}

	inWindow := windowFilter(mode, now)
	net := decimal.Zero
	for _, tx := range transactions {
		if tx.AccountID != accountID || !inWindow(tx.TransactionDate) {
			continue
		}
		switch {
		case tx.TransactionType.IsIncome():
			net = net.Add(tx.Amount)
		case tx.TransactionType.IsExpense():
			net = net.Sub(tx.Amount)
		}
	}
	return net
}

// TotalByCurrencyForTimeRange sums balances per currency in total mode and
// windowed net changes per currency otherwise.
func TotalByCurrencyForTimeRange(accounts []domain.Account, transactions []domain.Transaction, mode domain.TimeRangeMode, now time.Time) map[string]decimal.Decimal {
	if mode == domain.TimeRangeTotal {
		return TotalByCurrency(accounts)
	}

	totals := make(map[string]decimal.Decimal)
	for _, account := range accounts {
		delta := AccountBalance(account.ID, accounts, transactions, mode, now)
		totals[account.Currency] = totals[account.Currency].Add(delta)
	}
	return totals
}
