package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// statusStyle colours a budget status with its presentation colour
func statusStyle(status domain.BudgetStatus) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(status.Color()))
}

// amountStyle renders negative amounts red and positive ones green
func amountStyle(amount decimal.Decimal) lipgloss.Style {
	switch {
	case amount.IsNegative():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336"))
	case amount.IsPositive():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	}
	return lipgloss.NewStyle()
}

func formatAmount(amount decimal.Decimal) string {
	return amountStyle(amount).Render(amount.StringFixed(2))
}
