package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show balances, income and expense",
		Long: `Display totals per currency, income/expense statistics, per-account figures
and budget statuses for the selected time range (total, month or day).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rangeMode, err := domain.ParseTimeRangeMode(mode)
			if err != nil {
				return err
			}

			dashboard := service.NewDashboardService(service.NewBudgetService(nil), nil)
			return withSession(cmd.Context(), func(sess *session.Session) error {
				summary := dashboard.GetSummary(sess, rangeMode)
				renderDashboard(cmd.OutOrStdout(), summary)
				renderStoreErrors(cmd.OutOrStdout(), sess)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.TimeRangeTotal), "time range: total, month or day")

	return cmd
}

func renderDashboard(out io.Writer, summary *domain.DashboardSummary) {
	fmt.Fprintln(out, titleStyle.Render("Dashboard ("+string(summary.Mode)+")"))

	currencies := make([]string, 0, len(summary.TotalByCurrency))
	for currency := range summary.TotalByCurrency {
		currencies = append(currencies, currency)
	}
	slices.Sort(currencies)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Currency"), headerStyle.Render("Total"))
	for _, currency := range currencies {
		fmt.Fprintf(w, "%s\t%s\n", currency, formatAmount(summary.TotalByCurrency[currency]))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Income"), formatAmount(summary.Stats.Income))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Expense"), formatAmount(summary.Stats.Expense.Neg()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Net"), formatAmount(summary.Stats.Net))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("Account"), headerStyle.Render("Currency"), headerStyle.Render("Amount"))
	for _, account := range summary.Accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", account.Name, account.Currency, formatAmount(account.Amount))
	}
	_ = w.Flush()

	if len(summary.Budgets) > 0 {
		fmt.Fprintln(out)
		renderBudgetViews(out, summary.Budgets)
	}
}

// renderStoreErrors prints the error message of every store whose last
// fetch failed, since the figures above were computed without it.
func renderStoreErrors(out io.Writer, sess *session.Session) {
	for _, msg := range []string{
		sess.Accounts.Status().Error,
		sess.Transactions.Status().Error,
		sess.Budgets.Status().Error,
		sess.Categories.Status().Error,
		sess.ExchangeRates.Status().Error,
	} {
		if msg != "" {
			fmt.Fprintln(out, warningStyle.Render("! "+msg))
		}
	}
}
