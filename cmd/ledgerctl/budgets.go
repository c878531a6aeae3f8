package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/spf13/cobra"
)

func budgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "List budgets with today's spending and status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			budgets := service.NewBudgetService(nil)
			return withSession(cmd.Context(), func(sess *session.Session) error {
				views := budgets.Views(sess)
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No budgets found."))
				} else {
					renderBudgetViews(cmd.OutOrStdout(), views)
				}
				renderStoreErrors(cmd.OutOrStdout(), sess)
				return nil
			})
		},
	}
}

func renderBudgetViews(out io.Writer, views []domain.BudgetView) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Budget"),
		headerStyle.Render("Range"),
		headerStyle.Render("Spent today"),
		headerStyle.Render("Daily limit"),
		headerStyle.Render("Remaining"),
		headerStyle.Render("Status"),
		headerStyle.Render("Accounts"))

	for _, view := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			view.Budget.Name,
			budgetRange(view.Budget),
			view.DailySpent.StringFixed(2),
			view.DailyLimit.StringFixed(2),
			formatAmount(view.Remaining),
			statusStyle(view.Status).Render(view.Status.Label()),
			view.AccountNames)
	}
	_ = w.Flush()
}

func budgetRange(budget domain.Budget) string {
	dates := dateOnly(budget.StartDate) + " → " + dateOnly(budget.EndDate)
	if budget.Period != nil {
		return budget.Period.Label() + " " + dates
	}
	return dates
}

func dateOnly(value string) string {
	date, _, _ := strings.Cut(value, "T")
	return date
}
