package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List and reorder categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(sess *session.Session) error {
				renderCategories(cmd.OutOrStdout(), sess.Categories.Categories())
				renderStoreErrors(cmd.OutOrStdout(), sess)
				return nil
			})
		},
	}

	cmd.AddCommand(reorderCategoriesCmd())

	return cmd
}

func reorderCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Set the display order of categories",
		Long: `Reorder categories. Every current category id must be listed exactly once,
in the desired order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), func(sess *session.Session) error {
				if err := sess.Categories.Reorder(cmd.Context(), ids); err != nil {
					return fmt.Errorf("reorder failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Categories reordered"))
				renderCategories(cmd.OutOrStdout(), sess.Categories.Categories())
				return nil
			})
		},
	}
}

func parseIDs(args []string) ([]int32, error) {
	ids := make([]int32, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", arg)
		}
		ids = append(ids, int32(id))
	}
	return ids, nil
}

func renderCategories(out io.Writer, categories []domain.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No categories found."))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("#"), headerStyle.Render("ID"), headerStyle.Render("Name"))
	for _, category := range categories {
		fmt.Fprintf(w, "%d\t%d\t%s\n", category.OrderIndex, category.ID, category.Name)
	}
	_ = w.Flush()
}
