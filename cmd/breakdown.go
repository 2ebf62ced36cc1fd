package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Lifetime spend split into fuel, maintenance and other",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		bd := pipeline.AggregateBreakdown(s.data)
		total := bd.Total()

		share := func(v float64) string {
			if total == 0 {
				return cli.FormatPercent(0)
			}
			return cli.FormatPercent(v / total * 100)
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(loc.T("expenseBreakdown")))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{loc.T("category"), loc.T("totalCost"), "%"},
			Rows: [][]string{
				{loc.T("fuel"), loc.Money(bd.Fuel), share(bd.Fuel)},
				{loc.T("maintenance"), loc.Money(bd.Maintenance), share(bd.Maintenance)},
				{loc.T("other"), loc.Money(bd.Other), share(bd.Other)},
				{"---"},
				{loc.T("totalExpenses"), loc.Money(total), ""},
			},
		}))
		fmt.Println()

		peak := max(bd.Fuel, bd.Maintenance, bd.Other)
		for _, r := range []struct {
			key   string
			value float64
		}{{"fuel", bd.Fuel}, {"maintenance", bd.Maintenance}, {"other", bd.Other}} {
			label := fmt.Sprintf("%-12s", cli.Truncate(loc.T(r.key), 12))
			fmt.Println(cli.RenderHorizontalBar(label, r.value, peak, 30, share(r.value)))
		}

		cats := pipeline.AggregateExpenseCategories(s.data.Expenses)
		if len(cats) > 0 {
			fmt.Println()
			rows := make([][]string, len(cats))
			for i, c := range cats {
				rows[i] = []string{loc.Category(c.Category), loc.Money(c.TotalCost)}
			}
			fmt.Print(cli.RenderTable(cli.Table{
				Title:   loc.T("expenses"),
				Headers: []string{loc.T("category"), loc.T("cost")},
				Rows:    rows,
			}))
		}
		return nil
	})
}
