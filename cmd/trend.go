package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Spending for the last six calendar months",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		trend := pipeline.MonthTrend(s.data, s.now)
		labels := loc.TrendLabels(trend)

		values := make([]float64, len(trend))
		rows := make([][]string, 0, len(trend)+2)
		var prev float64
		for i, m := range trend {
			values[i] = m.Total
			delta := ""
			if i > 0 {
				delta = cli.FormatDelta(m.Total, prev)
			}
			rows = append(rows, []string{fmt.Sprintf("%s %d", labels[i], m.Year), loc.Money(m.Total), delta})
			prev = m.Total
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(loc.T("monthlyExpensesTrend")))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{loc.T("date"), loc.T("totalCost"), ""},
			Rows:    rows,
		}))
		if s.cfg.Display.Sparklines {
			fmt.Println()
			fmt.Printf("  %s\n", cli.RenderSparkline(values))
		}
		return nil
	})
}
