package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency",
	Short: "Average fuel efficiency and recent km/l history",
	RunE:  runEfficiency,
}

func init() {
	rootCmd.AddCommand(efficiencyCmd)
}

func runEfficiency(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		eff := pipeline.ComputeFuelEfficiency(s.data.Fuel)

		fmt.Println()
		fmt.Println(cli.RenderTitle(loc.T("fuelEfficiency")))
		fmt.Println()

		if !eff.Valid {
			fmt.Printf("  %s: -\n", loc.T("avgEfficiency"))
			fmt.Println(cli.RenderMuted("  Log at least two fill-ups to compute km/l."))
			return nil
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Rows: [][]string{
				{loc.T("avgEfficiency"), cli.FormatEfficiency(eff.Average, eff.Valid)},
				{"km", cli.FormatOdometer(eff.TotalDistance)},
				{loc.T("liters"), cli.FormatLiters(eff.TotalLiters)},
				{"#", cli.FormatNumber(int64(eff.Pairs))},
			},
		}))
		fmt.Println()

		peak := 0.0
		for _, p := range eff.History {
			peak = max(peak, p.KmPerLiter)
		}
		fmt.Printf("  %s\n", loc.T("fuelEfficiencyHistory"))
		for _, p := range eff.History {
			fmt.Println(cli.RenderHorizontalBar(loc.Date(p.Date), p.KmPerLiter, peak, 30,
				cli.FormatEfficiency(p.KmPerLiter, true)))
		}
		return nil
	})
}
