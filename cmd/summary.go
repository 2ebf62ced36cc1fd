package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard summary: totals, this month, efficiency and alerts",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		if s.data.Empty() {
			fmt.Println()
			fmt.Printf("  %s\n", loc.T("addFirstCar"))
			fmt.Println(cli.RenderMuted("  carpro vehicle add --make Toyota --model Corolla"))
			return nil
		}

		d := s.dashboard()

		fmt.Println()
		title := loc.T("dashboard")
		if d.DefaultVehicle != nil {
			title += "  " + d.DefaultVehicle.DisplayName()
		}
		fmt.Println(cli.RenderTitle(title))
		fmt.Println()

		efficiency := "-"
		if d.Efficiency.Valid {
			efficiency = loc.Number(d.Efficiency.Average, 1) + " " + loc.T("kmPerLiter")
		}

		rows := [][]string{
			{loc.T("totalExpenses"), loc.Money(d.TotalExpenses)},
			{loc.T("thisMonth"), loc.Money(d.MonthlyExpenses)},
			{"---"},
			{loc.T("fuel"), loc.Money(d.Breakdown.Fuel)},
			{loc.T("maintenance"), loc.Money(d.Breakdown.Maintenance)},
			{loc.T("other"), loc.Money(d.Breakdown.Other)},
			{"---"},
			{loc.T("avgEfficiency"), efficiency},
			{loc.T("currentOdometer"), loc.Number(d.CurrentOdometer, 0)},
			{loc.T("maintenanceDue"), loc.Number(float64(d.UpcomingMaintenance), 0)},
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"", ""},
			Rows:    rows,
		}))

		if len(d.Alerts) > 0 {
			fmt.Println()
			for _, al := range d.Alerts {
				fmt.Printf("  %s  %s  %s\n", cli.RenderStatus(loc.Status(al.Status), al.Priority), al.ServiceType, loc.Due(al.Due))
			}
		}
		return nil
	})
}
