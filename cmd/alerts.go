package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Maintenance that is due soon or overdue",
	RunE:  runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		odo := pipeline.CurrentOdometer(s.data.Vehicles)
		alerts := pipeline.MaintenanceAlerts(s.data.Maintenance, odo, s.now)

		fmt.Println()
		fmt.Println(cli.RenderTitle(loc.T("upcomingMaintenance")))
		fmt.Println()

		if len(alerts) == 0 {
			fmt.Printf("  %s\n", loc.T("noUpcomingMaintenance"))
			return nil
		}

		rows := make([][]string, len(alerts))
		for i, al := range alerts {
			rows[i] = []string{
				al.ServiceType,
				cli.RenderStatus(loc.Status(al.Status), al.Priority),
				loc.Due(al.Due),
			}
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{loc.T("serviceType"), "", loc.T("nextDue")},
			Rows:    rows,
		}))
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  %s: %s", loc.T("currentOdometer"), loc.Number(odo, 0))))
		return nil
	})
}
