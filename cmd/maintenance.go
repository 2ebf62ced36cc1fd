package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var (
	flagMaintDate     string
	flagMaintService  string
	flagMaintOdometer float64
	flagMaintCost     float64
	flagMaintProvider string
	flagMaintNextDate string
	flagMaintNextOdo  float64
	flagMaintNotes    string
)

var maintenanceCmd = &cobra.Command{
	Use:     "maintenance",
	Aliases: []string{"maint"},
	Short:   "Maintenance records",
	RunE:    runMaintenanceList,
}

var maintenanceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a service",
	Long: "Log a service. Known service types: " + strings.Join(model.ServiceTypes, ", ") +
		". Any other name is accepted too.",
	Args: cobra.NoArgs,
	RunE: runMaintenanceAdd,
}

var maintenanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List maintenance records, newest first",
	RunE:  runMaintenanceList,
}

var maintenanceRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a maintenance record",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaintenanceRm,
}

func init() {
	f := maintenanceAddCmd.Flags()
	f.StringVar(&flagMaintDate, "date", "", "Service date YYYY-MM-DD (default today)")
	f.StringVar(&flagMaintService, "service", "", "Service type, e.g. \"Oil Change\"")
	f.Float64Var(&flagMaintOdometer, "odometer", 0, "Odometer reading in km")
	f.Float64Var(&flagMaintCost, "cost", 0, "Service cost")
	f.StringVar(&flagMaintProvider, "provider", "", "Workshop or provider")
	f.StringVar(&flagMaintNextDate, "next-date", "", "Next service due date YYYY-MM-DD")
	f.Float64Var(&flagMaintNextOdo, "next-odometer", 0, "Next service due odometer in km")
	f.StringVar(&flagMaintNotes, "notes", "", "Free-form notes")
	_ = maintenanceAddCmd.MarkFlagRequired("service")

	maintenanceCmd.AddCommand(maintenanceAddCmd, maintenanceListCmd, maintenanceRmCmd)
	rootCmd.AddCommand(maintenanceCmd)
}

func runMaintenanceAdd(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(ctx context.Context, s *session) error {
		date, err := recordDate(flagMaintDate, s)
		if err != nil {
			return err
		}
		rec := model.MaintenanceRecord{
			Date:            date,
			ServiceType:     strings.TrimSpace(flagMaintService),
			Odometer:        flagMaintOdometer,
			Cost:            flagMaintCost,
			Provider:        flagMaintProvider,
			NextDueOdometer: optionalFloat(cmd, "next-odometer", flagMaintNextOdo),
			Notes:           flagMaintNotes,
		}
		if flagMaintNextDate != "" {
			next, err := model.ParseDate(flagMaintNextDate)
			if err != nil {
				return fmt.Errorf("parsing --next-date: %w", err)
			}
			rec.NextDueDate = &next
		}

		rec, err = s.ledger().AddMaintenance(ctx, rec)
		if err != nil {
			return fmt.Errorf("adding maintenance record: %w", err)
		}
		fmt.Printf("  Added %s %s: %s\n", rec.ServiceType, formatID(rec.ID), s.loc.Money(rec.Cost))
		return nil
	})
}

func runMaintenanceList(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		if len(s.data.Maintenance) == 0 {
			fmt.Printf("\n  %s\n", loc.T("noMaintenanceRecords"))
			return nil
		}

		rows := make([][]string, 0, len(s.data.Maintenance)+2)
		shown := limitHistory(s.data.Maintenance, s.cfg.Display.HistoryLimit)
		for _, r := range shown {
			var next []string
			if d, ok := r.DueDate(); ok {
				next = append(next, d.String())
			}
			if o, ok := r.DueOdometer(); ok {
				next = append(next, cli.FormatOdometer(o))
			}
			rows = append(rows, []string{
				formatID(r.ID), r.Date.String(), cli.Truncate(r.ServiceType, 20),
				cli.FormatOdometer(r.Odometer), loc.Money(r.Cost),
				cli.Truncate(r.Provider, 18), strings.Join(next, " / "),
			})
		}
		sum := pipeline.MaintenanceSummary(s.data.Maintenance)
		rows = append(rows, []string{"---"},
			[]string{loc.T("totalSpent"), "", "", "", loc.Money(sum.TotalCost), "", ""})

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title: loc.T("maintenanceTracking"),
			Headers: []string{"ID", loc.T("date"), loc.T("serviceType"), loc.T("odometer"),
				loc.T("cost"), loc.T("provider"), loc.T("nextDue")},
			Rows: rows,
		}))
		printHistoryNote(len(shown), len(s.data.Maintenance))
		return nil
	})
}

func runMaintenanceRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if err := s.ledger().RemoveMaintenance(ctx, id); err != nil {
			return fmt.Errorf("removing maintenance record: %w", err)
		}
		progress("  Removed maintenance record %s\n", formatID(id))
		return nil
	})
}
