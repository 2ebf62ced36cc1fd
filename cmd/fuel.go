package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var (
	flagFuelDate     string
	flagFuelOdometer float64
	flagFuelLiters   float64
	flagFuelPrice    float64
	flagFuelTotal    float64
	flagFuelFull     bool
	flagFuelStation  string
)

var fuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "Fuel fill-ups",
	RunE:  runFuelList,
}

var fuelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a fill-up",
	Args:  cobra.NoArgs,
	RunE:  runFuelAdd,
}

var fuelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fill-ups, newest first",
	RunE:  runFuelList,
}

var fuelRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a fill-up",
	Args:  cobra.ExactArgs(1),
	RunE:  runFuelRm,
}

func init() {
	fuelAddCmd.Flags().StringVar(&flagFuelDate, "date", "", "Fill-up date YYYY-MM-DD (default today)")
	fuelAddCmd.Flags().Float64Var(&flagFuelOdometer, "odometer", 0, "Odometer reading in km")
	fuelAddCmd.Flags().Float64Var(&flagFuelLiters, "liters", 0, "Liters filled")
	fuelAddCmd.Flags().Float64Var(&flagFuelPrice, "price", 0, "Price per liter")
	fuelAddCmd.Flags().Float64Var(&flagFuelTotal, "total", 0, "Total cost (default liters x price)")
	fuelAddCmd.Flags().BoolVar(&flagFuelFull, "full", true, "Filled to a full tank")
	fuelAddCmd.Flags().StringVar(&flagFuelStation, "station", "", "Fuel station")
	_ = fuelAddCmd.MarkFlagRequired("liters")

	fuelCmd.AddCommand(fuelAddCmd, fuelListCmd, fuelRmCmd)
	rootCmd.AddCommand(fuelCmd)
}

func runFuelAdd(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(ctx context.Context, s *session) error {
		date, err := recordDate(flagFuelDate, s)
		if err != nil {
			return err
		}
		e, err := s.ledger().AddFuel(ctx, model.FuelEntry{
			Date:          date,
			Odometer:      flagFuelOdometer,
			Liters:        flagFuelLiters,
			PricePerLiter: flagFuelPrice,
			TotalCost:     flagFuelTotal,
			FullTank:      flagFuelFull,
			Station:       flagFuelStation,
		})
		if err != nil {
			return fmt.Errorf("adding fuel entry: %w", err)
		}
		fmt.Printf("  Added fill-up %s: %s, %s\n", formatID(e.ID), cli.FormatLiters(e.Liters), s.loc.Money(e.TotalCost))
		return nil
	})
}

func runFuelList(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		if len(s.data.Fuel) == 0 {
			fmt.Printf("\n  %s\n", loc.T("noFuelEntries"))
			return nil
		}

		rows := make([][]string, 0, len(s.data.Fuel)+2)
		shown := limitHistory(s.data.Fuel, s.cfg.Display.HistoryLimit)
		for _, e := range shown {
			full := loc.T("partial")
			if e.FullTank {
				full = loc.T("fullTank")
			}
			station := e.Station
			if station == "" {
				station = loc.T("unknownStation")
			}
			rows = append(rows, []string{
				formatID(e.ID), e.Date.String(), cli.FormatOdometer(e.Odometer),
				cli.FormatLiters(e.Liters), loc.Money(e.PricePerLiter), loc.Money(e.TotalCost),
				full, cli.Truncate(station, 20),
			})
		}
		sum := pipeline.FuelSummary(s.data.Fuel)
		rows = append(rows, []string{"---"},
			[]string{loc.T("totalCost"), "", "", cli.FormatLiters(sum.TotalLiters), loc.Money(sum.AvgPricePerL), loc.Money(sum.TotalCost), "", ""})

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title: loc.T("fuelTracking"),
			Headers: []string{"ID", loc.T("date"), loc.T("odometer"), loc.T("liters"),
				loc.T("pricePerLiter"), loc.T("totalCost"), loc.T("fullTank"), loc.T("station")},
			Rows: rows,
		}))
		printHistoryNote(len(shown), len(s.data.Fuel))
		return nil
	})
}

func runFuelRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if err := s.ledger().RemoveFuel(ctx, id); err != nil {
			return fmt.Errorf("removing fuel entry: %w", err)
		}
		progress("  Removed fill-up %s\n", formatID(id))
		return nil
	})
}
