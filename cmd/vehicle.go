package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/ledger"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

var (
	flagVehicleMake     string
	flagVehicleModel    string
	flagVehicleYear     int
	flagVehiclePlate    string
	flagVehicleColor    string
	flagVehicleOdometer float64
	flagVehicleVIN      string
	flagVehicleDefault  bool
)

var vehicleCmd = &cobra.Command{
	Use:     "vehicle",
	Aliases: []string{"vehicles", "car"},
	Short:   "Manage the garage",
	RunE:    runVehicleList,
}

var vehicleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a vehicle (the first one becomes the default)",
	Args:  cobra.NoArgs,
	RunE:  runVehicleAdd,
}

var vehicleEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a vehicle's details; only the given flags are updated",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleEdit,
}

var vehicleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vehicles",
	RunE:  runVehicleList,
}

var vehicleRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleRm,
}

var vehicleDefaultCmd = &cobra.Command{
	Use:   "default <id>",
	Short: "Make a vehicle the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehicleDefault,
}

func init() {
	for _, c := range []*cobra.Command{vehicleAddCmd, vehicleEditCmd} {
		f := c.Flags()
		f.StringVar(&flagVehicleMake, "make", "", "Manufacturer, e.g. Toyota")
		f.StringVar(&flagVehicleModel, "model", "", "Model, e.g. Corolla")
		f.IntVar(&flagVehicleYear, "year", 0, "Model year")
		f.StringVar(&flagVehiclePlate, "plate", "", "License plate")
		f.StringVar(&flagVehicleColor, "color", "", "Color")
		f.Float64Var(&flagVehicleOdometer, "odometer", 0, "Current odometer in km")
		f.StringVar(&flagVehicleVIN, "vin", "", "Vehicle identification number")
		f.BoolVar(&flagVehicleDefault, "default", false, "Make this the default vehicle")
	}
	_ = vehicleAddCmd.MarkFlagRequired("make")
	_ = vehicleAddCmd.MarkFlagRequired("model")

	vehicleCmd.AddCommand(vehicleAddCmd, vehicleEditCmd, vehicleListCmd, vehicleRmCmd, vehicleDefaultCmd)
	rootCmd.AddCommand(vehicleCmd)
}

func runVehicleAdd(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(ctx context.Context, s *session) error {
		v, err := s.ledger().AddVehicle(ctx, model.Vehicle{
			Make:      flagVehicleMake,
			Model:     flagVehicleModel,
			Year:      flagVehicleYear,
			Plate:     flagVehiclePlate,
			Color:     flagVehicleColor,
			Odometer:  flagVehicleOdometer,
			VIN:       flagVehicleVIN,
			IsDefault: flagVehicleDefault,
		})
		if err != nil {
			return fmt.Errorf("adding vehicle: %w", err)
		}
		fmt.Printf("  Added %s (%s)\n", v.DisplayName(), formatID(v.ID))
		if v.IsDefault {
			fmt.Println(cli.RenderMuted("  Set as default vehicle"))
		}
		return nil
	})
}

// applyVehicleFlags copies every flag the user set onto v.
func applyVehicleFlags(cmd *cobra.Command, v *model.Vehicle) {
	f := cmd.Flags()
	if f.Changed("make") {
		v.Make = flagVehicleMake
	}
	if f.Changed("model") {
		v.Model = flagVehicleModel
	}
	if f.Changed("year") {
		v.Year = flagVehicleYear
	}
	if f.Changed("plate") {
		v.Plate = flagVehiclePlate
	}
	if f.Changed("color") {
		v.Color = flagVehicleColor
	}
	if f.Changed("odometer") {
		v.Odometer = flagVehicleOdometer
	}
	if f.Changed("vin") {
		v.VIN = flagVehicleVIN
	}
	if f.Changed("default") {
		v.IsDefault = flagVehicleDefault
	}
}

func runVehicleEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		var v *model.Vehicle
		for i := range s.data.Vehicles {
			if s.data.Vehicles[i].ID == id {
				v = &s.data.Vehicles[i]
				break
			}
		}
		if v == nil {
			return fmt.Errorf("editing vehicle %d: %w", id, ledger.ErrNotFound)
		}

		updated := *v
		applyVehicleFlags(cmd, &updated)
		if err := s.ledger().UpdateVehicle(ctx, updated); err != nil {
			return fmt.Errorf("editing vehicle: %w", err)
		}
		fmt.Printf("  Updated %s\n", updated.DisplayName())
		return nil
	})
}

func runVehicleList(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *session) error {
		loc := s.loc
		if len(s.data.Vehicles) == 0 {
			fmt.Printf("\n  %s\n", loc.T("noVehicles"))
			fmt.Println(cli.RenderMuted("  " + loc.T("addFirstCar")))
			return nil
		}

		def := pipeline.DefaultVehicle(s.data.Vehicles)
		rows := make([][]string, len(s.data.Vehicles))
		for i, v := range s.data.Vehicles {
			mark := ""
			if def != nil && def.ID == v.ID {
				mark = "*"
			}
			rows[i] = []string{
				formatID(v.ID), v.DisplayName(), v.Plate, v.Color,
				cli.FormatOdometer(v.Odometer), v.VIN, mark,
			}
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title: loc.T("vehicles"),
			Headers: []string{"ID", loc.T("vehicles"), loc.T("plate"), loc.T("color"),
				loc.T("odometer"), loc.T("vin"), loc.T("default")},
			Rows: rows,
		}))
		return nil
	})
}

func runVehicleRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if err := s.ledger().RemoveVehicle(ctx, id); err != nil {
			return fmt.Errorf("removing vehicle: %w", err)
		}
		progress("  Removed vehicle %s\n", formatID(id))
		return nil
	})
}

func runVehicleDefault(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		if err := s.ledger().SetDefaultVehicle(ctx, id); err != nil {
			return fmt.Errorf("setting default vehicle: %w", err)
		}
		if err := s.reload(ctx); err != nil {
			return err
		}
		if v := pipeline.DefaultVehicle(s.data.Vehicles); v != nil {
			fmt.Printf("  Default vehicle: %s\n", v.DisplayName())
		}
		return nil
	})
}
