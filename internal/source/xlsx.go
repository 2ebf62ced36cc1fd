package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
)

// Workbook sheet names, in tab order.
const (
	SheetSummary     = "Summary"
	SheetFuel        = "Fuel"
	SheetMaintenance = "Maintenance"
	SheetExpenses    = "Expenses"
	SheetVehicles    = "Vehicles"
)

type sheet struct {
	name    string
	headers []any
	rows    [][]any
}

func optionalCell[T any](p *T, format func(T) any) any {
	if p == nil {
		return ""
	}
	return format(*p)
}

func workbookSheets(c pipeline.Collections, d model.Dashboard) []sheet {
	summary := sheet{
		name:    SheetSummary,
		headers: []any{"Metric", "Value"},
		rows: [][]any{
			{"Generated", d.GeneratedAt.Format("2006-01-02 15:04")},
			{"Total expenses", d.TotalExpenses},
			{"This month", d.MonthlyExpenses},
			{"Fuel", d.Breakdown.Fuel},
			{"Maintenance", d.Breakdown.Maintenance},
			{"Other", d.Breakdown.Other},
			{"Average km/l", d.Efficiency.Average},
			{"Upcoming maintenance", d.UpcomingMaintenance},
		},
	}
	for _, b := range d.Trend {
		summary.rows = append(summary.rows, []any{fmt.Sprintf("%s %d", b.Label, b.Year), b.Total})
	}

	fuel := sheet{
		name:    SheetFuel,
		headers: []any{"ID", "Date", "Odometer", "Liters", "Price/L", "Total", "Full tank", "Station"},
	}
	for _, e := range c.Fuel {
		fuel.rows = append(fuel.rows, []any{
			e.ID, e.Date.String(), e.Odometer, e.Liters, e.PricePerLiter, e.TotalCost, e.FullTank, e.Station,
		})
	}

	maint := sheet{
		name: SheetMaintenance,
		headers: []any{"ID", "Date", "Service", "Odometer", "Cost", "Provider",
			"Next due date", "Next due km", "Notes"},
	}
	for _, r := range c.Maintenance {
		maint.rows = append(maint.rows, []any{
			r.ID, r.Date.String(), r.ServiceType, r.Odometer, r.Cost, r.Provider,
			optionalCell(r.NextDueDate, func(d model.Date) any { return d.String() }),
			optionalCell(r.NextDueOdometer, func(f float64) any { return f }),
			r.Notes,
		})
	}

	expenses := sheet{
		name:    SheetExpenses,
		headers: []any{"ID", "Date", "Category", "Title", "Cost", "Notes"},
	}
	for _, r := range c.Expenses {
		expenses.rows = append(expenses.rows, []any{
			r.ID, r.Date.String(), string(r.Category), r.Title, r.Cost, r.Notes,
		})
	}

	vehicles := sheet{
		name:    SheetVehicles,
		headers: []any{"ID", "Make", "Model", "Year", "Plate", "Color", "Odometer", "VIN", "Default"},
	}
	for _, v := range c.Vehicles {
		vehicles.rows = append(vehicles.rows, []any{
			v.ID, v.Make, v.Model, v.Year, v.Plate, v.Color, v.Odometer, v.VIN, v.IsDefault,
		})
	}

	return []sheet{summary, fuel, maint, expenses, vehicles}
}

// WriteWorkbook writes a spreadsheet with a summary sheet followed by one
// sheet per collection.
func WriteWorkbook(w io.Writer, c pipeline.Collections, d model.Dashboard) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, sh := range workbookSheets(c, d) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return fmt.Errorf("naming sheet %s: %w", sh.name, err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sh.name, err)
		}

		if err := f.SetSheetRow(sh.name, "A1", &sh.headers); err != nil {
			return fmt.Errorf("writing %s header: %w", sh.name, err)
		}
		if err := f.SetRowStyle(sh.name, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("styling %s header: %w", sh.name, err)
		}
		for r, row := range sh.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				return fmt.Errorf("writing %s row %d: %w", sh.name, r+1, err)
			}
		}
		last, err := excelize.ColumnNumberToName(len(sh.headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.name, "A", last, 15); err != nil {
			return fmt.Errorf("sizing %s columns: %w", sh.name, err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
