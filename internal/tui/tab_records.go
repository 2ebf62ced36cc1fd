package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/tui/components"
	"github.com/theirongolddev/carpro/internal/tui/theme"
)

// column is a table column sized by weight.
type column struct {
	key    string
	weight int
}

var tableColumns = map[int][]column{
	tabFuel: {
		{"date", 3}, {"odometer", 3}, {"liters", 2}, {"pricePerLiter", 3},
		{"totalCost", 3}, {"fullTank", 2}, {"station", 4},
	},
	tabMaintenance: {
		{"date", 3}, {"serviceType", 4}, {"odometer", 3}, {"cost", 3},
		{"provider", 3}, {"nextDue", 4},
	},
	tabExpenses: {
		{"date", 3}, {"category", 3}, {"titleDescription", 5}, {"cost", 3},
	},
	tabVehicles: {
		{"vehicles", 5}, {"plate", 3}, {"color", 2}, {"odometer", 3},
		{"vin", 4}, {"default", 2},
	},
}

func (a App) columns(tab int, width int) []table.Column {
	defs := tableColumns[tab]
	total := 0
	for _, c := range defs {
		total += c.weight
	}
	// Each cell carries one column of padding on both sides.
	avail := max(width-2*len(defs), len(defs)*4)

	cols := make([]table.Column, len(defs))
	used := 0
	for i, c := range defs {
		w := avail * c.weight / total
		if i == len(defs)-1 {
			w = avail - used
		}
		used += w
		cols[i] = table.Column{Title: a.loc.T(c.key), Width: w}
	}
	return cols
}

func (a App) rows(tab int) []table.Row {
	loc := a.loc
	money := func(v float64) string { return loc.Money(v) }
	km := func(v float64) string { return loc.Number(v, 0) + " " + loc.T("km") }
	check := func(b bool) string {
		if b {
			return "✓"
		}
		return ""
	}

	var rows []table.Row
	switch tab {
	case tabFuel:
		for _, e := range a.data.Fuel {
			station := e.Station
			if station == "" {
				station = loc.T("unknownStation")
			}
			rows = append(rows, table.Row{
				loc.Date(e.Date), km(e.Odometer), loc.Number(e.Liters, 2),
				money(e.PricePerLiter), money(e.TotalCost), check(e.FullTank), station,
			})
		}
	case tabMaintenance:
		for _, r := range a.data.Maintenance {
			var next []string
			if d, ok := r.DueDate(); ok {
				next = append(next, loc.Date(d))
			}
			if o, ok := r.DueOdometer(); ok {
				next = append(next, km(o))
			}
			rows = append(rows, table.Row{
				loc.Date(r.Date), r.ServiceType, km(r.Odometer), money(r.Cost),
				r.Provider, strings.Join(next, " / "),
			})
		}
	case tabExpenses:
		for _, r := range a.data.Expenses {
			rows = append(rows, table.Row{
				loc.Date(r.Date), loc.Category(r.Category), r.Title, money(r.Cost),
			})
		}
	case tabVehicles:
		for _, v := range a.data.Vehicles {
			rows = append(rows, table.Row{
				v.DisplayName(), v.Plate, v.Color, km(v.Odometer), v.VIN, check(v.IsDefault),
			})
		}
	}
	return rows
}

// buildTable renders tab's records into a table that fits inside a content
// card of outer width cw.
func (a App) buildTable(tab int, cw int) table.Model {
	t := theme.Active

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.TextMuted).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(t.TextPrimary)
	styles.Selected = styles.Selected.
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(false)

	tbl := table.New(
		table.WithColumns(a.columns(tab, components.CardInnerWidth(cw))),
		table.WithRows(a.rows(tab)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	tbl.SetStyles(styles)
	return tbl
}

// renderTable sizes the tab's table to the remaining height below header.
func (a App) renderTable(tab int, header string, cw, contentH int, empty string) string {
	t := theme.Active
	tbl := a.tables[tab]

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}
	if len(tbl.Rows()) == 0 {
		b.WriteString(components.ContentCard("", lipgloss.NewStyle().
			Foreground(t.TextDim).Background(t.Surface).Render(empty), cw))
		return b.String()
	}

	used := lipgloss.Height(header)
	tbl.SetHeight(max(contentH-used-4, 3))
	b.WriteString(components.ContentCard(a.loc.T("entries")+": "+a.loc.Number(float64(len(tbl.Rows())), 0), tbl.View(), cw))
	return b.String()
}

func (a App) renderFuelTab(cw, contentH int) string {
	s := a.fuelSum
	header := components.MetricCardRow([]components.Metric{
		{Label: a.loc.T("totalCost"), Value: a.loc.Money(s.TotalCost)},
		{Label: a.loc.T("totalVolume"), Value: a.loc.Number(s.TotalLiters, 2) + " " + a.loc.T("liters")},
		{Label: a.loc.T("avgPrice"), Value: a.loc.Money(s.AvgPricePerL)},
	}, cw)
	return a.renderTable(tabFuel, header, cw, contentH, a.loc.T("noFuelEntries"))
}

func (a App) renderMaintenanceTab(cw, contentH int) string {
	s := a.maintSum
	last := "-"
	if s.LastService != nil {
		last = a.loc.Date(*s.LastService)
	}
	header := components.MetricCardRow([]components.Metric{
		{Label: a.loc.T("totalCost"), Value: a.loc.Money(s.TotalCost)},
		{Label: a.loc.T("lastService"), Value: last},
		{Label: a.loc.T("scheduled"), Value: a.loc.Number(float64(s.WithDueDate), 0)},
	}, cw)
	return a.renderTable(tabMaintenance, header, cw, contentH, a.loc.T("noMaintenanceRecords"))
}

func (a App) renderExpensesTab(cw, contentH int) string {
	s := a.expenseSum
	header := components.MetricCardRow([]components.Metric{
		{Label: a.loc.T("totalSpent"), Value: a.loc.Money(s.TotalCost)},
		{Label: a.loc.T("thisMonth"), Value: a.loc.Money(s.MonthlyCost)},
		{Label: a.loc.T("entries"), Value: a.loc.Number(float64(s.Records), 0)},
	}, cw)

	if len(a.categories) > 0 && !a.isCompactLayout() {
		t := theme.Active
		inner := components.CardInnerWidth(cw)
		lines := make([]string, len(a.categories))
		for i, c := range a.categories {
			lines[i] = components.ShareBar(a.loc.Category(c.Category), components.Share(c.TotalCost, s.TotalCost),
				t.Magenta, a.loc.Money(c.TotalCost), 16, max(inner/2, 10))
		}
		header += "\n" + components.ContentCard(a.loc.T("category"), strings.Join(lines, "\n"), cw)
	}
	return a.renderTable(tabExpenses, header, cw, contentH, a.loc.T("noExpensesRecords"))
}

func (a App) renderVehiclesTab(cw, contentH int) string {
	return a.renderTable(tabVehicles, "", cw, contentH, a.loc.T("noVehicles"))
}

// selectedVehicle returns the vehicle under the cursor on the vehicles tab.
func (a App) selectedVehicle() (model.Vehicle, bool) {
	tbl, ok := a.tables[tabVehicles]
	if !ok || len(a.data.Vehicles) == 0 {
		return model.Vehicle{}, false
	}
	i := tbl.Cursor()
	if i < 0 || i >= len(a.data.Vehicles) {
		return model.Vehicle{}, false
	}
	return a.data.Vehicles[i], true
}
