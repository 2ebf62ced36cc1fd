package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/cli"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/tui/components"
	"github.com/theirongolddev/carpro/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	d := a.dash
	loc := a.loc
	var b strings.Builder

	if v := d.DefaultVehicle; v != nil {
		vehicleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Background).Bold(true)
		odoStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
		b.WriteString(" " + vehicleStyle.Render(v.DisplayName()) +
			odoStyle.Render(fmt.Sprintf("  %s %s %s", loc.T("currentOdometer"), loc.Number(d.CurrentOdometer, 0), loc.T("km"))))
		b.WriteString("\n")
	} else {
		b.WriteString(" " + lipgloss.NewStyle().Foreground(t.TextDim).Render(loc.T("addFirstCar")))
		b.WriteString("\n")
	}

	efficiency := "-"
	if d.Efficiency.Valid {
		efficiency = fmt.Sprintf("%s %s", loc.Number(d.Efficiency.Average, 1), loc.T("kmPerLiter"))
	}
	maxPriority := model.PriorityNone
	for _, al := range d.Alerts {
		maxPriority = max(maxPriority, al.Priority)
	}

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: loc.T("totalExpenses"), Value: loc.Money(d.TotalExpenses), Hint: loc.T("lifetimeTotal")},
		{Label: loc.T("thisMonth"), Value: loc.Money(d.MonthlyExpenses), Hint: loc.T("currentMonthSpending")},
		{Label: loc.T("avgEfficiency"), Value: efficiency, Hint: loc.T("basedOnRecent")},
		{
			Label: loc.T("maintenanceDue"),
			Value: loc.Number(float64(d.UpcomingMaintenance), 0),
			Hint:  loc.T("itemsNeedAttention"),
			Color: t.ForPriority(maxPriority),
		},
	}, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}

	// Trend + breakdown
	trendVals := make([]float64, len(d.Trend))
	for i, m := range d.Trend {
		trendVals[i] = m.Total
	}
	trendCard := components.ContentCard(
		loc.T("monthlyExpensesTrend"),
		components.ColumnChart(trendVals, loc.TrendLabels(d.Trend), t.Blue, components.CardInnerWidth(halves[0]), 6),
		halves[0],
	)
	breakdownCard := components.ContentCard(loc.T("expenseBreakdown"), a.breakdownBody(halves[1]), halves[1])
	b.WriteString(a.pair(trendCard, breakdownCard))
	b.WriteString("\n")

	// Alerts + efficiency history
	alertsCard := components.ContentCard(loc.T("upcomingMaintenance"), a.alertsBody(halves[0]), halves[0])
	historyCard := components.ContentCard(loc.T("fuelEfficiencyHistory"), a.historyBody(halves[1]), halves[1])
	b.WriteString(a.pair(alertsCard, historyCard))

	return b.String()
}

// pair lays two cards side by side, or stacked in compact layouts.
func (a App) pair(left, right string) string {
	if a.isCompactLayout() {
		return left + "\n" + right
	}
	return components.CardRow([]string{left, right})
}

func (a App) breakdownBody(outer int) string {
	t := theme.Active
	bd := a.dash.Breakdown
	total := bd.Total()
	colors := t.Series()

	inner := components.CardInnerWidth(outer)
	labelW := 12
	barW := max(inner-labelW-8-lipgloss.Width(a.loc.Money(total)), 8)

	rows := []struct {
		key   string
		value float64
	}{
		{"fuel", bd.Fuel},
		{"maintenance", bd.Maintenance},
		{"other", bd.Other},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = components.ShareBar(a.loc.T(r.key), components.Share(r.value, total), colors[i], a.loc.Money(r.value), labelW, barW)
	}
	return strings.Join(lines, "\n")
}

func (a App) alertsBody(outer int) string {
	t := theme.Active
	if len(a.dash.Alerts) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(a.loc.T("noUpcomingMaintenance"))
	}

	inner := components.CardInnerWidth(outer)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	lines := make([]string, 0, len(a.dash.Alerts))
	for _, al := range a.dash.Alerts {
		status := lipgloss.NewStyle().
			Foreground(t.ForPriority(al.Priority)).
			Background(t.Surface).
			Bold(true).
			Render(fmt.Sprintf("%-8s", a.loc.Status(al.Status)))
		due := a.loc.Due(al.Due)
		nameW := max(inner-lipgloss.Width(status)-lipgloss.Width(due)-2, 6)
		lines = append(lines, status+" "+nameStyle.Render(fmt.Sprintf("%-*s", nameW, components.Truncate(al.ServiceType, nameW)))+" "+due)
	}
	return strings.Join(lines, "\n")
}

func (a App) historyBody(outer int) string {
	t := theme.Active
	eff := a.dash.Efficiency
	if len(eff.History) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(a.loc.T("noFuelEntries"))
	}

	peak := 0.0
	for _, p := range eff.History {
		peak = max(peak, p.KmPerLiter)
	}
	inner := components.CardInnerWidth(outer)
	labelW := 12
	barW := max(inner-labelW-18, 8)

	lines := make([]string, len(eff.History))
	for i, p := range eff.History {
		lines[i] = components.ValueBar(
			a.loc.Date(p.Date),
			components.Share(p.KmPerLiter, peak),
			t.Green,
			cli.FormatEfficiency(p.KmPerLiter, true),
			labelW, barW,
		)
	}
	return strings.Join(lines, "\n")
}
