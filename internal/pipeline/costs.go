package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

// CategoryCost holds the spend for one expense category.
type CategoryCost struct {
	Category     model.ExpenseCategory
	Records      int
	TotalCost    float64
	SharePercent float64
}

// AggregateExpenseCategories splits other expenses by category, most expensive
// first. Categories without records are omitted.
func AggregateExpenseCategories(expenses []model.ExpenseRecord) []CategoryCost {
	byCategory := make(map[model.ExpenseCategory]*money)
	counts := make(map[model.ExpenseCategory]int)
	var total money

	for _, r := range expenses {
		m, ok := byCategory[r.Category]
		if !ok {
			m = &money{}
			byCategory[r.Category] = m
		}
		m.add(r.Cost)
		counts[r.Category]++
		total.add(r.Cost)
	}

	rows := make([]CategoryCost, 0, len(byCategory))
	grand := total.float()
	for cat, m := range byCategory {
		row := CategoryCost{Category: cat, Records: counts[cat], TotalCost: m.float()}
		if grand > 0 {
			row.SharePercent = row.TotalCost / grand * 100
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalCost != rows[j].TotalCost {
			return rows[i].TotalCost > rows[j].TotalCost
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// FuelSummary totals the fuel collection. AvgPricePerL is zero when no liters
// were recorded.
func FuelSummary(fuel []model.FuelEntry) model.FuelSummary {
	var cost, liters money
	for _, e := range fuel {
		cost.add(e.TotalCost)
		liters.add(e.Liters)
	}
	s := model.FuelSummary{
		Entries:     len(fuel),
		TotalCost:   cost.float(),
		TotalLiters: liters.float(),
	}
	if s.TotalLiters > 0 {
		s.AvgPricePerL = cost.sum.Div(liters.sum).Round(2).InexactFloat64()
	}
	return s
}

// MaintenanceSummary totals the maintenance collection. LastService is the
// date of the first record in collection order, which is the newest insert.
func MaintenanceSummary(records []model.MaintenanceRecord) model.MaintenanceSummary {
	var cost money
	s := model.MaintenanceSummary{Records: len(records)}
	for _, r := range records {
		cost.add(r.Cost)
		if r.HasDueThreshold() {
			s.WithDueDate++
		}
	}
	s.TotalCost = cost.float()
	if len(records) > 0 {
		last := records[0].Date
		s.LastService = &last
	}
	return s
}

// ExpenseSummary totals other expenses overall and for now's calendar month.
func ExpenseSummary(expenses []model.ExpenseRecord, now time.Time) model.ExpenseSummary {
	var total, monthly money
	for _, r := range expenses {
		total.add(r.Cost)
		if r.Date.SameMonth(now) {
			monthly.add(r.Cost)
		}
	}
	return model.ExpenseSummary{
		Records:     len(expenses),
		TotalCost:   total.float(),
		MonthlyCost: monthly.float(),
	}
}
