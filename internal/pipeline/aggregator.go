// Package pipeline computes carpro's derived analytics from record snapshots.
//
// Every function here is pure: it reads the collections it is given plus an
// explicit reference instant and never touches storage.
package pipeline

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/carpro/internal/model"
)

// TrendMonths is the number of buckets MonthTrend returns.
const TrendMonths = 6

// money accumulates currency amounts without float drift.
type money struct {
	sum decimal.Decimal
}

func (m *money) add(v float64) {
	m.sum = m.sum.Add(decimal.NewFromFloat(v))
}

func (m money) float() float64 {
	return m.sum.InexactFloat64()
}

// AggregateBreakdown returns lifetime spend split into fuel, maintenance and
// other expenses.
func AggregateBreakdown(c Collections) model.Breakdown {
	var fuel, maint, other money
	for _, e := range c.Fuel {
		fuel.add(e.TotalCost)
	}
	for _, r := range c.Maintenance {
		maint.add(r.Cost)
	}
	for _, r := range c.Expenses {
		other.add(r.Cost)
	}
	return model.Breakdown{
		Fuel:        fuel.float(),
		Maintenance: maint.float(),
		Other:       other.float(),
	}
}

// Totals returns the lifetime sum of every cost in c.
func Totals(c Collections) float64 {
	var total money
	forEachCost(c, func(_ model.Date, cost float64) {
		total.add(cost)
	})
	return total.float()
}

// MonthlyTotals returns the sum of every cost dated in now's calendar month,
// evaluated in now's location.
func MonthlyTotals(c Collections, now time.Time) float64 {
	var total money
	forEachCost(c, func(d model.Date, cost float64) {
		if d.SameMonth(now) {
			total.add(cost)
		}
	})
	return total.float()
}

// MonthTrend returns TrendMonths buckets, oldest first, ending with now's
// month. Months without records are zero.
func MonthTrend(c Collections, now time.Time) []model.MonthBucket {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]model.MonthBucket, TrendMonths)
	sums := make(map[int]*money, TrendMonths)
	for i := range buckets {
		m := first.AddDate(0, i-(TrendMonths-1), 0)
		buckets[i] = model.MonthBucket{
			Year:  m.Year(),
			Month: m.Month(),
			Label: m.Format("Jan"),
		}
		sums[monthKey(m.Year(), m.Month())] = &money{}
	}

	forEachCost(c, func(d model.Date, cost float64) {
		if s, ok := sums[monthKey(d.Year(), d.Month())]; ok {
			s.add(cost)
		}
	})

	for i := range buckets {
		buckets[i].Total = sums[monthKey(buckets[i].Year, buckets[i].Month)].float()
	}
	return buckets
}

func monthKey(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// forEachCost visits the date and cost of every fuel, maintenance and expense record.
func forEachCost(c Collections, fn func(model.Date, float64)) {
	for _, e := range c.Fuel {
		fn(e.Date, e.TotalCost)
	}
	for _, r := range c.Maintenance {
		fn(r.Date, r.Cost)
	}
	for _, r := range c.Expenses {
		fn(r.Date, r.Cost)
	}
}
