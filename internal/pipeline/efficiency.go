package pipeline

import (
	"math"
	"sort"

	"github.com/theirongolddev/carpro/internal/model"
)

// EfficiencyHistory is how many recent contributing pairs FuelEfficiency keeps.
const EfficiencyHistory = 5

// ComputeFuelEfficiency derives the average km per liter across consecutive
// fill-ups. Entries are ordered by date (stable for equal dates); a pair
// contributes only when the odometer advanced and the later fill-up has fuel.
func ComputeFuelEfficiency(fuel []model.FuelEntry) model.FuelEfficiency {
	var eff model.FuelEfficiency
	eff.History = []model.EfficiencyPoint{}
	if len(fuel) < 2 {
		return eff
	}

	sorted := make([]model.FuelEntry, len(fuel))
	copy(sorted, fuel)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	var points []model.EfficiencyPoint
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		distance := cur.Odometer - prev.Odometer
		if distance <= 0 || cur.Liters <= 0 {
			continue
		}
		eff.TotalDistance += distance
		eff.TotalLiters += cur.Liters
		points = append(points, model.EfficiencyPoint{
			Date:       cur.Date,
			Distance:   distance,
			Liters:     cur.Liters,
			KmPerLiter: distance / cur.Liters,
		})
	}

	eff.Pairs = len(points)
	if eff.TotalLiters > 0 {
		eff.Average = round1(eff.TotalDistance / eff.TotalLiters)
		eff.Valid = true
	}
	if len(points) > EfficiencyHistory {
		points = points[len(points)-EfficiencyHistory:]
	}
	eff.History = append(eff.History, points...)
	return eff
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
