package pipeline

import (
	"math"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

// DefaultVehicle returns the vehicle flagged as default, falling back to the
// first vehicle. It returns nil for an empty garage.
func DefaultVehicle(vehicles []model.Vehicle) *model.Vehicle {
	for i := range vehicles {
		if vehicles[i].IsDefault {
			v := vehicles[i]
			return &v
		}
	}
	if len(vehicles) == 0 {
		return nil
	}
	v := vehicles[0]
	return &v
}

// CurrentOdometer returns the whole-kilometer reading of the default vehicle,
// or 0 without vehicles.
func CurrentOdometer(vehicles []model.Vehicle) float64 {
	v := DefaultVehicle(vehicles)
	if v == nil {
		return 0
	}
	return math.Trunc(v.Odometer)
}

// BuildDashboard assembles the overview screen from a snapshot.
func BuildDashboard(c Collections, now time.Time) model.Dashboard {
	odometer := CurrentOdometer(c.Vehicles)
	alerts := MaintenanceAlerts(c.Maintenance, odometer, now)
	breakdown := AggregateBreakdown(c)

	return model.Dashboard{
		GeneratedAt:         now,
		TotalExpenses:       Totals(c),
		MonthlyExpenses:     MonthlyTotals(c, now),
		Breakdown:           breakdown,
		Efficiency:          ComputeFuelEfficiency(c.Fuel),
		Alerts:              alerts,
		UpcomingMaintenance: len(alerts),
		Trend:               MonthTrend(c, now),
		DefaultVehicle:      DefaultVehicle(c.Vehicles),
		CurrentOdometer:     odometer,
	}
}
