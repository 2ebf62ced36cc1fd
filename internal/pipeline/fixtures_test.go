package pipeline

import (
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

var refNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}

func datePtr(d model.Date) *model.Date { return &d }

func floatPtr(f float64) *float64 { return &f }

func fuel(id int64, d model.Date, odo, liters, cost float64) model.FuelEntry {
	return model.FuelEntry{ID: id, Date: d, Odometer: odo, Liters: liters, TotalCost: cost}
}

func sampleCollections() Collections {
	return Collections{
		Fuel: []model.FuelEntry{
			fuel(1, day(2025, 3, 10), 10500, 35, 437.5),
			fuel(2, day(2025, 2, 1), 10000, 40, 480),
			fuel(3, day(2024, 6, 1), 9000, 30, 300),
		},
		Maintenance: []model.MaintenanceRecord{
			{ID: 4, Date: day(2025, 3, 2), ServiceType: "Oil Change", Cost: 800},
			{ID: 5, Date: day(2025, 1, 20), ServiceType: "Tires", Cost: 4000},
		},
		Expenses: []model.ExpenseRecord{
			{ID: 6, Date: day(2025, 3, 1), Category: model.ExpenseParking, Title: "Mall", Cost: 20},
			{ID: 7, Date: day(2024, 12, 31), Category: model.ExpenseInsurance, Title: "Yearly", Cost: 6000},
		},
		Vehicles: []model.Vehicle{
			{ID: 8, Make: "Kia", Model: "Cerato", Odometer: 9800},
			{ID: 9, Make: "Toyota", Model: "Corolla", Odometer: 10500.7, IsDefault: true},
		},
	}
}
