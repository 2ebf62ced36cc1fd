package pipeline

import (
	"testing"

	"github.com/theirongolddev/carpro/internal/model"
)

func TestDefaultVehicle(t *testing.T) {
	tests := []struct {
		name     string
		vehicles []model.Vehicle
		wantID   int64
		wantNil  bool
	}{
		{name: "empty", wantNil: true},
		{name: "flagged", vehicles: []model.Vehicle{{ID: 1}, {ID: 2, IsDefault: true}}, wantID: 2},
		{name: "falls back to first", vehicles: []model.Vehicle{{ID: 3}, {ID: 4}}, wantID: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultVehicle(tt.vehicles)
			if tt.wantNil {
				if v != nil {
					t.Fatalf("DefaultVehicle = %+v, want nil", v)
				}
				return
			}
			if v == nil || v.ID != tt.wantID {
				t.Fatalf("DefaultVehicle = %+v, want ID %d", v, tt.wantID)
			}
		})
	}
}

func TestCurrentOdometer(t *testing.T) {
	if got := CurrentOdometer(nil); got != 0 {
		t.Errorf("CurrentOdometer(nil) = %v, want 0", got)
	}
	if got := CurrentOdometer(sampleCollections().Vehicles); got != 10500 {
		t.Errorf("CurrentOdometer = %v, want 10500", got)
	}
}

func TestBuildDashboard(t *testing.T) {
	c := sampleCollections()
	c.Maintenance = append(c.Maintenance, model.MaintenanceRecord{
		ID: 10, Date: day(2025, 2, 1), ServiceType: "Battery", NextDueOdometer: floatPtr(10000),
	})

	d := BuildDashboard(c, refNow)
	if !d.GeneratedAt.Equal(refNow) {
		t.Errorf("GeneratedAt = %v, want %v", d.GeneratedAt, refNow)
	}
	if !approx(d.TotalExpenses, Totals(c)) {
		t.Errorf("TotalExpenses = %v, want %v", d.TotalExpenses, Totals(c))
	}
	if d.MonthlyExpenses > d.TotalExpenses {
		t.Errorf("MonthlyExpenses %v > TotalExpenses %v", d.MonthlyExpenses, d.TotalExpenses)
	}
	if d.Efficiency.Average != 20 {
		t.Errorf("Efficiency.Average = %v, want 20", d.Efficiency.Average)
	}
	if d.UpcomingMaintenance != 1 || len(d.Alerts) != 1 {
		t.Fatalf("UpcomingMaintenance = %d, alerts = %+v", d.UpcomingMaintenance, d.Alerts)
	}
	if d.Alerts[0].Message != "overdue by 500 km" {
		t.Errorf("alert message = %q, want overdue by 500 km", d.Alerts[0].Message)
	}
	if d.DefaultVehicle == nil || d.DefaultVehicle.ID != 9 {
		t.Errorf("DefaultVehicle = %+v, want ID 9", d.DefaultVehicle)
	}
	if len(d.Trend) != TrendMonths {
		t.Errorf("len(Trend) = %d, want %d", len(d.Trend), TrendMonths)
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(Collections{}, refNow)
	if d.TotalExpenses != 0 || d.MonthlyExpenses != 0 || d.UpcomingMaintenance != 0 {
		t.Errorf("dashboard = %+v, want zeros", d)
	}
	if d.Alerts == nil || d.Efficiency.History == nil {
		t.Error("empty dashboard should carry empty, non-nil slices")
	}
	if d.DefaultVehicle != nil {
		t.Errorf("DefaultVehicle = %+v, want nil", d.DefaultVehicle)
	}
}
