package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

func TestMaintenanceAlertsOdometerOverdue(t *testing.T) {
	records := []model.MaintenanceRecord{
		{ID: 1, Date: day(2025, 1, 1), ServiceType: "Oil Change", NextDueOdometer: floatPtr(19500)},
	}
	alerts := MaintenanceAlerts(records, 20000, refNow)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	a := alerts[0]
	if a.Status != model.StatusOverdue || a.Priority != model.PriorityOverdue {
		t.Errorf("alert = %s/%d, want overdue/2", a.Status, a.Priority)
	}
	if !strings.Contains(a.Message, "500") {
		t.Errorf("Message = %q, want it to contain 500", a.Message)
	}
	if a.Message != "overdue by 500 km" {
		t.Errorf("Message = %q, want %q", a.Message, "overdue by 500 km")
	}
	if a.Due != (model.DueText{Kind: model.OverdueBy, Quantity: 500, Unit: model.UnitKm}) {
		t.Errorf("Due = %+v", a.Due)
	}
}

func TestMaintenanceAlertsDateSoonOdometerFar(t *testing.T) {
	records := []model.MaintenanceRecord{{
		ID: 1, Date: day(2025, 1, 1), ServiceType: "Inspection",
		NextDueOdometer: floatPtr(25000),
		NextDueDate:     datePtr(day(2025, 3, 25)),
	}}
	alerts := MaintenanceAlerts(records, 20000, refNow)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	a := alerts[0]
	if a.Status != model.StatusSoon || a.Priority != model.PrioritySoon {
		t.Errorf("alert = %s/%d, want soon/1", a.Status, a.Priority)
	}
	if a.Message != "due in 10 days" {
		t.Errorf("Message = %q, want %q", a.Message, "due in 10 days")
	}
}

func TestMaintenanceAlertsTriggers(t *testing.T) {
	tests := []struct {
		name         string
		dueOdo       *float64
		dueDate      *model.Date
		wantAlert    bool
		wantStatus   model.AlertStatus
		wantPriority int
		wantMessage  string
	}{
		{name: "no thresholds"},
		{name: "zero odometer threshold is unset", dueOdo: floatPtr(0)},
		{name: "odometer far", dueOdo: floatPtr(21000)},
		{
			name: "odometer soon", dueOdo: floatPtr(20999),
			wantAlert: true, wantStatus: model.StatusSoon, wantPriority: 1, wantMessage: "due in 999 km",
		},
		{
			name: "odometer reached exactly", dueOdo: floatPtr(20000),
			wantAlert: true, wantStatus: model.StatusSoon, wantPriority: 1, wantMessage: "due in 0 km",
		},
		{name: "date far", dueDate: datePtr(day(2025, 4, 15))},
		{
			name: "date overdue", dueDate: datePtr(day(2025, 3, 10)),
			wantAlert: true, wantStatus: model.StatusOverdue, wantPriority: 2, wantMessage: "overdue by 5 days",
		},
		{
			name: "date today", dueDate: datePtr(day(2025, 3, 15)),
			wantAlert: true, wantStatus: model.StatusSoon, wantPriority: 1, wantMessage: "due in 0 days",
		},
		{
			name: "overdue date replaces soon odometer", dueOdo: floatPtr(20500), dueDate: datePtr(day(2025, 3, 1)),
			wantAlert: true, wantStatus: model.StatusOverdue, wantPriority: 2, wantMessage: "overdue by 14 days",
		},
		{
			name: "overdue date replaces overdue odometer", dueOdo: floatPtr(19000), dueDate: datePtr(day(2025, 3, 1)),
			wantAlert: true, wantStatus: model.StatusOverdue, wantPriority: 2, wantMessage: "overdue by 14 days",
		},
		{
			name: "soon date keeps overdue odometer", dueOdo: floatPtr(19000), dueDate: datePtr(day(2025, 3, 20)),
			wantAlert: true, wantStatus: model.StatusOverdue, wantPriority: 2, wantMessage: "overdue by 1000 km",
		},
		{
			name: "soon date replaces soon odometer message", dueOdo: floatPtr(20100), dueDate: datePtr(day(2025, 3, 20)),
			wantAlert: true, wantStatus: model.StatusSoon, wantPriority: 1, wantMessage: "due in 5 days",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []model.MaintenanceRecord{{
				ID: 1, Date: day(2025, 1, 1), ServiceType: "Oil Change",
				NextDueOdometer: tt.dueOdo, NextDueDate: tt.dueDate,
			}}
			alerts := MaintenanceAlerts(records, 20000, refNow)
			if !tt.wantAlert {
				if len(alerts) != 0 {
					t.Fatalf("alerts = %+v, want none", alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("len(alerts) = %d, want 1", len(alerts))
			}
			a := alerts[0]
			if a.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", a.Status, tt.wantStatus)
			}
			if a.Priority != tt.wantPriority {
				t.Errorf("Priority = %d, want %d", a.Priority, tt.wantPriority)
			}
			if a.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", a.Message, tt.wantMessage)
			}
		})
	}
}

func TestMaintenanceAlertsLatestRepresentativeOnly(t *testing.T) {
	records := []model.MaintenanceRecord{
		// Older record would be overdue; the newer one is far from due.
		{ID: 1, Date: day(2024, 6, 1), ServiceType: "Oil Change", NextDueOdometer: floatPtr(15000)},
		{ID: 2, Date: day(2025, 2, 1), ServiceType: "Oil Change", NextDueOdometer: floatPtr(30000)},
	}
	if alerts := MaintenanceAlerts(records, 20000, refNow); len(alerts) != 0 {
		t.Fatalf("alerts = %+v, want none", alerts)
	}

	records[0], records[1] = records[1], records[0]
	if alerts := MaintenanceAlerts(records, 20000, refNow); len(alerts) != 0 {
		t.Fatalf("reordered: alerts = %+v, want none", alerts)
	}
}

func TestMaintenanceAlertsTieKeepsFirstSeen(t *testing.T) {
	records := []model.MaintenanceRecord{
		{ID: 1, Date: day(2025, 2, 1), ServiceType: "Brakes", NextDueOdometer: floatPtr(19000)},
		{ID: 2, Date: day(2025, 2, 1), ServiceType: "Brakes", NextDueOdometer: floatPtr(40000)},
	}
	alerts := MaintenanceAlerts(records, 20000, refNow)
	if len(alerts) != 1 || alerts[0].RecordID != 1 {
		t.Fatalf("alerts = %+v, want one alert from record 1", alerts)
	}
}

func TestMaintenanceAlertsSortedByPriority(t *testing.T) {
	records := []model.MaintenanceRecord{
		{ID: 1, Date: day(2025, 1, 1), ServiceType: "Tires", NextDueOdometer: floatPtr(20500)},
		{ID: 2, Date: day(2025, 1, 1), ServiceType: "Battery", NextDueDate: datePtr(day(2025, 3, 20))},
		{ID: 3, Date: day(2025, 1, 1), ServiceType: "Oil Change", NextDueOdometer: floatPtr(19000)},
		{ID: 4, Date: day(2025, 1, 1), ServiceType: "Inspection"},
	}
	alerts := MaintenanceAlerts(records, 20000, refNow)
	var got []string
	for _, a := range alerts {
		got = append(got, a.ServiceType)
	}
	want := []string{"Oil Change", "Tires", "Battery"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestMaintenanceAlertsDaysUseNowLocation(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	now := time.Date(2025, time.March, 15, 23, 0, 0, 0, loc)
	records := []model.MaintenanceRecord{
		{ID: 1, Date: day(2025, 1, 1), ServiceType: "Battery", NextDueDate: datePtr(day(2025, 3, 17))},
	}
	alerts := MaintenanceAlerts(records, 0, now)
	if len(alerts) != 1 || alerts[0].Message != "due in 2 days" {
		t.Fatalf("alerts = %+v, want one alert due in 2 days", alerts)
	}
}

func TestMaintenanceAlertsDaysAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	tests := []struct {
		name string
		now  time.Time
		due  model.Date
		want string
	}{
		// Clocks fall back on 2025-11-02: that day is 25 hours long.
		{"fall back", time.Date(2025, time.November, 2, 0, 30, 0, 0, loc), day(2025, 11, 4), "due in 2 days"},
		// Clocks spring forward on 2025-03-09: that day is 23 hours long.
		{"spring forward", time.Date(2025, time.March, 8, 23, 30, 0, 0, loc), day(2025, 3, 10), "due in 2 days"},
		{"due today", time.Date(2025, time.November, 2, 23, 30, 0, 0, loc), day(2025, 11, 2), "due in 0 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []model.MaintenanceRecord{
				{ID: 1, Date: day(2025, 1, 1), ServiceType: "Battery", NextDueDate: datePtr(tt.due)},
			}
			alerts := MaintenanceAlerts(records, 0, tt.now)
			if len(alerts) != 1 || alerts[0].Message != tt.want {
				t.Fatalf("alerts = %+v, want one alert %q", alerts, tt.want)
			}
		})
	}
}
