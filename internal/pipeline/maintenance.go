package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

// Alert windows.
const (
	SoonDistanceKm = 1000
	SoonDays       = 30
)

// latestPerServiceType keeps the latest-dated record of each service type.
// Ties keep the record seen first. The result follows the order in which each
// service type first appears in records.
func latestPerServiceType(records []model.MaintenanceRecord) []model.MaintenanceRecord {
	index := make(map[string]int)
	var latest []model.MaintenanceRecord
	for _, r := range records {
		i, ok := index[r.ServiceType]
		if !ok {
			index[r.ServiceType] = len(latest)
			latest = append(latest, r)
			continue
		}
		if r.Date.After(latest[i].Date.Time) {
			latest[i] = r
		}
	}
	return latest
}

// MaintenanceAlerts returns the service types that are due soon or overdue,
// most urgent first.
//
// The odometer threshold is checked before the date threshold. An overdue
// date always replaces the odometer result; a date that is merely soon raises
// the priority to at least soon but leaves an existing overdue status and
// message in place.
func MaintenanceAlerts(records []model.MaintenanceRecord, currentOdometer float64, now time.Time) []model.MaintenanceAlert {
	alerts := []model.MaintenanceAlert{}
	for _, r := range latestPerServiceType(records) {
		alert := model.MaintenanceAlert{
			RecordID:    r.ID,
			ServiceType: r.ServiceType,
			Priority:    model.PriorityNone,
		}
		fired := false

		if due, ok := r.DueOdometer(); ok {
			remaining := due - currentOdometer
			switch {
			case remaining < 0:
				fired = true
				alert.Status = model.StatusOverdue
				alert.Priority = model.PriorityOverdue
				alert.Due = model.DueText{Kind: model.OverdueBy, Quantity: math.Abs(remaining), Unit: model.UnitKm}
			case remaining < SoonDistanceKm:
				fired = true
				alert.Status = model.StatusSoon
				alert.Priority = model.PrioritySoon
				alert.Due = model.DueText{Kind: model.DueIn, Quantity: remaining, Unit: model.UnitKm}
			}
		}

		if dueDate, ok := r.DueDate(); ok {
			days := daysUntil(dueDate, now)
			switch {
			case days < 0:
				fired = true
				alert.Status = model.StatusOverdue
				alert.Priority = model.PriorityOverdue
				alert.Due = model.DueText{Kind: model.OverdueBy, Quantity: math.Abs(days), Unit: model.UnitDays}
			case days < SoonDays:
				fired = true
				if alert.Priority < model.PriorityOverdue {
					alert.Status = model.StatusSoon
					alert.Due = model.DueText{Kind: model.DueIn, Quantity: days, Unit: model.UnitDays}
				}
				alert.Priority = max(alert.Priority, model.PrioritySoon)
			}
		}

		if fired {
			alert.Message = alert.Due.Message()
			alerts = append(alerts, alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority > alerts[j].Priority
	})
	return alerts
}

// daysUntil returns the number of calendar days from now's date, in now's
// location, to due. Any time of day before due's midnight counts as a whole
// day, and a DST shift in between does not change the count.
func daysUntil(due model.Date, now time.Time) float64 {
	today := model.DateOf(now)
	return math.Round(due.Sub(today.Time).Hours() / 24)
}
