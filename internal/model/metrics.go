package model

import (
	"fmt"
	"strconv"
	"time"
)

// Breakdown splits lifetime spend into the three dashboard buckets.
type Breakdown struct {
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Other       float64 `json:"other"`
}

// Total returns the sum of all three buckets.
func (b Breakdown) Total() float64 {
	return b.Fuel + b.Maintenance + b.Other
}

// MonthBucket holds the spend for one calendar month.
type MonthBucket struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Total float64    `json:"total"`
}

// EfficiencyPoint is the km/l of one contributing pair of fill-ups, tagged with
// the later fill-up's date.
type EfficiencyPoint struct {
	Date       Date    `json:"date"`
	Distance   float64 `json:"distance_km"`
	Liters     float64 `json:"liters"`
	KmPerLiter float64 `json:"km_per_liter"`
}

// FuelEfficiency holds the lifetime average and the recent history.
// Average is rounded to one decimal and only meaningful when Valid is set.
type FuelEfficiency struct {
	Average       float64           `json:"average_km_per_liter"`
	Valid         bool              `json:"valid"`
	TotalDistance float64           `json:"total_distance_km"`
	TotalLiters   float64           `json:"total_liters"`
	Pairs         int               `json:"contributing_pairs"`
	History       []EfficiencyPoint `json:"history"`
}

// AlertStatus is the urgency label of a maintenance alert.
type AlertStatus string

const (
	StatusSoon    AlertStatus = "soon"
	StatusOverdue AlertStatus = "overdue"
)

// Alert priorities; higher sorts first.
const (
	PriorityNone    = 0
	PrioritySoon    = 1
	PriorityOverdue = 2
)

// DueKind says whether a due text counts down or reports lateness.
type DueKind string

const (
	DueIn     DueKind = "dueIn"
	OverdueBy DueKind = "overdueBy"
)

// DueUnit is the unit of a due quantity.
type DueUnit string

const (
	UnitKm   DueUnit = "km"
	UnitDays DueUnit = "days"
)

// DueText is the structured form of an alert message, e.g. "overdue by 500 km".
type DueText struct {
	Kind     DueKind `json:"kind"`
	Quantity float64 `json:"quantity"`
	Unit     DueUnit `json:"unit"`
}

// Message renders the text in English.
func (d DueText) Message() string {
	prefix := "due in"
	if d.Kind == OverdueBy {
		prefix = "overdue by"
	}
	return fmt.Sprintf("%s %s %s", prefix, strconv.FormatFloat(d.Quantity, 'f', -1, 64), d.Unit)
}

// MaintenanceAlert flags a service type whose next service is due soon or overdue.
type MaintenanceAlert struct {
	RecordID    int64       `json:"record_id"`
	ServiceType string      `json:"service_type"`
	Status      AlertStatus `json:"status"`
	Priority    int         `json:"priority"`
	Due         DueText     `json:"due"`
	Message     string      `json:"message"`
}

// FuelSummary backs the fuel page cards.
type FuelSummary struct {
	Entries      int     `json:"entries"`
	TotalCost    float64 `json:"total_cost"`
	TotalLiters  float64 `json:"total_liters"`
	AvgPricePerL float64 `json:"avg_price_per_liter"`
}

// MaintenanceSummary backs the maintenance page cards.
type MaintenanceSummary struct {
	Records     int     `json:"records"`
	TotalCost   float64 `json:"total_cost"`
	LastService *Date   `json:"last_service,omitempty"`
	WithDueDate int     `json:"with_due_threshold"`
}

// ExpenseSummary backs the expenses page cards.
type ExpenseSummary struct {
	Records     int     `json:"records"`
	TotalCost   float64 `json:"total_cost"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// Dashboard is everything the overview screen renders.
type Dashboard struct {
	GeneratedAt         time.Time          `json:"generated_at"`
	TotalExpenses       float64            `json:"total_expenses"`
	MonthlyExpenses     float64            `json:"monthly_expenses"`
	Breakdown           Breakdown          `json:"breakdown"`
	Efficiency          FuelEfficiency     `json:"efficiency"`
	Alerts              []MaintenanceAlert `json:"alerts"`
	UpcomingMaintenance int                `json:"upcoming_maintenance"`
	Trend               []MonthBucket      `json:"trend"`
	DefaultVehicle      *Vehicle           `json:"default_vehicle,omitempty"`
	CurrentOdometer     float64            `json:"current_odometer"`
}
