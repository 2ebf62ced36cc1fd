// Package model defines the record and view-model types for carpro.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day. The wrapped time is always
// midnight UTC so Year/Month/Day read back the calendar fields unchanged.
type Date struct {
	time.Time
}

// NewDate returns the calendar date y-m-d.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses YYYY-MM-DD. Full RFC 3339 timestamps are accepted too and
// truncated to their date part.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dateLayout, s); err == nil {
		return Date{d}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}

// String formats the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// In returns midnight of the date in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// SameMonth reports whether the date falls in t's calendar month, using t's location.
func (d Date) SameMonth(t time.Time) bool {
	return d.Year() == t.Year() && d.Month() == t.Month()
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Empty strings decode to the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Service types offered by the maintenance form. Free-form types are allowed.
var ServiceTypes = []string{
	"Oil Change",
	"Tires",
	"Brakes",
	"Battery",
	"Inspection",
	"Repair",
	"Other",
}

// ExpenseCategory tags a miscellaneous expense.
type ExpenseCategory string

const (
	ExpenseParking     ExpenseCategory = "expenseParking"
	ExpenseInsurance   ExpenseCategory = "expenseInsurance"
	ExpenseFine        ExpenseCategory = "expenseFine"
	ExpenseTax         ExpenseCategory = "expenseTax"
	ExpenseCarWash     ExpenseCategory = "expenseCarWash"
	ExpenseAccessories ExpenseCategory = "expenseAccessories"
	ExpenseToll        ExpenseCategory = "expenseToll"
	ExpenseOther       ExpenseCategory = "expenseOther"
)

// ExpenseCategories lists every category in form order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseParking, ExpenseInsurance, ExpenseFine, ExpenseTax,
	ExpenseCarWash, ExpenseAccessories, ExpenseToll, ExpenseOther,
}

// FuelEntry is one fill-up.
type FuelEntry struct {
	ID            int64   `json:"id"`
	Date          Date    `json:"date"`
	Odometer      float64 `json:"odometer" validate:"gte=0"`
	Liters        float64 `json:"liters" validate:"gt=0"`
	PricePerLiter float64 `json:"pricePerLiter" validate:"gte=0"`
	TotalCost     float64 `json:"totalCost" validate:"gte=0"`
	FullTank      bool    `json:"fullTank"`
	Station       string  `json:"station,omitempty"`
}

// MaintenanceRecord is one service event. NextDueDate and NextDueOdometer are
// optional thresholds for the next service of the same type.
type MaintenanceRecord struct {
	ID              int64    `json:"id"`
	Date            Date     `json:"date"`
	ServiceType     string   `json:"serviceType" validate:"required"`
	Odometer        float64  `json:"odometer" validate:"gte=0"`
	Cost            float64  `json:"cost" validate:"gte=0"`
	Provider        string   `json:"provider,omitempty"`
	NextDueDate     *Date    `json:"nextDueDate,omitempty"`
	NextDueOdometer *float64 `json:"nextDueOdometer,omitempty" validate:"omitempty,gte=0"`
	Notes           string   `json:"notes,omitempty"`
}

// DueOdometer returns the odometer threshold, if one is set. A zero threshold
// counts as unset.
func (m MaintenanceRecord) DueOdometer() (float64, bool) {
	if m.NextDueOdometer == nil || *m.NextDueOdometer == 0 {
		return 0, false
	}
	return *m.NextDueOdometer, true
}

// DueDate returns the date threshold, if one is set.
func (m MaintenanceRecord) DueDate() (Date, bool) {
	if m.NextDueDate == nil || m.NextDueDate.IsZero() {
		return Date{}, false
	}
	return *m.NextDueDate, true
}

// HasDueThreshold reports whether either threshold is set.
func (m MaintenanceRecord) HasDueThreshold() bool {
	_, byKm := m.DueOdometer()
	_, byDate := m.DueDate()
	return byKm || byDate
}

// ExpenseRecord is a miscellaneous vehicle expense (parking, tolls, insurance...).
type ExpenseRecord struct {
	ID       int64           `json:"id"`
	Date     Date            `json:"date"`
	Category ExpenseCategory `json:"category" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Cost     float64         `json:"cost" validate:"gte=0"`
	Notes    string          `json:"notes,omitempty"`
}

// Vehicle is a garage entry. At most one vehicle is the default.
type Vehicle struct {
	ID        int64   `json:"id"`
	Make      string  `json:"make" validate:"required"`
	Model     string  `json:"model" validate:"required"`
	Year      int     `json:"year" validate:"omitempty,gte=1886,lte=2100"`
	Plate     string  `json:"plate"`
	Color     string  `json:"color"`
	Odometer  float64 `json:"odometer" validate:"gte=0"`
	VIN       string  `json:"vin,omitempty"`
	IsDefault bool    `json:"isDefault"`
}

// DisplayName returns "Year Make Model", skipping an unset year.
func (v Vehicle) DisplayName() string {
	name := strings.TrimSpace(v.Make + " " + v.Model)
	if v.Year > 0 {
		return fmt.Sprintf("%d %s", v.Year, name)
	}
	return name
}
