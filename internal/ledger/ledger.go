// Package ledger is the validated mutation path for carpro's collections.
//
// Every change reads the affected collection, applies the edit and writes the
// whole collection back through the record store. The single-default-vehicle
// rule is enforced here and nowhere else.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/store"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// ValidationError lists every rule a record failed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", f.Field, f.Rule, f.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", f.Field, f.Rule))
		}
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// Ledger applies validated edits to a RecordStore.
type Ledger struct {
	store    store.RecordStore
	validate *validator.Validate
	now      func() time.Time

	mu     sync.Mutex
	lastID int64
}

// New returns a Ledger writing to s.
func New(s store.RecordStore) *Ledger {
	return &Ledger{
		store:    s,
		validate: validator.New(),
		now:      time.Now,
	}
}

// WithClock replaces the clock used for record IDs.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// nextID returns a millisecond timestamp that is greater than every ID this
// ledger issued before and greater than floor.
func (l *Ledger) nextID(floor int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := max(l.now().UnixMilli(), l.lastID+1, floor+1)
	l.lastID = id
	return id
}

func (l *Ledger) check(v any) error {
	err := l.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}

func requireDate(d model.Date) error {
	if d.IsZero() {
		return &ValidationError{Fields: []FieldError{{Field: "Date", Rule: "required"}}}
	}
	return nil
}

func maxID[T any](items []T, id func(T) int64) int64 {
	var m int64
	for _, it := range items {
		m = max(m, id(it))
	}
	return m
}

func removeByID[T any](items []T, target int64, id func(T) int64) ([]T, error) {
	out := make([]T, 0, len(items))
	found := false
	for _, it := range items {
		if id(it) == target {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return nil, fmt.Errorf("id %d: %w", target, ErrNotFound)
	}
	return out, nil
}

// lineTotal returns liters * price rounded half away from zero to cents.
func lineTotal(liters, price float64) float64 {
	return decimal.NewFromFloat(liters).Mul(decimal.NewFromFloat(price)).Round(2).InexactFloat64()
}
