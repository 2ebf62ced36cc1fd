package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/carpro/internal/model"
)

type object = map[string]any

func decodeList[T any](v any, key string, from func(object) (T, error)) ([]T, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrInvalidBackup, key)
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		obj, ok := item.(object)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrInvalidBackup, key, i)
		}
		rec, err := from(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrInvalidBackup, key, i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// number reads a numeric field that may be a JSON number or a numeric string.
// Missing, empty and unparseable values read as (0, false).
func number(o object, key string) (float64, bool) {
	var f float64
	switch v := o[key].(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if v {
			f = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func num(o object, key string) float64 {
	f, _ := number(o, key)
	return f
}

func optionalNum(o object, key string) *float64 {
	f, ok := number(o, key)
	if !ok {
		return nil
	}
	return &f
}

func str(o object, key string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func boolean(o object, key string) bool {
	switch v := o[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case float64:
		return v != 0
	}
	return false
}

func date(o object, key string) (model.Date, error) {
	s := str(o, key)
	if strings.TrimSpace(s) == "" {
		return model.Date{}, fmt.Errorf("%s is required", key)
	}
	return model.ParseDate(s)
}

func optionalDate(o object, key string) (*model.Date, error) {
	s := str(o, key)
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func id(o object) int64 {
	return int64(num(o, "id"))
}

func fuelFrom(o object) (model.FuelEntry, error) {
	d, err := date(o, "date")
	if err != nil {
		return model.FuelEntry{}, err
	}
	return model.FuelEntry{
		ID:            id(o),
		Date:          d,
		Odometer:      num(o, "odometer"),
		Liters:        num(o, "liters"),
		PricePerLiter: num(o, "pricePerLiter"),
		TotalCost:     num(o, "totalCost"),
		FullTank:      boolean(o, "fullTank"),
		Station:       str(o, "station"),
	}, nil
}

func maintenanceFrom(o object) (model.MaintenanceRecord, error) {
	d, err := date(o, "date")
	if err != nil {
		return model.MaintenanceRecord{}, err
	}
	due, err := optionalDate(o, "nextDueDate")
	if err != nil {
		return model.MaintenanceRecord{}, err
	}
	return model.MaintenanceRecord{
		ID:              id(o),
		Date:            d,
		ServiceType:     str(o, "serviceType"),
		Odometer:        num(o, "odometer"),
		Cost:            num(o, "cost"),
		Provider:        str(o, "provider"),
		NextDueDate:     due,
		NextDueOdometer: optionalNum(o, "nextDueOdometer"),
		Notes:           str(o, "notes"),
	}, nil
}

func expenseFrom(o object) (model.ExpenseRecord, error) {
	d, err := date(o, "date")
	if err != nil {
		return model.ExpenseRecord{}, err
	}
	return model.ExpenseRecord{
		ID:       id(o),
		Date:     d,
		Category: model.ExpenseCategory(str(o, "category")),
		Title:    str(o, "title"),
		Cost:     num(o, "cost"),
		Notes:    str(o, "notes"),
	}, nil
}

func vehicleFrom(o object) (model.Vehicle, error) {
	return model.Vehicle{
		ID:        id(o),
		Make:      str(o, "make"),
		Model:     str(o, "model"),
		Year:      int(num(o, "year")),
		Plate:     str(o, "plate"),
		Color:     str(o, "color"),
		Odometer:  num(o, "odometer"),
		VIN:       str(o, "vin"),
		IsDefault: boolean(o, "isDefault"),
	}, nil
}
