package ledger

import (
	"context"
	"fmt"

	"github.com/theirongolddev/carpro/internal/model"
)

func vehicleID(v model.Vehicle) int64 { return v.ID }

// exclusiveDefault clears IsDefault on every vehicle except keep.
func exclusiveDefault(vehicles []model.Vehicle, keep int64) {
	for i := range vehicles {
		vehicles[i].IsDefault = vehicles[i].ID == keep
	}
}

// AddVehicle appends v to the garage. The first vehicle always becomes the
// default; a vehicle added as default takes the flag from the others.
func (l *Ledger) AddVehicle(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	if err := l.check(v); err != nil {
		return model.Vehicle{}, err
	}

	vehicles, err := l.store.Vehicles(ctx)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("reading vehicles: %w", err)
	}
	v.ID = l.nextID(maxID(vehicles, vehicleID))
	if len(vehicles) == 0 || v.IsDefault {
		v.IsDefault = true
		exclusiveDefault(vehicles, v.ID)
	}
	vehicles = append(vehicles, v)
	if err := l.store.SaveVehicles(ctx, vehicles); err != nil {
		return model.Vehicle{}, fmt.Errorf("saving vehicles: %w", err)
	}
	return v, nil
}

// UpdateVehicle replaces the vehicle with v.ID. Marking it default clears the
// flag on the others.
func (l *Ledger) UpdateVehicle(ctx context.Context, v model.Vehicle) error {
	if err := l.check(v); err != nil {
		return err
	}

	vehicles, err := l.store.Vehicles(ctx)
	if err != nil {
		return fmt.Errorf("reading vehicles: %w", err)
	}
	idx := -1
	for i := range vehicles {
		if vehicles[i].ID == v.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("vehicle %d: %w", v.ID, ErrNotFound)
	}
	vehicles[idx] = v
	if v.IsDefault {
		exclusiveDefault(vehicles, v.ID)
	}
	return l.store.SaveVehicles(ctx, vehicles)
}

// SetDefaultVehicle makes id the only default vehicle.
func (l *Ledger) SetDefaultVehicle(ctx context.Context, id int64) error {
	vehicles, err := l.store.Vehicles(ctx)
	if err != nil {
		return fmt.Errorf("reading vehicles: %w", err)
	}
	found := false
	for _, v := range vehicles {
		if v.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("vehicle %d: %w", id, ErrNotFound)
	}
	exclusiveDefault(vehicles, id)
	return l.store.SaveVehicles(ctx, vehicles)
}

// RemoveVehicle deletes the vehicle with the given ID. Removing the default
// leaves no vehicle flagged; the first remaining vehicle then acts as default.
func (l *Ledger) RemoveVehicle(ctx context.Context, id int64) error {
	vehicles, err := l.store.Vehicles(ctx)
	if err != nil {
		return fmt.Errorf("reading vehicles: %w", err)
	}
	vehicles, err = removeByID(vehicles, id, vehicleID)
	if err != nil {
		return err
	}
	return l.store.SaveVehicles(ctx, vehicles)
}
