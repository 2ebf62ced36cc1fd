package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/store"
)

// Collections is an immutable snapshot of every record collection.
type Collections struct {
	Fuel        []model.FuelEntry
	Maintenance []model.MaintenanceRecord
	Expenses    []model.ExpenseRecord
	Vehicles    []model.Vehicle
	Language    string
}

// Empty reports whether the snapshot holds no records and no vehicles.
func (c Collections) Empty() bool {
	return len(c.Fuel) == 0 && len(c.Maintenance) == 0 &&
		len(c.Expenses) == 0 && len(c.Vehicles) == 0
}

// Load reads every collection from s. The reads are independent and run
// concurrently; the first failure cancels the rest.
func Load(ctx context.Context, s store.RecordStore) (Collections, error) {
	var c Collections
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fuel, err := s.FuelEntries(ctx)
		if err != nil {
			return fmt.Errorf("loading fuel entries: %w", err)
		}
		c.Fuel = fuel
		return nil
	})
	g.Go(func() error {
		records, err := s.MaintenanceRecords(ctx)
		if err != nil {
			return fmt.Errorf("loading maintenance records: %w", err)
		}
		c.Maintenance = records
		return nil
	})
	g.Go(func() error {
		records, err := s.Expenses(ctx)
		if err != nil {
			return fmt.Errorf("loading expenses: %w", err)
		}
		c.Expenses = records
		return nil
	})
	g.Go(func() error {
		vehicles, err := s.Vehicles(ctx)
		if err != nil {
			return fmt.Errorf("loading vehicles: %w", err)
		}
		c.Vehicles = vehicles
		return nil
	})
	g.Go(func() error {
		lang, err := s.Setting(ctx, store.SettingLanguage)
		if err != nil {
			return fmt.Errorf("loading language: %w", err)
		}
		c.Language = lang
		return nil
	})

	if err := g.Wait(); err != nil {
		return Collections{}, err
	}
	return c, nil
}
