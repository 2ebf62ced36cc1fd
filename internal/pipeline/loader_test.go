package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/store"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	c := sampleCollections()
	if err := s.SaveFuelEntries(ctx, c.Fuel); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveMaintenanceRecords(ctx, c.Maintenance); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveExpenses(ctx, c.Expenses); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveVehicles(ctx, c.Vehicles); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting(ctx, store.SettingLanguage, "ar"); err != nil {
		t.Fatal(err)
	}

	got, err := Load(ctx, s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Fuel) != 3 || len(got.Maintenance) != 2 || len(got.Expenses) != 2 || len(got.Vehicles) != 2 {
		t.Errorf("loaded sizes = %d/%d/%d/%d, want 3/2/2/2",
			len(got.Fuel), len(got.Maintenance), len(got.Expenses), len(got.Vehicles))
	}
	if got.Language != "ar" {
		t.Errorf("Language = %q, want ar", got.Language)
	}
	if got.Empty() {
		t.Error("Empty() = true, want false")
	}
}

type failingStore struct {
	*store.Memory
}

var errBoom = errors.New("boom")

func (failingStore) Vehicles(context.Context) ([]model.Vehicle, error) {
	return nil, errBoom
}

func TestLoadPropagatesErrors(t *testing.T) {
	_, err := Load(context.Background(), failingStore{store.NewMemory()})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Load err = %v, want errBoom", err)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	c, err := Load(context.Background(), store.NewMemory())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Empty() {
		t.Errorf("Empty() = false for new store")
	}
}
