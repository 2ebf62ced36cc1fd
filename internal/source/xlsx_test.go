package source

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/carpro/internal/pipeline"
)

func TestWriteWorkbook(t *testing.T) {
	c := sampleSnapshot()
	now := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, c, pipeline.BuildDashboard(c, now)); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()

	want := []string{SheetSummary, SheetFuel, SheetMaintenance, SheetExpenses, SheetVehicles}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	rows, err := f.GetRows(SheetFuel)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("fuel rows = %d, want header + 1", len(rows))
	}
	if rows[0][1] != "Date" || rows[1][1] != "2025-01-09" {
		t.Errorf("fuel date column = %q / %q", rows[0][1], rows[1][1])
	}

	maint, err := f.GetRows(SheetMaintenance)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if maint[1][6] != "2025-06-01" {
		t.Errorf("next due date cell = %q, want 2025-06-01", maint[1][6])
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)
	if err := WriteWorkbook(&buf, pipeline.Collections{}, pipeline.BuildDashboard(pipeline.Collections{}, now)); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook has no bytes")
	}
}
