package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/carpro/internal/model"
)

func TestDueTextEnglish(t *testing.T) {
	l := MustNew(English, "USD")
	tests := []struct {
		due  model.DueText
		want string
	}{
		{model.DueText{Kind: model.OverdueBy, Quantity: 500, Unit: model.UnitKm}, "Overdue by 500 km"},
		{model.DueText{Kind: model.DueIn, Quantity: 10, Unit: model.UnitDays}, "Due in 10 days"},
		{model.DueText{Kind: model.DueIn, Quantity: 1500, Unit: model.UnitKm}, "Due in 1,500 km"},
		{model.DueText{Kind: model.DueIn, Quantity: 12.5, Unit: model.UnitKm}, "Due in 12.5 km"},
	}
	for _, tt := range tests {
		if got := l.Due(tt.due); got != tt.want {
			t.Errorf("Due(%+v) = %q, want %q", tt.due, got, tt.want)
		}
	}
}

func TestDueTextArabic(t *testing.T) {
	l := MustNew(Arabic, "")
	got := l.Due(model.DueText{Kind: model.OverdueBy, Quantity: 500, Unit: model.UnitKm})
	if !strings.HasPrefix(got, "متأخر بـ ") || !strings.HasSuffix(got, " كم") {
		t.Errorf("Due = %q, want Arabic overdue-by text in km", got)
	}
	if !l.RTL() {
		t.Error("RTL() = false for Arabic")
	}
	if got := l.Status(model.StatusSoon); got != "قريباً" {
		t.Errorf("Status(soon) = %q", got)
	}
}

func TestFallbacks(t *testing.T) {
	l := MustNew("fr", "XYZ")
	if l.Lang() != English {
		t.Errorf("Lang = %q, want en fallback", l.Lang())
	}
	if got := l.T("noSuchKey"); got != "noSuchKey" {
		t.Errorf("T(missing) = %q, want key back", got)
	}
	if l.RTL() {
		t.Error("RTL() = true for English")
	}
}

func TestMoney(t *testing.T) {
	got := MustNew(English, "USD").Money(1234.5)
	if !strings.Contains(got, "$") || !strings.Contains(got, "1,234.50") {
		t.Errorf("Money = %q, want $ and 1,234.50", got)
	}
	if got := MustNew(English, "").Money(10); !strings.Contains(got, "10.00") {
		t.Errorf("Money(default currency) = %q, want 10.00", got)
	}
}

func TestMonthLabels(t *testing.T) {
	l := MustNew(English, "")
	buckets := []model.MonthBucket{{Month: time.January}, {Month: time.March}}
	labels := l.TrendLabels(buckets)
	if labels[0] != "Jan" || labels[1] != "Mar" {
		t.Errorf("labels = %v, want [Jan Mar]", labels)
	}
	if got := l.Date(model.NewDate(2025, 3, 5)); got != "5 Mar 2025" {
		t.Errorf("Date = %q, want 5 Mar 2025", got)
	}

	arLabel := MustNew(Arabic, "").Month(time.March)
	if arLabel == "" || arLabel == "Mar" {
		t.Errorf("Arabic month = %q, want localized name", arLabel)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	for key := range messages[English] {
		if _, ok := messages[Arabic][key]; !ok {
			t.Errorf("key %q has no Arabic text", key)
		}
	}
	for _, c := range model.ExpenseCategories {
		if _, ok := messages[English][string(c)]; !ok {
			t.Errorf("category %q has no label", c)
		}
	}
}
