package analytics

import (
	"testing"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

func TestResolvePreset(t *testing.T) {
	now := time.Date(2025, 3, 18, 14, 30, 0, 0, time.UTC)
	custom := entity.DateRange{From: ptrTime(day("2025-01-05"))}

	tests := []struct {
		preset   Preset
		from, to string
	}{
		{PresetThisMonth, "2025-03-01", "2025-03-18"},
		{PresetLastMonth, "2025-02-01", "2025-02-28"},
		{PresetLast3Months, "2025-01-01", "2025-03-18"},
		{PresetAllTime, "", ""},
		{PresetCustom, "2025-01-05", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r := ResolvePreset(tt.preset, custom, now)
			if got := fmtDay(r.From); got != tt.from {
				t.Errorf("From = %q, want %q", got, tt.from)
			}
			if got := fmtDay(r.To); got != tt.to {
				t.Errorf("To = %q, want %q", got, tt.to)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != PresetAllTime {
		t.Errorf(`ParsePreset("") = %q, %v`, p, err)
	}
	if p, err := ParsePreset(" Last_Month "); err != nil || p != PresetLastMonth {
		t.Errorf("ParsePreset(Last_Month) = %q, %v", p, err)
	}
	if _, err := ParsePreset("yesterday"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestFilterSnapshot(t *testing.T) {
	revenue, lines, expenses := revenueFixture()
	s := entity.Snapshot{
		Expenses:     expenses,
		Revenue:      revenue,
		RevenueLines: lines,
		FoodUsage:    []entity.FoodUsage{food("2025-03-31", 1, 0, 0), food("2025-04-01", 2, 0, 0)},
		DrinksUsage:  []entity.DrinksUsage{{Date: day("2025-02-01")}},
	}

	got := FilterSnapshot(s, entity.DateRange{From: ptrTime(day("2025-03-01")), To: ptrTime(day("2025-03-31"))})

	if len(got.Revenue) != 2 || len(got.RevenueLines) != 2 {
		t.Errorf("revenue/lines = %d/%d, want 2/2", len(got.Revenue), len(got.RevenueLines))
	}
	if len(got.Expenses) != 1 || got.Expenses[0].ID != "e2" {
		t.Errorf("expenses = %+v", got.Expenses)
	}
	if len(got.FoodUsage) != 1 || len(got.DrinksUsage) != 0 {
		t.Errorf("usage = %d/%d, want 1/0", len(got.FoodUsage), len(got.DrinksUsage))
	}

	got.Expenses[0].TotalAmount = -1
	if s.Expenses[1].TotalAmount != 120 {
		t.Error("FilterSnapshot result aliases the input")
	}
}

func TestFilterClient(t *testing.T) {
	revenue, lines, expenses := revenueFixture()
	s := entity.Snapshot{Expenses: expenses, Revenue: revenue, RevenueLines: lines}

	got := FilterClient(s, "BLUE LAGOON")
	if len(got.Revenue) != 2 || len(got.RevenueLines) != 2 {
		t.Errorf("revenue/lines = %d/%d, want 2/2", len(got.Revenue), len(got.RevenueLines))
	}
	if len(got.Expenses) != 3 {
		t.Errorf("expenses must not be filtered by client, got %d", len(got.Expenses))
	}
	if all := FilterClient(s, " "); len(all.Revenue) != 3 {
		t.Errorf("blank client should keep every order, got %d", len(all.Revenue))
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func fmtDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
