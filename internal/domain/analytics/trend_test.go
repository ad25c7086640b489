package analytics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

func monthly(start string, revenue, expenses []float64) []entity.MonthlyTotal {
	first := day(start)
	out := make([]entity.MonthlyTotal, len(revenue))
	for i := range revenue {
		m := first.AddDate(0, i, 0)
		out[i] = entity.MonthlyTotal{Month: m, Label: m.Format(monthLabelLayout), Revenue: revenue[i], Expenses: expenses[i]}
	}
	return out
}

func TestEngine_ForecastTrend_Linear(t *testing.T) {
	e := newTestEngine()

	got := e.ForecastTrend(monthly("2025-01-01", []float64{100, 110, 120}, []float64{50, 50, 50}))

	if len(got.Points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(got.Points))
	}

	want := []struct {
		label   string
		revenue float64
	}{
		{"Apr '25", 130},
		{"May '25", 140},
		{"Jun '25", 150},
	}
	for i, w := range want {
		p := got.Points[3+i]
		if !p.IsForecast {
			t.Errorf("point %d not flagged as forecast", 3+i)
		}
		if p.Label != w.label {
			t.Errorf("point %d label = %q, want %q", 3+i, p.Label, w.label)
		}
		approx(t, w.label+" revenue", p.Revenue, w.revenue)
		approx(t, w.label+" band width", p.RevUpper-p.RevLower, 0)
		approx(t, w.label+" expenses", p.Expenses, 50)
	}
	for i := 0; i < 3; i++ {
		if got.Points[i].IsForecast {
			t.Errorf("historical point %d flagged as forecast", i)
		}
	}

	approx(t, "residual std dev", got.ResidualStdDev, 0)
	approx(t, "revenue slope", got.RevenueSlope, 10)
	approx(t, "projected revenue", got.ProjectedRevenue, 420)
	// projected margin (420-150)/420 = 64.29%, trailing (330-150)/330 = 54.55%
	approx(t, "projected margin", got.ProjectedMargin, 64.3)
	approx(t, "margin change", got.MarginChange, 9.7)
}

func TestEngine_ForecastTrend_TooShort(t *testing.T) {
	e := newTestEngine()
	series := monthly("2025-01-01", []float64{100, 200}, []float64{80, 90})

	got := e.ForecastTrend(series)

	want := entity.TrendForecast{
		Points: []entity.ForecastPoint{
			{Period: series[0].Month, Label: "Jan '25", Revenue: 100, Expenses: 80},
			{Period: series[1].Month, Label: "Feb '25", Revenue: 200, Expenses: 90},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForecastTrend() mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_ForecastTrend_ClampsAtZero(t *testing.T) {
	e := newTestEngine()

	got := e.ForecastTrend(monthly("2025-01-01", []float64{300, 200, 100}, []float64{30, 20, 10}))

	for _, p := range got.Points[3:] {
		if p.Revenue < 0 || p.Expenses < 0 || p.RevLower < 0 {
			t.Errorf("%s has negative values: %+v", p.Label, p)
		}
	}
	approx(t, "first forecast", got.Points[3].Revenue, 0)
	approx(t, "projected revenue", got.ProjectedRevenue, 0)
	approx(t, "projected margin", got.ProjectedMargin, 0)
}

func TestEngine_ForecastTrend_Window(t *testing.T) {
	e := newTestEngine()

	revenue := make([]float64, 15)
	expenses := make([]float64, 15)
	for i := range revenue {
		revenue[i] = 1000
		if i < 3 {
			revenue[i] = 99999
		}
		expenses[i] = 400
	}

	got := e.ForecastTrend(monthly("2024-01-01", revenue, expenses))

	if len(got.Points) != 12+3 {
		t.Fatalf("expected 15 points, got %d", len(got.Points))
	}
	if got.Points[0].Label != "Apr '24" {
		t.Errorf("window starts at %q, want Apr '24", got.Points[0].Label)
	}
	approx(t, "flat forecast", got.Points[12].Revenue, 1000)
	approx(t, "std dev", got.ResidualStdDev, 0)
}

func TestFitLine(t *testing.T) {
	tests := []struct {
		name      string
		ys        []float64
		slope     float64
		intercept float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{7}, 0, 7},
		{"flat", []float64{5, 5, 5}, 0, 5},
		{"increasing", []float64{1, 3, 5, 7}, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := fitLine(tt.ys)
			approx(t, "slope", fit.slope, tt.slope)
			approx(t, "intercept", fit.intercept, tt.intercept)
		})
	}
}
