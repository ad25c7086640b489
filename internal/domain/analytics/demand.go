package analytics

import (
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// ForecastDemand projects daily usage for the next DemandHorizonDays days
// starting at today. A weekday with fewer than DemandMinSamples observations
// falls back to the product's global mean.
func (e *Engine) ForecastDemand(usage []entity.UsageEntry, categories []entity.Category, today time.Time) []entity.DemandForecastPoint {
	loc := e.policy.location()

	type history struct {
		byWeekday [7][]float64
		all       []float64
	}
	hist := make(map[entity.Category]*history, len(categories))
	for _, c := range categories {
		hist[c] = &history{}
	}

	for _, u := range usage {
		wd := u.Date.Weekday()
		for _, c := range categories {
			qty, ok := u.Quantities[c]
			if !ok {
				continue
			}
			h := hist[c]
			h.byWeekday[wd] = append(h.byWeekday[wd], qty)
			h.all = append(h.all, qty)
		}
	}

	start := calendarDay(today.In(loc))
	out := make([]entity.DemandForecastPoint, 0, e.policy.DemandHorizonDays)
	for i := 0; i < e.policy.DemandHorizonDays; i++ {
		day := start.AddDate(0, 0, i)
		point := entity.DemandForecastPoint{
			Day:        day,
			DayLabel:   dayLabel(i, day),
			Quantities: make(map[entity.Category]float64, len(categories)),
		}
		for _, c := range categories {
			h := hist[c]
			samples := h.byWeekday[day.Weekday()]
			if len(samples) >= e.policy.DemandMinSamples {
				point.Quantities[c] = round1(mean(samples))
			} else {
				point.Quantities[c] = round1(mean(h.all))
			}
		}
		out = append(out, point)
	}
	return out
}

func dayLabel(offset int, day time.Time) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return day.Format("Mon")
	}
}

// calendarDay maps the wall-clock date of t to UTC midnight, the form record
// dates are loaded in.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
