package analytics

import (
	"math"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

const monthLabelLayout = "Jan '06"

type linearFit struct {
	slope     float64
	intercept float64
}

func (f linearFit) at(x float64) float64 {
	return f.slope*x + f.intercept
}

// fitLine ajusta uma reta por mínimos quadrados contra o índice 0..n-1.
func fitLine(ys []float64) linearFit {
	n := float64(len(ys))
	if len(ys) == 0 {
		return linearFit{}
	}
	if len(ys) < 2 {
		return linearFit{intercept: ys[0]}
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return linearFit{intercept: sumY / n}
	}
	slope := (n*sumXY - sumX*sumY) / denom
	return linearFit{slope: slope, intercept: (sumY - slope*sumX) / n}
}

// residualStdDev is the population standard deviation of the fit residuals.
func residualStdDev(ys []float64, fit linearFit) float64 {
	if len(ys) == 0 {
		return 0
	}
	var ss float64
	for i, y := range ys {
		r := y - fit.at(float64(i))
		ss += r * r
	}
	return math.Sqrt(ss / float64(len(ys)))
}

// ForecastTrend extrapolates revenue and expenses TrendHorizon months past the
// last point of series. With fewer than TrendMinPoints points the series is
// returned unchanged and every summary value is zero.
func (e *Engine) ForecastTrend(series []entity.MonthlyTotal) entity.TrendForecast {
	if len(series) < e.policy.TrendMinPoints {
		points := make([]entity.ForecastPoint, 0, len(series))
		for _, m := range series {
			points = append(points, historicalPoint(m))
		}
		return entity.TrendForecast{Points: points}
	}

	window := len(series)
	if e.policy.TrendWindow > 0 && window > e.policy.TrendWindow {
		window = e.policy.TrendWindow
	}
	recent := series[len(series)-window:]

	revenues := make([]float64, window)
	expenses := make([]float64, window)
	points := make([]entity.ForecastPoint, 0, window+e.policy.TrendHorizon)
	for i, m := range recent {
		revenues[i] = m.Revenue
		expenses[i] = m.Expenses
		points = append(points, historicalPoint(m))
	}

	revFit := fitLine(revenues)
	expFit := fitLine(expenses)
	stdDev := residualStdDev(revenues, revFit)
	band := stdDev * e.policy.BandMultiplier

	last := recent[window-1].Month
	var totalRev, totalExp float64
	for i := 1; i <= e.policy.TrendHorizon; i++ {
		x := float64(window - 1 + i)
		rev := math.Max(0, revFit.at(x))
		exp := math.Max(0, expFit.at(x))
		totalRev += rev
		totalExp += exp

		month := last.AddDate(0, i, 0)
		points = append(points, entity.ForecastPoint{
			Period:     month,
			Label:      month.Format(monthLabelLayout),
			Revenue:    rev,
			Expenses:   exp,
			RevUpper:   rev + band,
			RevLower:   math.Max(0, rev-band),
			IsForecast: true,
		})
	}

	projectedMargin := margin(totalRev, totalExp)

	trailing := recent
	if len(trailing) > e.policy.TrendHorizon {
		trailing = trailing[len(trailing)-e.policy.TrendHorizon:]
	}
	var curRev, curExp float64
	for _, m := range trailing {
		curRev += m.Revenue
		curExp += m.Expenses
	}

	return entity.TrendForecast{
		Points:           points,
		ProjectedRevenue: round1(totalRev),
		ProjectedMargin:  round1(projectedMargin),
		MarginChange:     round1(projectedMargin - margin(curRev, curExp)),
		RevenueSlope:     revFit.slope,
		ExpenseSlope:     expFit.slope,
		ResidualStdDev:   stdDev,
	}
}

func historicalPoint(m entity.MonthlyTotal) entity.ForecastPoint {
	label := m.Label
	if label == "" {
		label = m.Month.Format(monthLabelLayout)
	}
	return entity.ForecastPoint{
		Period:   m.Month,
		Label:    label,
		Revenue:  m.Revenue,
		Expenses: m.Expenses,
	}
}

// margin returns the profit margin in percent, 0 when there is no revenue.
func margin(revenue, expenses float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return (revenue - expenses) / revenue * 100
}
