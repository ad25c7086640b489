package entity

import "time"

// ForecastPoint is one period of a revenue/expense trend, historical or projected.
type ForecastPoint struct {
	Period     time.Time `json:"period"`
	Label      string    `json:"label"`
	Revenue    float64   `json:"revenue"`
	Expenses   float64   `json:"expenses"`
	RevUpper   float64   `json:"rev_upper,omitempty"`
	RevLower   float64   `json:"rev_lower,omitempty"`
	IsForecast bool      `json:"is_forecast"`
}

// TrendForecast contém a série histórica seguida das projeções.
// Com menos de três pontos a série é devolvida sem projeção e os escalares ficam zerados.
type TrendForecast struct {
	Points           []ForecastPoint `json:"points"`
	ProjectedRevenue float64         `json:"projected_revenue"`
	ProjectedMargin  float64         `json:"projected_margin"`
	MarginChange     float64         `json:"margin_change"`
	RevenueSlope     float64         `json:"revenue_slope"`
	ExpenseSlope     float64         `json:"expense_slope"`
	ResidualStdDev   float64         `json:"residual_std_dev"`
}

// DemandForecastPoint is the projected usage of one upcoming day.
type DemandForecastPoint struct {
	Day        time.Time            `json:"day"`
	DayLabel   string               `json:"day_label"`
	Quantities map[Category]float64 `json:"quantities"`
}

// Priority is the reorder urgency tier.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities urgent-first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// OrderRecommendation sugere uma quantidade de recompra para uma categoria.
type OrderRecommendation struct {
	Category          Category `json:"category"`
	Product           string   `json:"product"`
	CurrentStock      float64  `json:"current_stock"`
	AvgDailyUse       float64  `json:"avg_daily_use"`
	DaysUntilStockout int      `json:"days_until_stockout"`
	SuggestedOrder    float64  `json:"suggested_order"`
	Forecast7d        float64  `json:"forecast_7d"`
	Priority          Priority `json:"priority"`
}
