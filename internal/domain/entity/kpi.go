package entity

import "time"

// MonthlyTotal is the revenue/expense total of one calendar month.
type MonthlyTotal struct {
	Month    time.Time `json:"month"`
	Label    string    `json:"label"`
	Revenue  float64   `json:"revenue"`
	Expenses float64   `json:"expenses"`
	Orders   int       `json:"orders"`
}

// WeeklyTotal is the revenue total of one ISO week, keyed by its Monday.
type WeeklyTotal struct {
	WeekStart time.Time `json:"week_start"`
	ISOYear   int       `json:"iso_year"`
	ISOWeek   int       `json:"iso_week"`
	Label     string    `json:"label"`
	Total     float64   `json:"total"`
}

// KPISummary contém os totais do período e as variações mês a mês.
type KPISummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitMargin  float64 `json:"profit_margin"`
	TotalOrders   int     `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`

	CurrentMonthRevenue   float64 `json:"current_month_revenue"`
	PreviousMonthRevenue  float64 `json:"previous_month_revenue"`
	CurrentMonthExpenses  float64 `json:"current_month_expenses"`
	PreviousMonthExpenses float64 `json:"previous_month_expenses"`
	CurrentMonthOrders    int     `json:"current_month_orders"`
	PreviousMonthOrders   int     `json:"previous_month_orders"`

	RevenueTrend float64 `json:"revenue_trend"`
	ExpenseTrend float64 `json:"expense_trend"`
	OrderTrend   float64 `json:"order_trend"`
}

// RankedTotal is a named total used by the top-N tables.
type RankedTotal struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Count    float64 `json:"count"`
	Total    float64 `json:"total"`
}
