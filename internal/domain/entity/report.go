package entity

import "time"

// Report é o resultado completo de uma execução do motor sobre um snapshot.
type Report struct {
	GeneratedAt     time.Time             `json:"generated_at"`
	Range           DateRange             `json:"range"`
	KPIs            KPISummary            `json:"kpis"`
	Monthly         []MonthlyTotal        `json:"monthly"`
	Weekly          []WeeklyTotal         `json:"weekly"`
	TopSuppliers    []RankedTotal         `json:"top_suppliers"`
	TopClients      []RankedTotal         `json:"top_clients"`
	Menu            []RankedTotal         `json:"menu"`
	Inventory       []InventoryStatus     `json:"inventory"`
	FoodCosts       DailyCostReport       `json:"food_costs"`
	DrinksCosts     DailyCostReport       `json:"drinks_costs"`
	StandardDrinks  DrinksCostReport      `json:"standard_drinks"`
	Purchases       []ClassifiedExpense   `json:"purchases"`
	Demand          []DemandForecastPoint `json:"demand"`
	Recommendations []OrderRecommendation `json:"recommendations"`
	Trend           TrendForecast         `json:"trend"`
	Anomalies       []AnomalyAlert        `json:"anomalies"`
	Warnings        []string              `json:"warnings,omitempty"`
}
