package entity

import "time"

// CostBasis maps a category to its quantity-weighted average cost per unit.
type CostBasis map[Category]float64

// Of returns the basis for c, 0 when no qualifying purchase exists.
func (b CostBasis) Of(c Category) float64 {
	return b[c]
}

// DailyCostRow é o custo alocado de um dia do log de consumo.
type DailyCostRow struct {
	Date       time.Time            `json:"date"`
	Quantities map[Category]float64 `json:"quantities"`
	Costs      map[Category]float64 `json:"costs"`
	TotalCost  float64              `json:"total_cost"`
}

// DailyCostReport is the result of allocating cost basis onto a usage stream.
// UnweightedCost is included in GrandTotal but never in Rows.
type DailyCostReport struct {
	Rows              []DailyCostRow       `json:"rows"`
	CostBasis         CostBasis            `json:"cost_basis"`
	CategoryTotals    map[Category]float64 `json:"category_totals"`
	AllocatedTotal    float64              `json:"allocated_total"`
	UnweightedCost    float64              `json:"unweighted_cost"`
	UnweightedRecords []ClassifiedExpense  `json:"unweighted_records,omitempty"`
	GrandTotal        float64              `json:"grand_total"`
}

// HasUnweightedCost reports whether some cost is missing from the daily detail.
func (r DailyCostReport) HasUnweightedCost() bool {
	return r.UnweightedCost > 0 || len(r.UnweightedRecords) > 0
}

// DrinksCostRow is one day of the bar log priced at standard bottle costs.
type DrinksCostRow struct {
	Date      time.Time         `json:"date"`
	Bottles   map[Drink]float64 `json:"bottles"`
	Costs     map[Drink]float64 `json:"costs"`
	TotalCost float64           `json:"total_cost"`
}

// DrinksCostReport agrega o custo padrão de bebidas.
type DrinksCostReport struct {
	Rows       []DrinksCostRow   `json:"rows"`
	Totals     map[Drink]float64 `json:"totals"`
	GrandTotal float64           `json:"grand_total"`
}
