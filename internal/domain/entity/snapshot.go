package entity

import "time"

// Snapshot agrega todas as tabelas de origem lidas em um único instante.
// O motor de análise apenas lê estes slices.
type Snapshot struct {
	Expenses     []ExpenseRecord `json:"expenses"`
	Suppliers    []Supplier      `json:"suppliers"`
	Revenue      []Revenue       `json:"revenue"`
	RevenueLines []RevenueLine   `json:"revenue_lines"`
	FoodUsage    []FoodUsage     `json:"food_usage"`
	DrinksUsage  []DrinksUsage   `json:"drinks_usage"`
	FetchedAt    time.Time       `json:"fetched_at"`
}

// Empty reports whether the snapshot carries no records at all.
func (s Snapshot) Empty() bool {
	return len(s.Expenses) == 0 && len(s.Revenue) == 0 && len(s.RevenueLines) == 0 &&
		len(s.FoodUsage) == 0 && len(s.DrinksUsage) == 0
}

// DateRange is an inclusive calendar window; nil bounds are open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Contains reports whether t falls inside the range, comparing calendar days.
func (r DateRange) Contains(t time.Time) bool {
	day := t.Format("2006-01-02")
	if r.From != nil && day < r.From.Format("2006-01-02") {
		return false
	}
	if r.To != nil && day > r.To.Format("2006-01-02") {
		return false
	}
	return true
}
