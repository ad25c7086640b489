package snapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// document is the on-disk layout of a snapshot file. Table and column names
// follow the gwr_* tables so that a database dump can be fed as is.
type document struct {
	Expenses     []expenseRow     `json:"expenses" yaml:"expenses" toml:"expenses"`
	Suppliers    []supplierRow    `json:"suppliers" yaml:"suppliers" toml:"suppliers"`
	Revenue      []revenueRow     `json:"revenue" yaml:"revenue" toml:"revenue"`
	RevenueLines []revenueLineRow `json:"revenue_lines" yaml:"revenue_lines" toml:"revenue_lines"`
	FoodUsage    []foodUsageRow   `json:"food_usage" yaml:"food_usage" toml:"food_usage"`
	DrinksUsage  []drinksUsageRow `json:"drinks_usage" yaml:"drinks_usage" toml:"drinks_usage"`
}

type expenseRow struct {
	ExpenseID     string   `json:"expense_id" yaml:"expense_id" toml:"expense_id"`
	ExpenseDate   string   `json:"expense_date" yaml:"expense_date" toml:"expense_date"`
	Description   string   `json:"description" yaml:"description" toml:"description"`
	Category      string   `json:"category" yaml:"category" toml:"category"`
	Quantity      *float64 `json:"quantity" yaml:"quantity" toml:"quantity"`
	UnitOfMeasure string   `json:"unit_of_measure" yaml:"unit_of_measure" toml:"unit_of_measure"`
	NetAmount     float64  `json:"net_amount" yaml:"net_amount" toml:"net_amount"`
	VATAmount     float64  `json:"vat_amount" yaml:"vat_amount" toml:"vat_amount"`
	TotalAmount   float64  `json:"total_amount" yaml:"total_amount" toml:"total_amount"`
	SupplierKey   int      `json:"supplier_key" yaml:"supplier_key" toml:"supplier_key"`
	SupplierName  string   `json:"supplier_name" yaml:"supplier_name" toml:"supplier_name"`
	PaymentMethod string   `json:"payment_method" yaml:"payment_method" toml:"payment_method"`
	InvoiceNumber string   `json:"invoice_number" yaml:"invoice_number" toml:"invoice_number"`
}

type supplierRow struct {
	SupplierKey  int    `json:"supplier_key" yaml:"supplier_key" toml:"supplier_key"`
	StandardName string `json:"standard_name" yaml:"standard_name" toml:"standard_name"`
	Category     string `json:"category" yaml:"category" toml:"category"`
}

type revenueRow struct {
	RevenueID    string  `json:"revenue_id" yaml:"revenue_id" toml:"revenue_id"`
	RevenueDate  string  `json:"revenue_date" yaml:"revenue_date" toml:"revenue_date"`
	ClientName   string  `json:"client_name" yaml:"client_name" toml:"client_name"`
	PaxCount     int     `json:"pax_count" yaml:"pax_count" toml:"pax_count"`
	TotalRevenue float64 `json:"total_revenue" yaml:"total_revenue" toml:"total_revenue"`
}

type revenueLineRow struct {
	LineID    string  `json:"line_id" yaml:"line_id" toml:"line_id"`
	RevenueID string  `json:"revenue_id" yaml:"revenue_id" toml:"revenue_id"`
	MenuItem  string  `json:"menu_item" yaml:"menu_item" toml:"menu_item"`
	Quantity  float64 `json:"quantity" yaml:"quantity" toml:"quantity"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price" toml:"unit_price"`
	LineTotal float64 `json:"line_total" yaml:"line_total" toml:"line_total"`
}

type foodUsageRow struct {
	UsageDate         string  `json:"usage_date" yaml:"usage_date" toml:"usage_date"`
	PouletKg          float64 `json:"poulet_kg" yaml:"poulet_kg" toml:"poulet_kg"`
	LangoustesKg      float64 `json:"langoustes_kg" yaml:"langoustes_kg" toml:"langoustes_kg"`
	PoissonKg         float64 `json:"poisson_kg" yaml:"poisson_kg" toml:"poisson_kg"`
	ReserveGambasPcs  float64 `json:"reserve_gambass_pcs" yaml:"reserve_gambass_pcs" toml:"reserve_gambass_pcs"`
	ReserveLangoustes float64 `json:"reserve_langoustes" yaml:"reserve_langoustes" toml:"reserve_langoustes"`
}

type drinksUsageRow struct {
	UsageDate       string  `json:"usage_date" yaml:"usage_date" toml:"usage_date"`
	CocaColaBottles float64 `json:"coca_cola_bottles" yaml:"coca_cola_bottles" toml:"coca_cola_bottles"`
	SpriteBottles   float64 `json:"sprite_bottles" yaml:"sprite_bottles" toml:"sprite_bottles"`
	BeerBottles     float64 `json:"beer_bottles" yaml:"beer_bottles" toml:"beer_bottles"`
	RhumBottles     float64 `json:"rhum_bottles" yaml:"rhum_bottles" toml:"rhum_bottles"`
	RoseBottles     float64 `json:"rose_bottles" yaml:"rose_bottles" toml:"rose_bottles"`
	BlancBottles    float64 `json:"blanc_bottles" yaml:"blanc_bottles" toml:"blanc_bottles"`
}

// ParseDate aceita "2006-01-02" ou RFC3339; o resultado é sempre um dia civil em UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// toSnapshot normaliza as linhas; a primeira data inválida interrompe a conversão.
func (doc document) toSnapshot() (entity.Snapshot, error) {
	var s entity.Snapshot

	for i, r := range doc.Expenses {
		date, err := ParseDate(r.ExpenseDate)
		if err != nil {
			return s, fmt.Errorf("expenses[%d]: %w", i, err)
		}
		s.Expenses = append(s.Expenses, entity.ExpenseRecord{
			ID:            r.ExpenseID,
			Date:          date,
			Description:   r.Description,
			Category:      r.Category,
			Quantity:      r.Quantity,
			UnitOfMeasure: r.UnitOfMeasure,
			NetAmount:     r.NetAmount,
			VATAmount:     r.VATAmount,
			TotalAmount:   r.TotalAmount,
			SupplierKey:   r.SupplierKey,
			SupplierName:  r.SupplierName,
			PaymentMethod: r.PaymentMethod,
			InvoiceNumber: r.InvoiceNumber,
		})
	}

	for _, r := range doc.Suppliers {
		s.Suppliers = append(s.Suppliers, entity.Supplier{Key: r.SupplierKey, StandardName: r.StandardName, Category: r.Category})
	}

	for i, r := range doc.Revenue {
		date, err := ParseDate(r.RevenueDate)
		if err != nil {
			return s, fmt.Errorf("revenue[%d]: %w", i, err)
		}
		s.Revenue = append(s.Revenue, entity.Revenue{
			ID:           r.RevenueID,
			Date:         date,
			ClientName:   r.ClientName,
			PaxCount:     r.PaxCount,
			TotalRevenue: r.TotalRevenue,
		})
	}

	for _, r := range doc.RevenueLines {
		s.RevenueLines = append(s.RevenueLines, entity.RevenueLine{
			ID:        r.LineID,
			RevenueID: r.RevenueID,
			MenuItem:  r.MenuItem,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			LineTotal: r.LineTotal,
		})
	}

	for i, r := range doc.FoodUsage {
		date, err := ParseDate(r.UsageDate)
		if err != nil {
			return s, fmt.Errorf("food_usage[%d]: %w", i, err)
		}
		s.FoodUsage = append(s.FoodUsage, entity.FoodUsage{
			Date:              date,
			PouletKg:          r.PouletKg,
			LangoustesKg:      r.LangoustesKg,
			PoissonKg:         r.PoissonKg,
			ReserveGambasPcs:  r.ReserveGambasPcs,
			ReserveLangoustes: r.ReserveLangoustes,
		})
	}

	for i, r := range doc.DrinksUsage {
		date, err := ParseDate(r.UsageDate)
		if err != nil {
			return s, fmt.Errorf("drinks_usage[%d]: %w", i, err)
		}
		s.DrinksUsage = append(s.DrinksUsage, entity.DrinksUsage{
			Date:            date,
			CocaColaBottles: r.CocaColaBottles,
			SpriteBottles:   r.SpriteBottles,
			BeerBottles:     r.BeerBottles,
			RhumBottles:     r.RhumBottles,
			RoseBottles:     r.RoseBottles,
			BlancBottles:    r.BlancBottles,
		})
	}

	return s, nil
}
