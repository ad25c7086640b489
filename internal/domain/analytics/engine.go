// Package analytics implementa o motor de custos e demanda: funções puras
// sobre um snapshot de registros, sem I/O e sem estado entre chamadas.
package analytics

import (
	"fmt"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// Engine carries the policy and derived lookup tables. It holds no mutable
// state, so a single Engine may be shared across goroutines.
type Engine struct {
	policy     Policy
	classifier *Classifier
}

// New creates an engine for the given policy.
func New(p Policy) *Engine {
	p = p.clone()
	return &Engine{
		policy:     p,
		classifier: NewClassifier(p),
	}
}

// Policy returns a copy of the engine's policy.
func (e *Engine) Policy() Policy {
	return e.policy.clone()
}

// Classifier exposes the record classifier used by the engine.
func (e *Engine) Classifier() *Classifier {
	return e.classifier
}

// Directory builds the supplier directory for a supplier master table.
func (e *Engine) Directory(suppliers []entity.Supplier) *SupplierDirectory {
	return NewSupplierDirectory(suppliers, e.policy.SupplierAliases)
}

// AnalysisOptions controls a full Analyze run.
type AnalysisOptions struct {
	Now      time.Time
	Range    entity.DateRange
	Client   string
	AllWeeks bool
}

// Analyze executa todos os componentes sobre um snapshot como uma única unidade de trabalho.
// O intervalo filtra KPIs, séries, estoque e custos; tendência, demanda e anomalias
// usam o histórico completo.
func (e *Engine) Analyze(s entity.Snapshot, opts AnalysisOptions) entity.Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(e.policy.location())

	filtered := FilterClient(FilterSnapshot(s, opts.Range), opts.Client)
	dir := e.Directory(s.Suppliers)

	foodEntries := entity.FoodEntries(filtered.FoodUsage)
	drinksEntries := entity.DrinksEntries(filtered.DrinksUsage)

	inventory := e.Inventory(filtered.Expenses, foodEntries, entity.FoodCategories)
	inventory = append(inventory, e.Inventory(filtered.Expenses, drinksEntries, entity.DrinksCategories)...)

	allFood := entity.FoodEntries(s.FoodUsage)
	allDrinks := entity.DrinksEntries(s.DrinksUsage)
	demand := e.ForecastDemand(mergeEntries(allFood, allDrinks), entity.AllCategories(), now)

	report := entity.Report{
		GeneratedAt:     now,
		Range:           opts.Range,
		KPIs:            ComputeKPIs(filtered.Revenue, filtered.RevenueLines, filtered.Expenses, now),
		Monthly:         MonthlySeries(filtered.Revenue, filtered.RevenueLines, filtered.Expenses),
		Weekly:          WeeklySeries(filtered.Revenue, filtered.RevenueLines, now, e.policy.WeeklyWindowWeeks, opts.AllWeeks),
		TopSuppliers:    TopSuppliers(filtered.Expenses, dir, e.policy.TopN),
		TopClients:      TopClients(filtered.Revenue, filtered.RevenueLines, e.policy.TopN),
		Menu:            MenuPerformance(filtered.RevenueLines),
		Inventory:       inventory,
		FoodCosts:       e.AllocateDailyCosts(filtered.Expenses, foodEntries, entity.FoodCategories),
		DrinksCosts:     e.AllocateDailyCosts(filtered.Expenses, drinksEntries, entity.DrinksCategories),
		StandardDrinks:  e.StandardDrinksCosts(filtered.DrinksUsage),
		Purchases:       e.ClassifiedExpenses(filtered.Expenses, dir),
		Demand:          demand,
		Recommendations: e.RecommendOrders(inventory, demand),
		Trend:           e.ForecastTrend(MonthlySeries(s.Revenue, s.RevenueLines, s.Expenses)),
		Anomalies:       e.DetectAnomalies(s.Expenses, s.Suppliers, now),
	}

	report.Warnings = collectWarnings(report)
	return report
}

func collectWarnings(r entity.Report) []string {
	var warnings []string
	if r.FoodCosts.HasUnweightedCost() {
		warnings = append(warnings, fmt.Sprintf(
			"%d food purchase(s) totalling %.2f lack a kg quantity and are not reflected in the daily food cost detail",
			len(r.FoodCosts.UnweightedRecords), r.FoodCosts.UnweightedCost))
	}
	if r.DrinksCosts.HasUnweightedCost() {
		warnings = append(warnings, fmt.Sprintf(
			"%d beverage purchase(s) totalling %.2f lack a bottle quantity and are not reflected in the daily drinks cost detail",
			len(r.DrinksCosts.UnweightedRecords), r.DrinksCosts.UnweightedCost))
	}
	for _, inv := range r.Inventory {
		if inv.OnHand < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"%s usage exceeds recorded purchases by %.1f %s", inv.Category.Label(), -inv.OnHand, inv.Unit))
		}
	}
	return warnings
}

// mergeEntries concatena fluxos de consumo distintos sem alterar as entradas originais.
func mergeEntries(streams ...[]entity.UsageEntry) []entity.UsageEntry {
	var n int
	for _, s := range streams {
		n += len(s)
	}
	out := make([]entity.UsageEntry, 0, n)
	for _, s := range streams {
		out = append(out, s...)
	}
	return out
}
