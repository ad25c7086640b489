package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// AllocateDailyCosts multiplica o consumo diário pela base de custo de cada categoria.
// Despesas das categorias informadas que não passam no filtro de quantidade/unidade
// entram apenas em UnweightedCost e no total geral, nunca nas linhas diárias.
func (e *Engine) AllocateDailyCosts(expenses []entity.ExpenseRecord, usage []entity.UsageEntry, categories []entity.Category) entity.DailyCostReport {
	basis := e.CostBasis(expenses)

	tracked := make(map[entity.Category]bool, len(categories))
	for _, c := range categories {
		tracked[c] = true
	}

	report := entity.DailyCostReport{
		Rows:           make([]entity.DailyCostRow, 0, len(usage)),
		CostBasis:      make(entity.CostBasis, len(categories)),
		CategoryTotals: make(map[entity.Category]float64, len(categories)),
	}
	for _, c := range categories {
		report.CostBasis[c] = basis.Of(c)
	}

	catTotals := make(map[entity.Category]decimal.Decimal, len(categories))
	allocated := decimal.Zero

	for _, u := range usage {
		row := entity.DailyCostRow{
			Date:       u.Date,
			Quantities: make(map[entity.Category]float64, len(categories)),
			Costs:      make(map[entity.Category]float64, len(categories)),
		}
		for _, c := range categories {
			qty := u.Qty(c)
			cost := qty * basis.Of(c)
			row.Quantities[c] = qty
			row.Costs[c] = cost
			row.TotalCost += cost
			catTotals[c] = catTotals[c].Add(decimal.NewFromFloat(cost))
		}
		allocated = allocated.Add(decimal.NewFromFloat(row.TotalCost))
		report.Rows = append(report.Rows, row)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.After(report.Rows[j].Date)
	})

	unweighted := decimal.Zero
	for _, rec := range expenses {
		cat := e.classifier.Classify(rec)
		if !tracked[cat] || e.classifier.Weighted(rec, cat) {
			continue
		}
		unweighted = unweighted.Add(decimal.NewFromFloat(rec.NetAmount))
		report.UnweightedRecords = append(report.UnweightedRecords, classified(rec, cat, "", false))
	}

	for _, c := range categories {
		report.CategoryTotals[c] = catTotals[c].InexactFloat64()
	}
	report.AllocatedTotal = allocated.InexactFloat64()
	report.UnweightedCost = unweighted.InexactFloat64()
	report.GrandTotal = allocated.Add(unweighted).InexactFloat64()
	return report
}

// StandardDrinksCosts prices the bar log at the policy's reference bottle costs.
func (e *Engine) StandardDrinksCosts(rows []entity.DrinksUsage) entity.DrinksCostReport {
	report := entity.DrinksCostReport{
		Rows:   make([]entity.DrinksCostRow, 0, len(rows)),
		Totals: make(map[entity.Drink]float64, len(entity.Drinks)),
	}
	totals := make(map[entity.Drink]decimal.Decimal, len(entity.Drinks))
	grand := decimal.Zero

	for _, d := range rows {
		bottles := d.Bottles()
		row := entity.DrinksCostRow{
			Date:    d.Date,
			Bottles: bottles,
			Costs:   make(map[entity.Drink]float64, len(entity.Drinks)),
		}
		for _, drink := range entity.Drinks {
			cost := bottles[drink] * e.policy.DrinkUnitCosts[drink]
			row.Costs[drink] = cost
			row.TotalCost += cost
			totals[drink] = totals[drink].Add(decimal.NewFromFloat(cost))
		}
		grand = grand.Add(decimal.NewFromFloat(row.TotalCost))
		report.Rows = append(report.Rows, row)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.After(report.Rows[j].Date)
	})
	for _, drink := range entity.Drinks {
		report.Totals[drink] = totals[drink].InexactFloat64()
	}
	report.GrandTotal = grand.InexactFloat64()
	return report
}

// ClassifiedExpenses returns the tracked-category purchases, most recent first,
// flagging those excluded from the cost basis.
func (e *Engine) ClassifiedExpenses(expenses []entity.ExpenseRecord, dir *SupplierDirectory) []entity.ClassifiedExpense {
	var out []entity.ClassifiedExpense
	for _, rec := range expenses {
		cat := e.classifier.Classify(rec)
		if cat == entity.CategoryNone {
			continue
		}
		name := "Unknown"
		if dir != nil {
			name = dir.Resolve(rec)
		}
		out = append(out, classified(rec, cat, name, e.classifier.Weighted(rec, cat)))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func classified(rec entity.ExpenseRecord, cat entity.Category, supplier string, weighted bool) entity.ClassifiedExpense {
	if supplier == "" {
		supplier = rec.SupplierName
	}
	if supplier == "" {
		supplier = "Unknown"
	}
	var qty *float64
	if rec.Quantity != nil {
		v := *rec.Quantity
		qty = &v
	}
	return entity.ClassifiedExpense{
		ExpenseID:     rec.ID,
		Date:          rec.Date,
		Description:   rec.Description,
		SupplierName:  supplier,
		Quantity:      qty,
		UnitOfMeasure: rec.UnitOfMeasure,
		NetAmount:     rec.NetAmount,
		RawCategory:   rec.Category,
		Product:       cat,
		Weighted:      weighted,
	}
}
