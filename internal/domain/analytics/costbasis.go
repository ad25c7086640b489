package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// CostBasis computes the quantity-weighted average cost per unit of each
// tracked category. Only records with a positive quantity in the category's
// unit take part; categories without such records get 0. Credit notes net
// against purchases, but the basis never drops below 0.
func (e *Engine) CostBasis(expenses []entity.ExpenseRecord) entity.CostBasis {
	amounts := make(map[entity.Category]decimal.Decimal)
	quantities := make(map[entity.Category]decimal.Decimal)

	for _, rec := range expenses {
		cat := e.classifier.Classify(rec)
		if !e.classifier.Weighted(rec, cat) {
			continue
		}
		amounts[cat] = amounts[cat].Add(decimal.NewFromFloat(rec.NetAmount))
		quantities[cat] = quantities[cat].Add(decimal.NewFromFloat(*rec.Quantity))
	}

	basis := make(entity.CostBasis, len(entity.AllCategories()))
	for _, cat := range entity.AllCategories() {
		qty := quantities[cat]
		if !qty.IsPositive() {
			basis[cat] = 0
			continue
		}
		avg := amounts[cat].Div(qty)
		if avg.IsNegative() {
			avg = decimal.Zero
		}
		basis[cat] = avg.InexactFloat64()
	}
	return basis
}
