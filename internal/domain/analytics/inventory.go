package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// Inventory deriva o estoque de cada categoria a partir das compras e do log de consumo.
// O saldo é assinado: consumo acima das compras gera OnHand negativo e status crítico.
func (e *Engine) Inventory(expenses []entity.ExpenseRecord, usage []entity.UsageEntry, categories []entity.Category) []entity.InventoryStatus {
	purchased := make(map[entity.Category]decimal.Decimal, len(categories))
	for _, rec := range expenses {
		cat := e.classifier.Classify(rec)
		if !e.classifier.Weighted(rec, cat) {
			continue
		}
		purchased[cat] = purchased[cat].Add(decimal.NewFromFloat(*rec.Quantity))
	}

	used := make(map[entity.Category]decimal.Decimal, len(categories))
	days := make(map[string]struct{}, len(usage))
	for _, u := range usage {
		days[u.Date.Format("2006-01-02")] = struct{}{}
		for _, c := range categories {
			used[c] = used[c].Add(decimal.NewFromFloat(u.Qty(c)))
		}
	}
	usageDays := len(days)
	if usageDays < 1 {
		usageDays = 1
	}

	out := make([]entity.InventoryStatus, 0, len(categories))
	for _, c := range categories {
		p := purchased[c].InexactFloat64()
		u := used[c].InexactFloat64()
		onHand := purchased[c].Sub(used[c]).InexactFloat64()
		avg := u / float64(usageDays)
		supply := e.daysSupply(onHand, avg)

		out = append(out, entity.InventoryStatus{
			Category:       c,
			Unit:           e.classifier.Unit(c),
			Purchased:      p,
			Used:           u,
			OnHand:         onHand,
			UsageDays:      usageDays,
			AvgDailyUse:    round1(avg),
			AvgDailyUseRaw: avg,
			DaysSupply:     supply,
			Status:         e.healthTier(onHand, supply),
		})
	}
	return out
}

func (e *Engine) daysSupply(onHand, avg float64) int {
	switch {
	case onHand <= 0:
		return 0
	case avg <= 0:
		return e.policy.NoDepletionDays
	default:
		return int(roundHalfUp(onHand / avg))
	}
}

func (e *Engine) healthTier(onHand float64, daysSupply int) entity.HealthTier {
	switch {
	case onHand < 0 || daysSupply < e.policy.CriticalDays:
		return entity.HealthCritical
	case onHand < e.policy.LowOnHand || daysSupply < e.policy.LowDays:
		return entity.HealthLow
	default:
		return entity.HealthHealthy
	}
}
