package analytics

import (
	"math"
	"sort"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// RecommendOrders gera sugestões de recompra para manter ReorderBufferDays de estoque.
// demand é opcional; quando presente, Forecast7d soma a demanda projetada da categoria.
// O resultado é ordenado por prioridade mantendo a ordem de entrada nos empates.
func (e *Engine) RecommendOrders(inventory []entity.InventoryStatus, demand []entity.DemandForecastPoint) []entity.OrderRecommendation {
	out := make([]entity.OrderRecommendation, 0, len(inventory))
	for _, inv := range inventory {
		avg := inv.AvgDailyUseRaw

		stockout := e.policy.StockoutSentinel
		if avg > 0 {
			stockout = int(math.Floor(inv.OnHand / avg))
		}

		suggested := math.Max(0, roundHalfUp(avg*e.policy.ReorderBufferDays-inv.OnHand))

		var forecast float64
		for _, d := range demand {
			forecast += d.Quantities[inv.Category]
		}

		out = append(out, entity.OrderRecommendation{
			Category:          inv.Category,
			Product:           inv.Category.Label(),
			CurrentStock:      inv.OnHand,
			AvgDailyUse:       inv.AvgDailyUse,
			DaysUntilStockout: stockout,
			SuggestedOrder:    suggested,
			Forecast7d:        round1(forecast),
			Priority:          e.priority(stockout, inv.Status),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func (e *Engine) priority(stockout int, status entity.HealthTier) entity.Priority {
	switch {
	case stockout < e.policy.CriticalDays || status == entity.HealthCritical:
		return entity.PriorityUrgent
	case stockout < e.policy.LowDays || status == entity.HealthLow:
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}
