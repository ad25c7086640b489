package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// alertNamespace gera IDs estáveis: o mesmo alerta no mesmo mês tem sempre o mesmo ID.
var alertNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:catering-analytics:anomaly"))

type supplierGroup struct {
	name    string
	records []entity.ExpenseRecord
}

// groupBySupplier agrupa as despesas pelo nome resolvido, preservando a ordem de
// primeira aparição.
func groupBySupplier(expenses []entity.ExpenseRecord, dir *SupplierDirectory) []*supplierGroup {
	index := make(map[string]*supplierGroup)
	var groups []*supplierGroup
	for _, rec := range expenses {
		name := dir.Resolve(rec)
		g, ok := index[name]
		if !ok {
			g = &supplierGroup{name: name}
			index[name] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, rec)
	}
	return groups
}

// DetectAnomalies flags supplier price and volume spikes against each
// supplier's own history. At most MaxAlerts alerts are returned, price
// spikes first.
func (e *Engine) DetectAnomalies(expenses []entity.ExpenseRecord, suppliers []entity.Supplier, now time.Time) []entity.AnomalyAlert {
	loc := e.policy.location()
	currentMonth := monthKey(now.In(loc))
	dir := e.Directory(suppliers)

	var alerts []entity.AnomalyAlert
	for _, g := range groupBySupplier(expenses, dir) {
		sorted := append([]entity.ExpenseRecord(nil), g.records...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})

		if alert, ok := e.priceSpike(g.name, sorted, currentMonth); ok {
			alerts = append(alerts, alert)
		}
		if alert, ok := e.volumeSpike(g.name, sorted, currentMonth); ok {
			alerts = append(alerts, alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
	if e.policy.MaxAlerts >= 0 && len(alerts) > e.policy.MaxAlerts {
		alerts = alerts[:e.policy.MaxAlerts]
	}
	return alerts
}

func (e *Engine) priceSpike(supplier string, sorted []entity.ExpenseRecord, currentMonth string) (entity.AnomalyAlert, bool) {
	var priced []entity.ExpenseRecord
	for _, rec := range sorted {
		if rec.Qty() > 0 && rec.NetAmount > 0 {
			priced = append(priced, rec)
		}
	}
	window := e.policy.PriceRecentWindow
	if len(priced) < e.policy.PriceMinRecords || len(priced) <= window {
		return entity.AnomalyAlert{}, false
	}

	split := len(priced) - window
	var histSum, recentSum, recentQty float64
	for i, rec := range priced {
		unit := rec.NetAmount / rec.Qty()
		if i < split {
			histSum += unit
			continue
		}
		recentSum += unit
		recentQty += rec.Qty()
	}
	histAvg := histSum / float64(split)
	recentAvg := recentSum / float64(window)
	if histAvg <= 0 {
		return entity.AnomalyAlert{}, false
	}

	pct := (recentAvg - histAvg) / histAvg * 100
	if pct <= e.policy.PriceSpikePct {
		return entity.AnomalyAlert{}, false
	}

	impact := (recentAvg - histAvg) * (recentQty / float64(window)) * e.policy.PurchasesPerMonth
	return entity.AnomalyAlert{
		ID:       alertID(entity.AnomalyPriceSpike, supplier, currentMonth),
		Kind:     entity.AnomalyPriceSpike,
		Severity: entity.SeverityRed,
		Supplier: supplier,
		Title:    fmt.Sprintf("Price Spike: %s", supplier),
		Description: fmt.Sprintf(
			"Average unit price rose from %.2f to %.2f (+%.1f%%) over the last %d purchases.",
			histAvg, recentAvg, pct, window),
		Baseline:      histAvg,
		Current:       recentAvg,
		PercentChange: pct,
		Impact:        &impact,
	}, true
}

func (e *Engine) volumeSpike(supplier string, sorted []entity.ExpenseRecord, currentMonth string) (entity.AnomalyAlert, bool) {
	var current float64
	totals := make(map[string]float64)
	var months []string
	for _, rec := range sorted {
		key := monthKey(rec.Date)
		switch {
		case key == currentMonth:
			current += rec.TotalAmount
		case key < currentMonth:
			if _, ok := totals[key]; !ok {
				months = append(months, key)
			}
			totals[key] += rec.TotalAmount
		}
	}

	n := e.policy.VolumeTrailingMonths
	if len(months) < n || n <= 0 || current <= 0 {
		return entity.AnomalyAlert{}, false
	}

	var sum float64
	for _, m := range months[len(months)-n:] {
		sum += totals[m]
	}
	avg := sum / float64(n)
	if avg <= 0 {
		return entity.AnomalyAlert{}, false
	}

	pct := (current - avg) / avg * 100
	if pct <= e.policy.VolumeSpikePct {
		return entity.AnomalyAlert{}, false
	}

	return entity.AnomalyAlert{
		ID:       alertID(entity.AnomalyVolumeSpike, supplier, currentMonth),
		Kind:     entity.AnomalyVolumeSpike,
		Severity: entity.SeverityYellow,
		Supplier: supplier,
		Title:    fmt.Sprintf("Unusual Volume: %s", supplier),
		Description: fmt.Sprintf(
			"Spending this month (%.2f) is %.0f%% above the %d-month average (%.2f).",
			current, pct, n, avg),
		Baseline:      avg,
		Current:       current,
		PercentChange: pct,
	}, true
}

func alertID(kind entity.AnomalyKind, supplier, month string) string {
	return uuid.NewSHA1(alertNamespace, []byte(string(kind)+"|"+supplier+"|"+month)).String()
}

// monthKey usa a data civil de t, sem conversão de fuso.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
