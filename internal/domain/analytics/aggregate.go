package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

const weekLabelLayout = "Jan 2"

// PercentChange returns the relative change from previous to current in
// percent. A zero previous value yields 100 when current grew and 0 otherwise.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// orderTotals soma as linhas de cada pedido.
func orderTotals(lines []entity.RevenueLine) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		totals[l.RevenueID] = totals[l.RevenueID].Add(decimal.NewFromFloat(l.LineTotal))
	}
	return totals
}

// orderValue usa a soma das linhas do pedido; sem linhas (ou soma zero) cai no
// total do cabeçalho.
func orderValue(r entity.Revenue, totals map[string]decimal.Decimal) decimal.Decimal {
	if v, ok := totals[r.ID]; ok && !v.IsZero() {
		return v
	}
	return decimal.NewFromFloat(r.TotalRevenue)
}

type monthBucket struct {
	start    time.Time
	revenue  decimal.Decimal
	expenses decimal.Decimal
	orders   int
}

// MonthlySeries bucketiza receita e despesa por mês civil, em ordem cronológica.
// O mês vem da data do registro como está, sem conversão de fuso.
func MonthlySeries(revenue []entity.Revenue, lines []entity.RevenueLine, expenses []entity.ExpenseRecord) []entity.MonthlyTotal {
	totals := orderTotals(lines)
	buckets := make(map[string]*monthBucket)

	bucket := func(t time.Time) *monthBucket {
		key := t.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &monthBucket{start: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[key] = b
		}
		return b
	}

	for _, r := range revenue {
		b := bucket(r.Date)
		b.revenue = b.revenue.Add(orderValue(r, totals))
		b.orders++
	}
	for _, e := range expenses {
		b := bucket(e.Date)
		b.expenses = b.expenses.Add(decimal.NewFromFloat(e.TotalAmount))
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]entity.MonthlyTotal, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, entity.MonthlyTotal{
			Month:    b.start,
			Label:    b.start.Format(monthLabelLayout),
			Revenue:  b.revenue.InexactFloat64(),
			Expenses: b.expenses.InexactFloat64(),
			Orders:   b.orders,
		})
	}
	return out
}

// WeeklySeries soma a receita por semana ISO (segunda-feira como início).
// Sem allData apenas as últimas `weeks` semanas antes da data civil de now
// entram na série.
func WeeklySeries(revenue []entity.Revenue, lines []entity.RevenueLine, now time.Time, weeks int, allData bool) []entity.WeeklyTotal {
	totals := orderTotals(lines)

	var start time.Time
	switch {
	case allData && len(revenue) > 0:
		start = revenue[0].Date
		for _, r := range revenue[1:] {
			if r.Date.Before(start) {
				start = r.Date
			}
		}
	case allData:
		return nil
	default:
		start = calendarDay(now).AddDate(0, 0, -7*weeks)
	}

	buckets := make(map[string]decimal.Decimal)
	mondays := make(map[string]time.Time)
	for _, r := range revenue {
		if r.Date.Before(start) {
			continue
		}
		monday := weekStart(r.Date)
		key := monday.Format("2006-01-02")
		if _, ok := mondays[key]; !ok {
			mondays[key] = monday
		}
		buckets[key] = buckets[key].Add(orderValue(r, totals))
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]entity.WeeklyTotal, 0, len(keys))
	for _, k := range keys {
		monday := mondays[k]
		year, week := monday.ISOWeek()
		out = append(out, entity.WeeklyTotal{
			WeekStart: monday,
			ISOYear:   year,
			ISOWeek:   week,
			Label:     monday.Format(weekLabelLayout),
			Total:     buckets[k].InexactFloat64(),
		})
	}
	return out
}

// weekStart returns midnight of the Monday starting t's ISO week.
func weekStart(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ComputeKPIs computes the period totals and the month-over-month trends
// relative to the calendar month containing now, read in now's location.
// Record dates are compared by their own calendar month.
func ComputeKPIs(revenue []entity.Revenue, lines []entity.RevenueLine, expenses []entity.ExpenseRecord, now time.Time) entity.KPISummary {
	totals := orderTotals(lines)

	current := now.Format("2006-01")
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previous := first.AddDate(0, -1, 0).Format("2006-01")

	var totalRev, totalExp, curRev, prevRev, curExp, prevExp decimal.Decimal
	var curOrders, prevOrders int

	for _, r := range revenue {
		v := orderValue(r, totals)
		totalRev = totalRev.Add(v)
		switch monthKey(r.Date) {
		case current:
			curRev = curRev.Add(v)
			curOrders++
		case previous:
			prevRev = prevRev.Add(v)
			prevOrders++
		}
	}
	for _, e := range expenses {
		v := decimal.NewFromFloat(e.TotalAmount)
		totalExp = totalExp.Add(v)
		switch monthKey(e.Date) {
		case current:
			curExp = curExp.Add(v)
		case previous:
			prevExp = prevExp.Add(v)
		}
	}

	k := entity.KPISummary{
		TotalRevenue:  totalRev.InexactFloat64(),
		TotalExpenses: totalExp.InexactFloat64(),
		ProfitLoss:    totalRev.Sub(totalExp).InexactFloat64(),
		TotalOrders:   len(revenue),

		CurrentMonthRevenue:   curRev.InexactFloat64(),
		PreviousMonthRevenue:  prevRev.InexactFloat64(),
		CurrentMonthExpenses:  curExp.InexactFloat64(),
		PreviousMonthExpenses: prevExp.InexactFloat64(),
		CurrentMonthOrders:    curOrders,
		PreviousMonthOrders:   prevOrders,
	}
	k.ProfitMargin = margin(k.TotalRevenue, k.TotalExpenses)
	if k.TotalOrders > 0 {
		k.AvgOrderValue = k.TotalRevenue / float64(k.TotalOrders)
	}
	k.RevenueTrend = PercentChange(k.CurrentMonthRevenue, k.PreviousMonthRevenue)
	k.ExpenseTrend = PercentChange(k.CurrentMonthExpenses, k.PreviousMonthExpenses)
	k.OrderTrend = PercentChange(float64(curOrders), float64(prevOrders))
	return k
}

type rankAccumulator struct {
	index map[string]int
	rows  []entity.RankedTotal
	sums  []decimal.Decimal
}

func newRankAccumulator() *rankAccumulator {
	return &rankAccumulator{index: make(map[string]int)}
}

func (a *rankAccumulator) add(key, name, category string, count float64, amount decimal.Decimal) {
	i, ok := a.index[key]
	if !ok {
		i = len(a.rows)
		a.index[key] = i
		a.rows = append(a.rows, entity.RankedTotal{Name: name, Category: category})
		a.sums = append(a.sums, decimal.Zero)
	}
	a.rows[i].Count += count
	a.sums[i] = a.sums[i].Add(amount)
}

// top returns the rows by descending total, first appearance breaking ties.
// limit <= 0 returns every row.
func (a *rankAccumulator) top(limit int) []entity.RankedTotal {
	out := make([]entity.RankedTotal, len(a.rows))
	for i := range a.rows {
		out[i] = a.rows[i]
		out[i].Total = a.sums[i].InexactFloat64()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopSuppliers ranks suppliers by total spend. Count is the number of expense records.
func TopSuppliers(expenses []entity.ExpenseRecord, dir *SupplierDirectory, limit int) []entity.RankedTotal {
	if dir == nil {
		dir = NewSupplierDirectory(nil, nil)
	}
	acc := newRankAccumulator()
	for _, e := range expenses {
		name := dir.Resolve(e)
		acc.add(strings.ToLower(name), name, dir.Category(e.SupplierKey), 1, decimal.NewFromFloat(e.TotalAmount))
	}
	return acc.top(limit)
}

// TopClients ranks clients by order value. Count is the number of orders.
func TopClients(revenue []entity.Revenue, lines []entity.RevenueLine, limit int) []entity.RankedTotal {
	totals := orderTotals(lines)
	acc := newRankAccumulator()
	for _, r := range revenue {
		name := NormalizeClientName(r.ClientName)
		acc.add(strings.ToLower(name), name, "", 1, orderValue(r, totals))
	}
	return acc.top(limit)
}

// MenuPerformance ranks every menu item by revenue. Count is the quantity sold.
func MenuPerformance(lines []entity.RevenueLine) []entity.RankedTotal {
	acc := newRankAccumulator()
	for _, l := range lines {
		acc.add(l.MenuItem, l.MenuItem, "", l.Quantity, decimal.NewFromFloat(l.LineTotal))
	}
	return acc.top(0)
}

// NormalizeClientName trims and collapses internal whitespace.
func NormalizeClientName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "Unknown"
	}
	return name
}
