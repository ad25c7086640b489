package usecase

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// render exibe as seções habilitadas na ordem de AllSections.
func (uc *DashboardUseCase) render(report entity.Report, settings Settings) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("Catering analytics for %s (generated %s)",
		describeRange(report.Range), report.GeneratedAt.Format("2006-01-02 15:04 MST")))
	if settings.Client != "" {
		uc.console.Printf("%s\n", pterm.FgYellow.Sprintf("Client filter: %s", settings.Client))
	}

	for _, section := range AllSections {
		if !settings.Has(section) {
			continue
		}
		switch section {
		case SectionKPIs:
			uc.renderKPIs(report.KPIs)
		case SectionTrend:
			uc.renderTrend(report.Trend, settings.Policy.TrendMinPoints)
		case SectionWeekly:
			uc.renderWeekly(report.Weekly)
		case SectionRankings:
			uc.renderRanking("Top Suppliers", "Supplier", report.TopSuppliers, true)
			uc.renderRanking("Top Clients", "Client", report.TopClients, false)
			uc.renderRanking("Menu Performance", "Menu Item", report.Menu, false)
		case SectionInventory:
			uc.renderInventory(report.Inventory, settings.Policy.NoDepletionDays)
		case SectionOrders:
			uc.renderOrders(report.Recommendations, settings.Policy.StockoutSentinel)
		case SectionDemand:
			uc.renderDemand(report.Demand)
		case SectionCosts:
			uc.renderDailyCosts("Daily Food Cost", report.FoodCosts, entity.FoodCategories)
			uc.renderDailyCosts("Daily Drinks Cost", report.DrinksCosts, entity.DrinksCategories)
		case SectionDrinks:
			uc.renderStandardDrinks(report.StandardDrinks)
		case SectionPurchases:
			uc.renderPurchases(report.Purchases)
		case SectionAnomalies:
			uc.renderAnomalies(report.Anomalies)
		case SectionWarnings:
			for _, w := range report.Warnings {
				uc.console.LogWarning("%s", w)
			}
		}
	}
}

func (uc *DashboardUseCase) printTable(title string, table types.TableInterface) {
	uc.console.Printf("\n%s\n", pterm.FgCyan.Sprint(title))
	uc.console.Print(table.Render())
	uc.console.Println()
}

func (uc *DashboardUseCase) renderKPIs(k entity.KPISummary) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddColumn("This Month")
	table.AddColumn("Last Month")
	table.AddColumn("Change")

	table.AddRow("Revenue", money(k.TotalRevenue), money(k.CurrentMonthRevenue), money(k.PreviousMonthRevenue),
		colorChange(k.RevenueTrend, false))
	table.AddRow("Expenses", money(k.TotalExpenses), money(k.CurrentMonthExpenses), money(k.PreviousMonthExpenses),
		colorChange(k.ExpenseTrend, true))
	table.AddRow("Orders", humanize.Comma(int64(k.TotalOrders)), humanize.Comma(int64(k.CurrentMonthOrders)),
		humanize.Comma(int64(k.PreviousMonthOrders)), colorChange(k.OrderTrend, false))
	table.AddRow("Profit / Loss", colorMoney(k.ProfitLoss), "", "", "")
	table.AddRow("Profit Margin", fmt.Sprintf("%.1f%%", k.ProfitMargin), "", "", "")
	table.AddRow("Avg Order Value", money(k.AvgOrderValue), "", "", "")

	uc.printTable("Key Figures", table)
}

func (uc *DashboardUseCase) renderTrend(t entity.TrendForecast, minPoints int) {
	if len(t.Points) == 0 {
		uc.console.LogWarning("No monthly history available for the revenue trend")
		return
	}

	bars := make([]types.TrendBar, 0, len(t.Points))
	horizon := 0
	for _, p := range t.Points {
		bars = append(bars, types.TrendBar{
			Label:     p.Label,
			Value:     p.Revenue,
			Upper:     p.RevUpper,
			Lower:     p.RevLower,
			Projected: p.IsForecast,
		})
		if p.IsForecast {
			horizon++
		}
	}
	uc.console.DisplayTrendBars("Revenue Trend & Forecast", bars)

	if horizon == 0 {
		uc.console.LogWarning("At least %d months of history are needed for a forecast", minPoints)
		return
	}
	// ProjectedRevenue soma todos os meses projetados.
	uc.console.LogInfo("Projected revenue over the next %d months: %s (margin %.1f%%, %s vs. current)",
		horizon, money(t.ProjectedRevenue), t.ProjectedMargin, signedPoints(t.MarginChange))
}

func (uc *DashboardUseCase) renderWeekly(weeks []entity.WeeklyTotal) {
	if len(weeks) == 0 {
		return
	}
	bars := make([]types.TrendBar, 0, len(weeks))
	for _, w := range weeks {
		bars = append(bars, types.TrendBar{Label: w.Label, Value: w.Total})
	}
	uc.console.DisplayTrendBars("Weekly Revenue", bars)
}

func (uc *DashboardUseCase) renderRanking(title, nameColumn string, rows []entity.RankedTotal, withCategory bool) {
	if len(rows) == 0 {
		return
	}
	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn(nameColumn)
	if withCategory {
		table.AddColumn("Category")
	}
	table.AddColumn("Count")
	table.AddColumn("Total")

	for i, r := range rows {
		cells := []interface{}{i + 1, r.Name}
		if withCategory {
			cells = append(cells, r.Category)
		}
		cells = append(cells, quantity(r.Count), money(r.Total))
		table.AddRow(cells...)
	}
	uc.printTable(title, table)
}

func (uc *DashboardUseCase) renderInventory(rows []entity.InventoryStatus, noDepletion int) {
	table := uc.console.CreateTable()
	for _, c := range []string{"Product", "Purchased", "Used", "On Hand", "Avg / Day", "Days Supply", "Status"} {
		table.AddColumn(c)
	}

	for _, r := range rows {
		supply := humanize.Comma(int64(r.DaysSupply))
		if r.DaysSupply >= noDepletion {
			supply = "no usage"
		}
		table.AddRow(
			r.Category.Label(),
			withUnit(r.Purchased, r.Unit),
			withUnit(r.Used, r.Unit),
			withUnit(r.OnHand, r.Unit),
			withUnit(r.AvgDailyUse, r.Unit),
			supply,
			colorHealth(r.Status),
		)
	}
	uc.printTable("Inventory", table)
}

func (uc *DashboardUseCase) renderOrders(rows []entity.OrderRecommendation, sentinel int) {
	if len(rows) == 0 {
		return
	}
	table := uc.console.CreateTable()
	for _, c := range []string{"Priority", "Product", "Stock", "Avg / Day", "Stockout In", "7-Day Forecast", "Suggested Order"} {
		table.AddColumn(c)
	}

	for _, r := range rows {
		stockout := fmt.Sprintf("%d days", r.DaysUntilStockout)
		if r.DaysUntilStockout >= sentinel {
			stockout = "-"
		}
		table.AddRow(colorPriority(r.Priority), r.Product, quantity(r.CurrentStock), quantity(r.AvgDailyUse),
			stockout, quantity(r.Forecast7d), quantity(r.SuggestedOrder))
	}
	uc.printTable("Reorder Recommendations", table)
}

func (uc *DashboardUseCase) renderDemand(points []entity.DemandForecastPoint) {
	if len(points) == 0 {
		return
	}
	cats := entity.AllCategories()

	table := uc.console.CreateTable()
	table.AddColumn("Day")
	for _, c := range cats {
		table.AddColumn(c.Label())
	}
	for _, p := range points {
		cells := []interface{}{fmt.Sprintf("%s %s", p.DayLabel, p.Day.Format("02/01"))}
		for _, c := range cats {
			cells = append(cells, quantity(p.Quantities[c]))
		}
		table.AddRow(cells...)
	}
	uc.printTable("7-Day Demand Forecast", table)
}

func (uc *DashboardUseCase) renderDailyCosts(title string, r entity.DailyCostReport, cats []entity.Category) {
	if len(r.Rows) == 0 && !r.HasUnweightedCost() {
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Date")
	for _, c := range cats {
		table.AddColumn(c.Label())
	}
	table.AddColumn("Total")

	for _, row := range r.Rows {
		cells := []interface{}{row.Date.Format("2006-01-02")}
		for _, c := range cats {
			cells = append(cells, money(row.Costs[c]))
		}
		cells = append(cells, money(row.TotalCost))
		table.AddRow(cells...)
	}

	basis := []interface{}{"Cost / unit"}
	totals := []interface{}{"Total"}
	for _, c := range cats {
		basis = append(basis, money(r.CostBasis.Of(c)))
		totals = append(totals, money(r.CategoryTotals[c]))
	}
	basis = append(basis, "")
	totals = append(totals, money(r.AllocatedTotal))
	table.AddRow(basis...)
	table.AddRow(totals...)

	uc.printTable(title, table)
	if r.HasUnweightedCost() {
		uc.console.Printf("Purchases without quantity: %s (%d records). Grand total: %s\n",
			money(r.UnweightedCost), len(r.UnweightedRecords), money(r.GrandTotal))
	}
}

func (uc *DashboardUseCase) renderStandardDrinks(r entity.DrinksCostReport) {
	if len(r.Rows) == 0 {
		return
	}
	table := uc.console.CreateTable()
	table.AddColumn("Date")
	for _, d := range entity.Drinks {
		table.AddColumn(drinkLabel(d))
	}
	table.AddColumn("Total")

	for _, row := range r.Rows {
		cells := []interface{}{row.Date.Format("2006-01-02")}
		for _, d := range entity.Drinks {
			cells = append(cells, fmt.Sprintf("%s (%s)", quantity(row.Bottles[d]), money(row.Costs[d])))
		}
		cells = append(cells, money(row.TotalCost))
		table.AddRow(cells...)
	}

	totals := []interface{}{"Total"}
	for _, d := range entity.Drinks {
		totals = append(totals, money(r.Totals[d]))
	}
	totals = append(totals, money(r.GrandTotal))
	table.AddRow(totals...)

	uc.printTable("Drinks at Standard Cost", table)
}

func (uc *DashboardUseCase) renderPurchases(rows []entity.ClassifiedExpense) {
	if len(rows) == 0 {
		return
	}
	table := uc.console.CreateTable()
	for _, c := range []string{"Date", "Supplier", "Description", "Product", "Quantity", "Net", "Costed"} {
		table.AddColumn(c)
	}
	for _, r := range rows {
		q := "-"
		if r.Quantity != nil {
			q = withUnit(*r.Quantity, r.UnitOfMeasure)
		}
		costed := pterm.FgGreen.Sprint("yes")
		if !r.Weighted {
			costed = pterm.FgYellow.Sprint("no")
		}
		table.AddRow(r.Date.Format("2006-01-02"), r.SupplierName, r.Description, r.Product.Label(), q, money(r.NetAmount), costed)
	}
	uc.printTable("Tracked Purchases", table)
}

func (uc *DashboardUseCase) renderAnomalies(alerts []entity.AnomalyAlert) {
	if len(alerts) == 0 {
		uc.console.LogInfo("No supplier anomalies detected")
		return
	}
	table := uc.console.CreateTable()
	for _, c := range []string{"Severity", "Alert", "Details", "Change", "Monthly Impact"} {
		table.AddColumn(c)
	}
	for _, a := range alerts {
		impact := "-"
		if a.Impact != nil {
			impact = money(*a.Impact)
		}
		table.AddRow(colorSeverity(a.Severity), a.Title, a.Description, fmt.Sprintf("%+.1f%%", a.PercentChange), impact)
	}
	uc.printTable("Supplier Anomalies", table)
}

func describeRange(r entity.DateRange) string {
	switch {
	case r.From == nil && r.To == nil:
		return "all time"
	case r.From == nil:
		return "up to " + r.To.Format("2006-01-02")
	case r.To == nil:
		return "from " + r.From.Format("2006-01-02")
	default:
		return r.From.Format("2006-01-02") + " to " + r.To.Format("2006-01-02")
	}
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func quantity(v float64) string {
	return humanize.FormatFloat("#,###.#", v)
}

func withUnit(v float64, unit string) string {
	if unit == "" {
		return quantity(v)
	}
	return quantity(v) + " " + unit
}

func signedPoints(v float64) string {
	return fmt.Sprintf("%+.1f pts", v)
}

func colorMoney(v float64) string {
	if v < 0 {
		return pterm.FgRed.Sprint(money(v))
	}
	return pterm.FgGreen.Sprint(money(v))
}

// colorChange pinta aumentos de vermelho quando crescer é ruim (despesas).
func colorChange(pct float64, increaseIsBad bool) string {
	text := fmt.Sprintf("%+.1f%%", pct)
	switch {
	case pct == 0:
		return pterm.FgYellow.Sprint(text)
	case (pct > 0) != increaseIsBad:
		return pterm.FgGreen.Sprint(text)
	default:
		return pterm.FgRed.Sprint(text)
	}
}

func colorHealth(h entity.HealthTier) string {
	switch h {
	case entity.HealthCritical:
		return pterm.FgRed.Sprint(strings.ToUpper(string(h)))
	case entity.HealthLow:
		return pterm.FgYellow.Sprint(strings.ToUpper(string(h)))
	default:
		return pterm.FgGreen.Sprint(strings.ToUpper(string(h)))
	}
}

func colorPriority(p entity.Priority) string {
	switch p {
	case entity.PriorityUrgent:
		return pterm.FgRed.Sprint(strings.ToUpper(string(p)))
	case entity.PriorityMedium:
		return pterm.FgYellow.Sprint(strings.ToUpper(string(p)))
	default:
		return pterm.FgCyan.Sprint(strings.ToUpper(string(p)))
	}
}

func colorSeverity(s entity.Severity) string {
	switch s {
	case entity.SeverityRed:
		return pterm.FgRed.Sprint("HIGH")
	case entity.SeverityYellow:
		return pterm.FgYellow.Sprint("MEDIUM")
	default:
		return pterm.FgBlue.Sprint("INFO")
	}
}

func drinkLabel(d entity.Drink) string {
	switch d {
	case entity.DrinkCocaCola:
		return "Coca-Cola"
	case entity.DrinkSprite:
		return "Sprite"
	case entity.DrinkBeer:
		return "Beer"
	case entity.DrinkRhum:
		return "Rhum"
	case entity.DrinkRose:
		return "Rosé"
	default:
		return "Blanc"
	}
}
