package analytics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		current, previous, want float64
	}{
		{0, 0, 0},
		{50, 0, 100},
		{150, 100, 50},
		{50, 100, -50},
		{-10, 0, 0},
	}
	for _, tt := range tests {
		if got := PercentChange(tt.current, tt.previous); got != tt.want {
			t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
		}
	}
}

func revenueFixture() ([]entity.Revenue, []entity.RevenueLine, []entity.ExpenseRecord) {
	revenue := []entity.Revenue{
		{ID: "r1", Date: day("2025-03-04"), ClientName: "Blue Lagoon", TotalRevenue: 999},
		{ID: "r2", Date: day("2025-03-20"), ClientName: " blue  lagoon ", TotalRevenue: 400},
		{ID: "r3", Date: day("2025-04-02"), ClientName: "Coral Tours", TotalRevenue: 700},
	}
	lines := []entity.RevenueLine{
		{ID: "l1", RevenueID: "r1", MenuItem: "Lobster BBQ", Quantity: 2, LineTotal: 300},
		{ID: "l2", RevenueID: "r1", MenuItem: "Soft drinks", Quantity: 4, LineTotal: 100},
		{ID: "l3", RevenueID: "r3", MenuItem: "Lobster BBQ", Quantity: 1, LineTotal: 150},
	}
	expenses := []entity.ExpenseRecord{
		{ID: "e1", Date: day("2025-02-27"), TotalAmount: 80},
		{ID: "e2", Date: day("2025-03-15"), TotalAmount: 120},
		{ID: "e3", Date: day("2025-04-01"), TotalAmount: 60},
	}
	return revenue, lines, expenses
}

func TestMonthlySeries(t *testing.T) {
	revenue, lines, expenses := revenueFixture()

	got := MonthlySeries(revenue, lines, expenses)

	want := []entity.MonthlyTotal{
		{Month: day("2025-02-01"), Label: "Feb '25", Expenses: 80},
		// r1 uses its lines (400), r2 has none and falls back to the header (400)
		{Month: day("2025-03-01"), Label: "Mar '25", Revenue: 800, Expenses: 120, Orders: 2},
		{Month: day("2025-04-01"), Label: "Apr '25", Revenue: 150, Expenses: 60, Orders: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MonthlySeries() mismatch (-want +got):\n%s", diff)
	}
}

func TestWeeklySeries(t *testing.T) {
	revenue := []entity.Revenue{
		{ID: "a", Date: day("2024-12-30"), TotalRevenue: 10}, // Monday, ISO week 2025-W01
		{ID: "b", Date: day("2025-01-05"), TotalRevenue: 20}, // Sunday, same ISO week
		{ID: "c", Date: day("2025-01-06"), TotalRevenue: 40}, // Monday, 2025-W02
		{ID: "d", Date: day("2024-06-01"), TotalRevenue: 99}, // outside the 9-week window
	}
	now := day("2025-01-08")

	got := WeeklySeries(revenue, nil, now, 9, false)

	want := []entity.WeeklyTotal{
		{WeekStart: day("2024-12-30"), ISOYear: 2025, ISOWeek: 1, Label: "Dec 30", Total: 30},
		{WeekStart: day("2025-01-06"), ISOYear: 2025, ISOWeek: 2, Label: "Jan 6", Total: 40},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WeeklySeries() mismatch (-want +got):\n%s", diff)
	}

	all := WeeklySeries(revenue, nil, now, 9, true)
	if len(all) != 3 || all[0].WeekStart.Format("2006-01-02") != "2024-05-27" {
		t.Errorf("allData series = %+v", all)
	}
}

func TestComputeKPIs(t *testing.T) {
	revenue, lines, expenses := revenueFixture()
	now := day("2025-04-10")

	got := ComputeKPIs(revenue, lines, expenses, now)

	approx(t, "total revenue", got.TotalRevenue, 950)
	approx(t, "total expenses", got.TotalExpenses, 260)
	approx(t, "profit", got.ProfitLoss, 690)
	approx(t, "margin", got.ProfitMargin, 690.0/950*100)
	approx(t, "aov", got.AvgOrderValue, 950.0/3)
	approx(t, "current revenue", got.CurrentMonthRevenue, 150)
	approx(t, "previous revenue", got.PreviousMonthRevenue, 800)
	approx(t, "revenue trend", got.RevenueTrend, (150.0-800)/800*100)
	approx(t, "expense trend", got.ExpenseTrend, (60.0-120)/120*100)
	approx(t, "order trend", got.OrderTrend, -50)
	if got.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", got.TotalOrders)
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	got := ComputeKPIs(nil, nil, nil, day("2025-04-10"))
	if diff := cmp.Diff(entity.KPISummary{}, got); diff != "" {
		t.Errorf("ComputeKPIs() on empty input mismatch (-want +got):\n%s", diff)
	}
}

func TestTopClientsAndMenu(t *testing.T) {
	revenue, lines, _ := revenueFixture()

	clients := TopClients(revenue, lines, 5)
	wantClients := []entity.RankedTotal{
		{Name: "Blue Lagoon", Count: 2, Total: 800},
		{Name: "Coral Tours", Count: 1, Total: 150},
	}
	if diff := cmp.Diff(wantClients, clients); diff != "" {
		t.Errorf("TopClients() mismatch (-want +got):\n%s", diff)
	}

	menu := MenuPerformance(lines)
	wantMenu := []entity.RankedTotal{
		{Name: "Lobster BBQ", Count: 3, Total: 450},
		{Name: "Soft drinks", Count: 4, Total: 100},
	}
	if diff := cmp.Diff(wantMenu, menu); diff != "" {
		t.Errorf("MenuPerformance() mismatch (-want +got):\n%s", diff)
	}
}

func TestTopSuppliers(t *testing.T) {
	dir := NewSupplierDirectory(
		[]entity.Supplier{{Key: 1, StandardName: "Ocean Catch", Category: "Seafood"}},
		DefaultPolicy().SupplierAliases,
	)
	expenses := []entity.ExpenseRecord{
		{SupplierKey: 1, TotalAmount: 100},
		{SupplierName: "Nepaul", TotalAmount: 80},
		{SupplierName: "K Nepaulsing", TotalAmount: 90},
		{SupplierKey: 9, TotalAmount: 20},
		{SupplierKey: 1, TotalAmount: 30},
	}

	got := TopSuppliers(expenses, dir, 2)

	want := []entity.RankedTotal{
		{Name: "K. Nepaulsing & Co Ltd", Category: "General", Count: 2, Total: 170},
		{Name: "Ocean Catch", Category: "Seafood", Count: 2, Total: 130},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopSuppliers() mismatch (-want +got):\n%s", diff)
	}
}
