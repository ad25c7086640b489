package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/analytics"
	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func kg(v float64) *float64 {
	return &v
}

func dashboardSnapshot() entity.Snapshot {
	return entity.Snapshot{
		Suppliers: []entity.Supplier{{Key: 1, StandardName: "Volailles du Sud", Category: "Food"}},
		Expenses: []entity.ExpenseRecord{
			{ID: "e1", Date: day("2025-04-01"), Description: "Poulet entier", Quantity: kg(100), UnitOfMeasure: "kg",
				NetAmount: 2000, TotalAmount: 2300, SupplierKey: 1},
			{ID: "e2", Date: day("2025-04-05"), Description: "Beer crates", Quantity: kg(48), UnitOfMeasure: "bottles",
				NetAmount: 2400, TotalAmount: 2760},
		},
		Revenue: []entity.Revenue{
			{ID: "r1", Date: day("2025-01-10"), ClientName: "Blue Lagoon", TotalRevenue: 4000},
			{ID: "r2", Date: day("2025-02-10"), ClientName: "Blue Lagoon", TotalRevenue: 4500},
			{ID: "r3", Date: day("2025-03-10"), ClientName: "Coral Tours", TotalRevenue: 5000},
			{ID: "r4", Date: day("2025-04-10"), ClientName: "Coral Tours", TotalRevenue: 5500},
		},
		FoodUsage: []entity.FoodUsage{
			{Date: day("2025-04-02"), PouletKg: 10},
			{Date: day("2025-04-03"), PouletKg: 12},
		},
		DrinksUsage: []entity.DrinksUsage{
			{Date: day("2025-04-02"), BeerBottles: 6},
		},
	}
}

type dashboardFixture struct {
	uc      *DashboardUseCase
	console *fakeConsole
	repo    *fakeSnapshotRepo
	export  *fakeExportRepo
	config  *fakeConfigRepo
	opened  []string
}

func newDashboardFixture(s entity.Snapshot) *dashboardFixture {
	f := &dashboardFixture{
		console: newFakeConsole(),
		repo:    &fakeSnapshotRepo{snapshot: s},
		export:  &fakeExportRepo{},
		config:  &fakeConfigRepo{},
	}
	opener := func(source, _ string) (repository.SnapshotRepository, error) {
		f.opened = append(f.opened, source)
		return f.repo, nil
	}
	f.uc = NewDashboardUseCase(opener, f.export, f.config, f.console)
	f.uc.now = func() time.Time { return day("2025-04-15").Add(9 * time.Hour) }
	return f
}

func TestRunDashboard_SingleRefresh(t *testing.T) {
	f := newDashboardFixture(dashboardSnapshot())
	args := &types.CLIArgs{Source: "snapshot.json", ReportName: "april", Dir: "/tmp/reports"}

	if err := f.uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("RunDashboard() error = %v", err)
	}

	if len(f.opened) != 1 || f.opened[0] != "snapshot.json" {
		t.Errorf("opened sources = %v", f.opened)
	}
	if f.repo.loads != 1 || !f.repo.closed {
		t.Errorf("repo loads = %d closed = %v, want one load and a close", f.repo.loads, f.repo.closed)
	}

	if len(f.export.exported) != 1 || f.export.name != "april" || f.export.dir != "/tmp/reports" {
		t.Errorf("export = %d reports, name %q dir %q", len(f.export.exported), f.export.name, f.export.dir)
	}
	if !containsMessage(f.console.success, "Successfully exported report to JSON: /tmp/reports/april.json") {
		t.Errorf("success messages = %v, want the export path", f.console.success)
	}
	if !containsMessage(f.console.infos, "No supplier anomalies detected") {
		t.Errorf("info messages = %v, want the empty anomalies notice", f.console.infos)
	}
	if len(f.console.statuses) != 2 || !strings.HasPrefix(f.console.statuses[1], "Analyzing ") {
		t.Errorf("status messages = %v, want load then analyze", f.console.statuses)
	}
	if !containsMessage(f.console.infos, "Projected revenue over the next 3 months") {
		t.Errorf("info messages = %v, want the 3-month projection", f.console.infos)
	}

	kpis := f.console.tableWith("Metric")
	if kpis == nil {
		t.Fatal("KPI table not rendered")
	}
	if kpis.rows[0][1] != "19,000.00" {
		t.Errorf("total revenue cell = %v, want 19,000.00", kpis.rows[0][1])
	}

	if inv := f.console.tableWith("Product"); inv == nil || len(inv.rows) != len(entity.AllCategories()) {
		t.Errorf("inventory table = %+v", inv)
	}
	if f.console.tableWith("Priority") == nil {
		t.Error("recommendations table not rendered")
	}

	bars := f.console.bars["Revenue Trend & Forecast"]
	if len(bars) != 7 {
		t.Fatalf("trend bars = %d, want 4 historical + 3 projected", len(bars))
	}
	if bars[3].Projected || !bars[4].Projected {
		t.Errorf("projection should start after the last historical month: %+v", bars)
	}
}

func TestRunDashboard_SectionsFilter(t *testing.T) {
	f := newDashboardFixture(dashboardSnapshot())
	args := &types.CLIArgs{Source: "snapshot.json", Sections: []string{"inventory"}}

	if err := f.uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("RunDashboard() error = %v", err)
	}
	if len(f.console.tables) != 1 || f.console.tableWith("Product") == nil {
		t.Errorf("rendered %d tables, want only inventory", len(f.console.tables))
	}
	if len(f.console.bars) != 0 {
		t.Errorf("trend bars rendered with sections=inventory")
	}
	if len(f.export.exported) != 0 {
		t.Error("export without a report name")
	}
}

func TestRunDashboard_SourceFromEnvironment(t *testing.T) {
	f := newDashboardFixture(dashboardSnapshot())
	f.config.envSource = "sqlite://catering.db"

	err := f.uc.RunDashboard(context.Background(), &types.CLIArgs{EnvFile: "prod.env", Sections: []string{"kpis"}})
	if err != nil {
		t.Fatalf("RunDashboard() error = %v", err)
	}
	if len(f.config.envFile) != 1 || f.config.envFile[0] != "prod.env" {
		t.Errorf("env files = %v", f.config.envFile)
	}
	if len(f.opened) != 1 || f.opened[0] != "sqlite://catering.db" {
		t.Errorf("opened sources = %v", f.opened)
	}
}

func TestRunDashboard_Errors(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		f := newDashboardFixture(entity.Snapshot{})
		err := f.uc.RunDashboard(context.Background(), &types.CLIArgs{Source: "snapshot.json"})
		if !errors.Is(err, types.ErrEmptySnapshot) {
			t.Errorf("error = %v, want ErrEmptySnapshot", err)
		}
		if !f.repo.closed {
			t.Error("repo not closed after failure")
		}
	})

	t.Run("load failure", func(t *testing.T) {
		loadErr := errors.New("connection refused")
		f := newDashboardFixture(entity.Snapshot{})
		f.repo.err = loadErr
		if err := f.uc.RunDashboard(context.Background(), &types.CLIArgs{Source: "snapshot.json"}); !errors.Is(err, loadErr) {
			t.Errorf("error = %v, want %v", err, loadErr)
		}
	})

	t.Run("open failure", func(t *testing.T) {
		f := newDashboardFixture(dashboardSnapshot())
		f.uc.openSnapshot = func(string, string) (repository.SnapshotRepository, error) {
			return nil, types.ErrUnsupportedSource
		}
		if err := f.uc.RunDashboard(context.Background(), &types.CLIArgs{Source: "x.csv"}); !errors.Is(err, types.ErrUnsupportedSource) {
			t.Errorf("error = %v, want ErrUnsupportedSource", err)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		f := newDashboardFixture(dashboardSnapshot())
		if err := f.uc.RunDashboard(context.Background(), &types.CLIArgs{ConfigFile: "missing.toml"}); err == nil {
			t.Error("RunDashboard() returned nil error")
		}
		if len(f.opened) != 0 {
			t.Error("source opened despite config failure")
		}
	})
}

func TestRunDashboard_WatchStopsOnCancel(t *testing.T) {
	f := newDashboardFixture(dashboardSnapshot())
	ctx, cancel := context.WithCancel(context.Background())
	f.repo.onLoad = func(n int) {
		if n == 2 {
			cancel()
		}
	}

	args := &types.CLIArgs{Source: "snapshot.json", Watch: true, Refresh: time.Millisecond, Sections: []string{"kpis"}}
	if err := f.uc.RunDashboard(ctx, args); err != nil {
		t.Fatalf("RunDashboard() error = %v", err)
	}
	if f.repo.loads != 2 {
		t.Errorf("loads = %d, want 2", f.repo.loads)
	}
}

func TestRunDashboard_WatchLogsRefreshErrors(t *testing.T) {
	f := newDashboardFixture(dashboardSnapshot())
	f.repo.err = errors.New("timeout")
	ctx, cancel := context.WithCancel(context.Background())
	f.repo.onLoad = func(n int) {
		if n == 2 {
			cancel()
		}
	}

	args := &types.CLIArgs{Source: "snapshot.json", Watch: true, Refresh: time.Millisecond}
	if err := f.uc.RunDashboard(ctx, args); err != nil {
		t.Fatalf("RunDashboard() error = %v", err)
	}
	if len(f.console.errors) != 1 {
		t.Errorf("logged errors = %v, want the first refresh failure only", f.console.errors)
	}
}

func TestAnalyze_MemoizesBySnapshotContent(t *testing.T) {
	f := newDashboardFixture(dashboardSnapshot())
	settings, err := ResolveSettings(nil, &types.CLIArgs{Source: "snapshot.json"})
	if err != nil {
		t.Fatalf("ResolveSettings() error = %v", err)
	}
	engine := analytics.New(settings.Policy)

	s := dashboardSnapshot()
	first, cached := f.uc.Analyze(engine, s, settings)
	if cached {
		t.Fatal("first analysis reported as cached")
	}

	s.FetchedAt = time.Now()
	second, cached := f.uc.Analyze(engine, s, settings)
	if !cached {
		t.Error("same records with a new fetch time should hit the cache")
	}
	if second.KPIs != first.KPIs {
		t.Errorf("cached KPIs differ: %+v vs %+v", second.KPIs, first.KPIs)
	}

	s.Revenue = append(s.Revenue, entity.Revenue{ID: "r5", Date: day("2025-04-12"), TotalRevenue: 100})
	third, cached := f.uc.Analyze(engine, s, settings)
	if cached {
		t.Error("changed snapshot should not hit the cache")
	}
	if third.KPIs.TotalRevenue != first.KPIs.TotalRevenue+100 {
		t.Errorf("TotalRevenue = %v, want %v", third.KPIs.TotalRevenue, first.KPIs.TotalRevenue+100)
	}

	settings.Client = "Coral Tours"
	if _, cached := f.uc.Analyze(engine, s, settings); cached {
		t.Error("a different client filter should not hit the cache")
	}
}
