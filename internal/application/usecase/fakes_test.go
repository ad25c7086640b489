package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                          { return "" }

type fakeStatus struct {
	console *fakeConsole
}

func (s fakeStatus) Update(message string) { s.console.statuses = append(s.console.statuses, message) }
func (s fakeStatus) Stop()                 {}

type fakeConsole struct {
	tables   []*fakeTable
	bars     map[string][]types.TrendBar
	infos    []string
	warnings []string
	errors   []string
	success  []string
	statuses []string
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{bars: map[string][]types.TrendBar{}}
}

func (c *fakeConsole) Print(...interface{})          {}
func (c *fakeConsole) Printf(string, ...interface{}) {}
func (c *fakeConsole) Println(...interface{})        {}

func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.statuses = append(c.statuses, message)
	return fakeStatus{console: c}
}

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

func (c *fakeConsole) DisplayTrendBars(title string, bars []types.TrendBar) {
	c.bars[title] = bars
}

// tableWith returns the first rendered table whose first column is name.
// containsMessage reports whether any logged message contains want.
func containsMessage(messages []string, want string) bool {
	for _, m := range messages {
		if strings.Contains(m, want) {
			return true
		}
	}
	return false
}

func (c *fakeConsole) tableWith(first string) *fakeTable {
	for _, t := range c.tables {
		if len(t.columns) > 0 && t.columns[0] == first {
			return t
		}
	}
	return nil
}

type fakeSnapshotRepo struct {
	snapshot entity.Snapshot
	err      error
	loads    int
	closed   bool
	onLoad   func(n int)
}

func (r *fakeSnapshotRepo) Load(context.Context) (entity.Snapshot, error) {
	r.loads++
	if r.onLoad != nil {
		r.onLoad(r.loads)
	}
	return r.snapshot, r.err
}

func (r *fakeSnapshotRepo) Describe() string { return "fake" }

func (r *fakeSnapshotRepo) Close() error {
	r.closed = true
	return nil
}

type fakeExportRepo struct {
	exported []entity.Report
	name     string
	dir      string
}

func (r *fakeExportRepo) ExportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	r.exported = append(r.exported, report)
	r.name, r.dir = filename, outputDir
	return outputDir + "/" + filename + ".json", nil
}

type fakeConfigRepo struct {
	config    *types.Config
	envFile   []string
	envSource string
}

func (r *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	if r.config == nil {
		return nil, fmt.Errorf("no config")
	}
	c := *r.config
	return &c, nil
}

func (r *fakeConfigRepo) LoadEnv(files ...string) error {
	r.envFile = files
	return nil
}

func (r *fakeConfigRepo) ApplyEnv(cfg *types.Config) {
	if cfg.Source == "" {
		cfg.Source = r.envSource
	}
}
