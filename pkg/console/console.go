package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars exibe uma série como gráfico de barras horizontal.
// Barras projetadas usam um bloco mais claro e mostram a faixa de confiança.
func (c *Console) DisplayTrendBars(title string, bars []types.TrendBar) {
	maxValue := 0.0
	for _, b := range bars {
		maxValue = math.Max(maxValue, math.Max(b.Value, b.Upper))
	}

	if maxValue == 0 {
		pterm.Warning.Printfln("All values are 0.00 for %s", title)
		return
	}

	tableData := pterm.TableData{
		{"Period", "Value", "", "Change"},
	}

	var prev *float64
	for _, b := range bars {
		tableData = append(tableData, []string{
			b.Label,
			formatValue(b),
			renderBar(b, maxValue),
			formatChange(prev, b.Value),
		})

		current := b.Value
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

const barWidth = 40

func renderBar(b types.TrendBar, maxValue float64) string {
	length := int((b.Value / maxValue) * barWidth)
	if length < 0 {
		length = 0
	}
	if b.Projected {
		return pterm.FgMagenta.Sprint(strings.Repeat("░", length))
	}
	return pterm.FgBlue.Sprint(strings.Repeat("█", length))
}

func formatValue(b types.TrendBar) string {
	value := humanize.FormatFloat("#,###.##", b.Value)
	if b.Projected && b.Upper > b.Lower {
		return fmt.Sprintf("%s (%s - %s)", BrightMagenta(value),
			humanize.FormatFloat("#,###.", b.Lower), humanize.FormatFloat("#,###.", b.Upper))
	}
	return value
}

// formatChange mostra a variação contra o ponto anterior; crescimento de receita é verde.
func formatChange(prev *float64, value float64) string {
	if prev == nil {
		return ""
	}
	if *prev < 0.01 {
		if value < 0.01 {
			return pterm.FgYellow.Sprint("0%")
		}
		return pterm.FgGreen.Sprint("N/A")
	}

	changePercent := ((value - *prev) / *prev) * 100.0
	switch {
	case math.Abs(changePercent) < 0.01:
		return pterm.FgYellow.Sprint("0%")
	case changePercent > 999:
		return pterm.FgGreen.Sprint(">+999%")
	case changePercent > 0:
		return pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
	default:
		return pterm.FgRed.Sprintf("%.2f%%", changePercent)
	}
}
