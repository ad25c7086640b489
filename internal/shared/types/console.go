package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayTrendBars(title string, bars []TrendBar)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// TrendBar é um ponto de uma série exibida como gráfico de barras.
// Projected marca valores extrapolados, desenhados com outro estilo.
type TrendBar struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Upper     float64 `json:"upper,omitempty"`
	Lower     float64 `json:"lower,omitempty"`
	Projected bool    `json:"projected"`
}
