package main

import (
	"fmt"
	"os"

	"github.com/diillson/catering-analytics-go/internal/adapter/driven/config"
	"github.com/diillson/catering-analytics-go/internal/adapter/driven/export"
	"github.com/diillson/catering-analytics-go/internal/adapter/driven/source"
	"github.com/diillson/catering-analytics-go/internal/adapter/driving/cli"
	"github.com/diillson/catering-analytics-go/internal/application/usecase"
	"github.com/diillson/catering-analytics-go/pkg/console"
	"github.com/diillson/catering-analytics-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		source.Open,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
