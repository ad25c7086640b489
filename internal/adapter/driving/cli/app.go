package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/catering-analytics-go/internal/application/usecase"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
	"github.com/diillson/catering-analytics-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "catering-analytics",
		Short:         "Cost & demand analytics dashboard for marine catering operations",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Catering Analytics version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("env-file", "e", "", "Path to a .env file (default: ./.env when present)")
	flags.StringP("source", "s", "", "Snapshot source: file (.json/.yaml/.toml), postgres://, sqlite:// or s3:// URL")
	flags.String("aws-profile", "", "AWS profile used by s3:// sources")
	flags.StringP("preset", "p", "", "Date preset: this_month, last_month, last_3_months, all_time, custom")
	flags.String("from", "", "Start date (YYYY-MM-DD), implies the custom preset")
	flags.String("to", "", "End date (YYYY-MM-DD), implies the custom preset")
	flags.StringP("client", "c", "", "Restrict revenue to a single client")
	flags.Bool("all-weeks", false, "Show every week of history instead of the recent window")
	flags.BoolP("watch", "w", false, "Reload the snapshot and refresh the dashboard periodically")
	flags.DurationP("refresh", "r", 0, "Refresh interval in watch mode (default 5m)")
	flags.StringSlice("sections", nil, "Sections to display (comma-separated): kpis, trend, weekly, rankings, inventory, orders, demand, costs, drinks, purchases, anomalies, warnings")
	flags.StringP("report-name", "n", "", "Base name for the JSON report file (enables export)")
	flags.StringP("dir", "d", "", "Directory to save the report file (default: current directory)")
	flags.Bool("export", false, "Export the report as JSON")
	flags.String("timezone", "", "IANA timezone used for weekdays and months, e.g. Indian/Mauritius")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	source, _ := flags.GetString("source")
	awsProfile, _ := flags.GetString("aws-profile")
	preset, _ := flags.GetString("preset")
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	client, _ := flags.GetString("client")
	allWeeks, _ := flags.GetBool("all-weeks")
	watch, _ := flags.GetBool("watch")
	refresh, _ := flags.GetDuration("refresh")
	sections, _ := flags.GetStringSlice("sections")
	reportName, _ := flags.GetString("report-name")
	dir, _ := flags.GetString("dir")
	export, _ := flags.GetBool("export")
	timezone, _ := flags.GetString("timezone")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		EnvFile:    envFile,
		Source:     source,
		AWSProfile: awsProfile,
		Preset:     preset,
		From:       from,
		To:         to,
		Client:     client,
		AllWeeks:   allWeeks,
		Watch:      watch,
		Refresh:    refresh,
		Sections:   sections,
		ReportName: reportName,
		Dir:        dir,
		Export:     export,
		Timezone:   timezone,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Ctrl+C encerra o modo watch de forma limpa
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
