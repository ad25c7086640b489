package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/diillson/catering-analytics-go/internal/domain/analytics"
	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// SnapshotOpener cria o repositório para uma string de origem.
type SnapshotOpener func(source, awsProfile string) (repository.SnapshotRepository, error)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	openSnapshot SnapshotOpener
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	console      types.ConsoleInterface
	reports      *cache.Cache
	now          func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	openSnapshot SnapshotOpener,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		openSnapshot: openSnapshot,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		console:      console,
		reports:      cache.New(30*time.Minute, time.Hour),
		now:          time.Now,
	}
}

// LoadSettings lê .env e o arquivo de configuração e aplica as flags por cima.
func (uc *DashboardUseCase) LoadSettings(args *types.CLIArgs) (Settings, error) {
	var envFiles []string
	if args.EnvFile != "" {
		envFiles = append(envFiles, args.EnvFile)
	}
	if err := uc.configRepo.LoadEnv(envFiles...); err != nil {
		return Settings{}, err
	}

	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return Settings{}, err
		}
		cfg = loaded
	}
	uc.configRepo.ApplyEnv(cfg)

	return ResolveSettings(cfg, args)
}

// RunDashboard carrega o snapshot, executa o motor e exibe o painel.
// Em modo watch repete o ciclo até o contexto ser cancelado.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	settings, err := uc.LoadSettings(args)
	if err != nil {
		return err
	}

	repo, err := uc.openSnapshot(settings.Source, settings.AWSProfile)
	if err != nil {
		return err
	}
	defer repo.Close()

	engine := analytics.New(settings.Policy)

	if !settings.Watch {
		_, err := uc.Refresh(ctx, repo, engine, settings)
		return err
	}
	return uc.watch(ctx, repo, engine, settings)
}

func (uc *DashboardUseCase) watch(
	ctx context.Context,
	repo repository.SnapshotRepository,
	engine *analytics.Engine,
	settings Settings,
) error {
	uc.console.LogInfo("Watching %s every %s. Press Ctrl+C to stop.", repo.Describe(), settings.Refresh)

	ticker := time.NewTicker(settings.Refresh)
	defer ticker.Stop()

	for {
		if _, err := uc.Refresh(ctx, repo, engine, settings); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			uc.console.LogError("Refresh failed: %s", err)
		}
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Refresh executa um ciclo completo: carga, análise, exibição e exportação opcional.
func (uc *DashboardUseCase) Refresh(
	ctx context.Context,
	repo repository.SnapshotRepository,
	engine *analytics.Engine,
	settings Settings,
) (entity.Report, error) {
	status := uc.console.Status(fmt.Sprintf("Loading snapshot from %s...", repo.Describe()))
	snap, err := repo.Load(ctx)
	if err != nil {
		status.Stop()
		return entity.Report{}, err
	}
	if snap.Empty() {
		status.Stop()
		return entity.Report{}, fmt.Errorf("%s: %w", repo.Describe(), types.ErrEmptySnapshot)
	}

	status.Update(fmt.Sprintf("Analyzing %d expenses and %d orders...", len(snap.Expenses), len(snap.Revenue)))
	report, cached := uc.Analyze(engine, snap, settings)
	status.Stop()
	if cached {
		uc.console.LogInfo("Snapshot unchanged since last refresh; reusing analysis")
	}

	uc.render(report, settings)

	if settings.Export {
		path, err := uc.exportRepo.ExportToJSON(report, settings.ReportName, settings.Dir)
		if err != nil {
			uc.console.LogError("Failed to export report to JSON: %s", err)
		} else {
			uc.console.LogSuccess("Successfully exported report to JSON: %s", path)
		}
	}

	return report, nil
}

// Analyze roda o motor e memoriza o resultado pelo conteúdo do snapshot e pelas opções.
// The second return value is true when the report came from the cache.
func (uc *DashboardUseCase) Analyze(engine *analytics.Engine, snap entity.Snapshot, settings Settings) (entity.Report, bool) {
	now := uc.now()
	loc := settings.Policy.Location
	if loc == nil {
		loc = time.UTC
	}

	opts := analytics.AnalysisOptions{
		Now:      now,
		Range:    analytics.ResolvePreset(settings.Preset, settings.Custom, now.In(loc)),
		Client:   settings.Client,
		AllWeeks: settings.AllWeeks,
	}

	key, err := reportKey(snap, opts, loc)
	if err == nil {
		if v, ok := uc.reports.Get(key); ok {
			report := v.(entity.Report)
			report.GeneratedAt = now.In(loc)
			return report, true
		}
	}

	report := engine.Analyze(snap, opts)
	if err == nil {
		uc.reports.Set(key, report, cache.DefaultExpiration)
	}
	return report, false
}

// reportKey identifica uma análise pelo conteúdo do snapshot, pelo filtro e pelo dia corrente.
func reportKey(snap entity.Snapshot, opts analytics.AnalysisOptions, loc *time.Location) (string, error) {
	snap.FetchedAt = time.Time{}
	payload, err := json.Marshal(struct {
		Snapshot entity.Snapshot  `json:"snapshot"`
		Day      string           `json:"day"`
		Range    entity.DateRange `json:"range"`
		Client   string           `json:"client"`
		AllWeeks bool             `json:"all_weeks"`
	}{snap, opts.Now.In(loc).Format("2006-01-02"), opts.Range, opts.Client, opts.AllWeeks})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
