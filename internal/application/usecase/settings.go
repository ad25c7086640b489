package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/analytics"
	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// DefaultRefreshInterval é o intervalo do modo watch quando nada foi configurado.
const DefaultRefreshInterval = 5 * time.Minute

// Section names a block of the dashboard output.
type Section string

const (
	SectionKPIs      Section = "kpis"
	SectionTrend     Section = "trend"
	SectionWeekly    Section = "weekly"
	SectionRankings  Section = "rankings"
	SectionInventory Section = "inventory"
	SectionOrders    Section = "orders"
	SectionDemand    Section = "demand"
	SectionCosts     Section = "costs"
	SectionDrinks    Section = "drinks"
	SectionPurchases Section = "purchases"
	SectionAnomalies Section = "anomalies"
	SectionWarnings  Section = "warnings"
)

// AllSections lists every section in render order.
var AllSections = []Section{
	SectionKPIs, SectionTrend, SectionWeekly, SectionRankings, SectionInventory, SectionOrders,
	SectionDemand, SectionCosts, SectionDrinks, SectionPurchases, SectionAnomalies, SectionWarnings,
}

// Settings é a configuração efetiva de uma execução: arquivo, ambiente e flags já mesclados.
type Settings struct {
	Source     string
	AWSProfile string
	Refresh    time.Duration
	Watch      bool
	Preset     analytics.Preset
	Custom     entity.DateRange
	Client     string
	AllWeeks   bool
	Sections   []Section
	ReportName string
	Dir        string
	Export     bool
	Policy     analytics.Policy
}

// Has reports whether section s is enabled.
func (s Settings) Has(section Section) bool {
	for _, x := range s.Sections {
		if x == section {
			return true
		}
	}
	return false
}

// ResolveSettings mescla a configuração: flags vencem o arquivo, que vence o ambiente.
// cfg may be nil.
func ResolveSettings(cfg *types.Config, args *types.CLIArgs) (Settings, error) {
	if cfg == nil {
		cfg = &types.Config{}
	}
	if args == nil {
		args = &types.CLIArgs{}
	}

	s := Settings{
		Source:     firstNonEmpty(args.Source, cfg.Source),
		AWSProfile: firstNonEmpty(args.AWSProfile, cfg.AWSProfile),
		Watch:      args.Watch,
		Client:     firstNonEmpty(args.Client, cfg.Client),
		AllWeeks:   args.AllWeeks,
		ReportName: firstNonEmpty(args.ReportName, cfg.ReportName),
		Dir:        firstNonEmpty(args.Dir, cfg.Dir),
	}
	if strings.TrimSpace(s.Source) == "" {
		return Settings{}, types.ErrNoSource
	}
	s.Export = args.Export || cfg.Export || s.ReportName != ""

	switch {
	case args.Refresh > 0:
		s.Refresh = args.Refresh
	case cfg.RefreshInterval != "":
		d, err := time.ParseDuration(cfg.RefreshInterval)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid refresh interval %q: %w", cfg.RefreshInterval, err)
		}
		if d <= 0 {
			return Settings{}, fmt.Errorf("refresh interval must be positive, got %s", d)
		}
		s.Refresh = d
	default:
		s.Refresh = DefaultRefreshInterval
	}

	from, err := parseDay(firstNonEmpty(args.From, cfg.From))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid --from date: %w", err)
	}
	to, err := parseDay(firstNonEmpty(args.To, cfg.To))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid --to date: %w", err)
	}
	s.Custom = entity.DateRange{From: from, To: to}
	if from != nil && to != nil && from.After(*to) {
		return Settings{}, fmt.Errorf("--from %s is after --to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	presetName := firstNonEmpty(args.Preset, cfg.Preset)
	if presetName == "" && (from != nil || to != nil) {
		presetName = string(analytics.PresetCustom)
	}
	s.Preset, err = analytics.ParsePreset(presetName)
	if err != nil {
		return Settings{}, err
	}
	if s.Preset == analytics.PresetCustom && from == nil && to == nil {
		return Settings{}, fmt.Errorf("the custom preset requires --from and/or --to")
	}

	s.Sections, err = parseSections(args.Sections, cfg.Sections)
	if err != nil {
		return Settings{}, err
	}

	overrides := cfg.Policy
	if args.Timezone != "" {
		overrides.Timezone = args.Timezone
	}
	s.Policy, err = analytics.DefaultPolicy().Apply(overrides)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid policy: %w", err)
	}

	return s, nil
}

func parseSections(fromArgs, fromConfig []string) ([]Section, error) {
	names := fromArgs
	if len(names) == 0 {
		names = fromConfig
	}
	if len(names) == 0 {
		return append([]Section(nil), AllSections...), nil
	}

	var out []Section
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" {
			return append([]Section(nil), AllSections...), nil
		}
		valid := false
		for _, s := range AllSections {
			if string(s) == name {
				out = append(out, s)
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown section %q", name)
		}
	}
	return out, nil
}

func parseDay(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
