package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// KeywordRule maps a category to the description keywords that identify it.
// Rules are evaluated in slice order; the first match wins.
type KeywordRule struct {
	Category entity.Category
	Keywords []string
}

// Matches reports whether the lower-cased description contains any keyword.
func (r KeywordRule) Matches(desc string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// SupplierAlias resolves alternative spellings to a standard supplier name.
type SupplierAlias struct {
	StandardName string   `json:"standard_name" yaml:"standard_name" toml:"standard_name"`
	Aliases      []string `json:"aliases" yaml:"aliases" toml:"aliases"`
}

// Policy reúne as constantes de negócio do motor. Nenhum valor aqui é derivado;
// todos podem ser ajustados por implantação.
type Policy struct {
	// Classificação
	CategoryLookup map[string]entity.Category
	KeywordRules   []KeywordRule
	Units          map[entity.Category]string

	// Estoque
	CriticalDays    int
	LowDays         int
	LowOnHand       float64
	NoDepletionDays int

	// Recompra
	ReorderBufferDays float64
	StockoutSentinel  int

	// Demanda
	DemandHorizonDays int
	DemandMinSamples  int

	// Tendência
	TrendMinPoints int
	TrendWindow    int
	TrendHorizon   int
	BandMultiplier float64

	// Anomalias
	PriceSpikePct        float64
	PriceMinRecords      int
	PriceRecentWindow    int
	PurchasesPerMonth    float64
	VolumeSpikePct       float64
	VolumeTrailingMonths int
	MaxAlerts            int

	// Séries
	WeeklyWindowWeeks int
	TopN              int

	DrinkUnitCosts  map[entity.Drink]float64
	SupplierAliases []SupplierAlias
	Location        *time.Location
}

// DefaultPolicy returns the thresholds the dashboard has always used.
func DefaultPolicy() Policy {
	return Policy{
		CategoryLookup: map[string]entity.Category{
			"food-poultry":       entity.CategoryPoulet,
			"beer & soft drinks": entity.CategoryBeerSoft,
			"beverage-soft":      entity.CategoryBeerSoft,
			"wine & rhum":        entity.CategoryWineRhum,
			"beverage-alcoholic": entity.CategoryWineRhum,
		},
		KeywordRules: []KeywordRule{
			{Category: entity.CategoryLangoustes, Keywords: []string{"langouste", "lobster", "crayfish"}},
			{Category: entity.CategoryPoulet, Keywords: []string{"poulet", "chicken", "volaille"}},
			{Category: entity.CategoryPoisson, Keywords: []string{"poisson", "fish", "thon", "tuna", "dorade", "capitaine", "vivaneau"}},
			{Category: entity.CategoryBeerSoft, Keywords: []string{"coca", "sprite", "beer", "soft drink", "soda"}},
			{Category: entity.CategoryWineRhum, Keywords: []string{"wine", "rhum", "rum", "rosé", "rose", "blanc", "vin"}},
		},
		Units: map[entity.Category]string{
			entity.CategoryPoulet:     "kg",
			entity.CategoryPoisson:    "kg",
			entity.CategoryLangoustes: "kg",
			entity.CategoryBeerSoft:   "bottles",
			entity.CategoryWineRhum:   "bottles",
		},
		CriticalDays:         3,
		LowDays:              7,
		LowOnHand:            100,
		NoDepletionDays:      999,
		ReorderBufferDays:    14,
		StockoutSentinel:     999,
		DemandHorizonDays:    7,
		DemandMinSamples:     2,
		TrendMinPoints:       3,
		TrendWindow:          12,
		TrendHorizon:         3,
		BandMultiplier:       1.2,
		PriceSpikePct:        15,
		PriceMinRecords:      4,
		PriceRecentWindow:    3,
		PurchasesPerMonth:    4,
		VolumeSpikePct:       30,
		VolumeTrailingMonths: 3,
		MaxAlerts:            5,
		WeeklyWindowWeeks:    9,
		TopN:                 5,
		DrinkUnitCosts: map[entity.Drink]float64{
			entity.DrinkCocaCola: 40,
			entity.DrinkSprite:   40,
			entity.DrinkBeer:     89,
			entity.DrinkRhum:     260,
			entity.DrinkRose:     104,
			entity.DrinkBlanc:    104,
		},
		SupplierAliases: []SupplierAlias{
			{StandardName: "Phoenix Beverages Limited", Aliases: []string{"Phoenix", "Phenix", "Phoenix Bev"}},
			{StandardName: "Les Caves Du Roi Ltd", Aliases: []string{"Les Caves", "Lescave", "Caves Du Roi"}},
			{StandardName: "K. Nepaulsing & Co Ltd", Aliases: []string{"K Nepaulsing", "Nepaul", "Nepal", "K. Nepaulsing", "Nepaulsing"}},
		},
		Location: time.UTC,
	}
}

// PolicyOverrides é a forma serializável de Policy usada no arquivo de configuração.
// Campos nulos mantêm o valor padrão.
type PolicyOverrides struct {
	CriticalDays      *int                `json:"critical_days,omitempty" yaml:"critical_days,omitempty" toml:"critical_days,omitempty"`
	LowDays           *int                `json:"low_days,omitempty" yaml:"low_days,omitempty" toml:"low_days,omitempty"`
	LowOnHand         *float64            `json:"low_on_hand,omitempty" yaml:"low_on_hand,omitempty" toml:"low_on_hand,omitempty"`
	ReorderBufferDays *float64            `json:"reorder_buffer_days,omitempty" yaml:"reorder_buffer_days,omitempty" toml:"reorder_buffer_days,omitempty"`
	DemandMinSamples  *int                `json:"demand_min_samples,omitempty" yaml:"demand_min_samples,omitempty" toml:"demand_min_samples,omitempty"`
	TrendWindow       *int                `json:"trend_window,omitempty" yaml:"trend_window,omitempty" toml:"trend_window,omitempty"`
	TrendHorizon      *int                `json:"trend_horizon,omitempty" yaml:"trend_horizon,omitempty" toml:"trend_horizon,omitempty"`
	BandMultiplier    *float64            `json:"band_multiplier,omitempty" yaml:"band_multiplier,omitempty" toml:"band_multiplier,omitempty"`
	PriceSpikePct     *float64            `json:"price_spike_pct,omitempty" yaml:"price_spike_pct,omitempty" toml:"price_spike_pct,omitempty"`
	VolumeSpikePct    *float64            `json:"volume_spike_pct,omitempty" yaml:"volume_spike_pct,omitempty" toml:"volume_spike_pct,omitempty"`
	MaxAlerts         *int                `json:"max_alerts,omitempty" yaml:"max_alerts,omitempty" toml:"max_alerts,omitempty"`
	WeeklyWindowWeeks *int                `json:"weekly_window_weeks,omitempty" yaml:"weekly_window_weeks,omitempty" toml:"weekly_window_weeks,omitempty"`
	TopN              *int                `json:"top_n,omitempty" yaml:"top_n,omitempty" toml:"top_n,omitempty"`
	Keywords          map[string][]string `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty"`
	Units             map[string]string   `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`
	DrinkUnitCosts    map[string]float64  `json:"drink_unit_costs,omitempty" yaml:"drink_unit_costs,omitempty" toml:"drink_unit_costs,omitempty"`
	SupplierAliases   []SupplierAlias     `json:"supplier_aliases,omitempty" yaml:"supplier_aliases,omitempty" toml:"supplier_aliases,omitempty"`
	Timezone          string              `json:"timezone,omitempty" yaml:"timezone,omitempty" toml:"timezone,omitempty"`
}

// Apply returns a copy of p with the non-nil overrides applied.
func (p Policy) Apply(o PolicyOverrides) (Policy, error) {
	out := p.clone()

	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	setInt(&out.CriticalDays, o.CriticalDays)
	setInt(&out.LowDays, o.LowDays)
	setFloat(&out.LowOnHand, o.LowOnHand)
	setFloat(&out.ReorderBufferDays, o.ReorderBufferDays)
	setInt(&out.DemandMinSamples, o.DemandMinSamples)
	setInt(&out.TrendWindow, o.TrendWindow)
	setInt(&out.TrendHorizon, o.TrendHorizon)
	setFloat(&out.BandMultiplier, o.BandMultiplier)
	setFloat(&out.PriceSpikePct, o.PriceSpikePct)
	setFloat(&out.VolumeSpikePct, o.VolumeSpikePct)
	setInt(&out.MaxAlerts, o.MaxAlerts)
	setInt(&out.WeeklyWindowWeeks, o.WeeklyWindowWeeks)
	setInt(&out.TopN, o.TopN)

	for name, keywords := range o.Keywords {
		cat := entity.ParseCategory(name)
		if cat == entity.CategoryNone {
			return p, fmt.Errorf("unknown category %q in keyword overrides", name)
		}
		lowered := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			lowered = append(lowered, strings.ToLower(strings.TrimSpace(kw)))
		}
		for i := range out.KeywordRules {
			if out.KeywordRules[i].Category == cat {
				out.KeywordRules[i].Keywords = lowered
			}
		}
	}

	for name, unit := range o.Units {
		cat := entity.ParseCategory(name)
		if cat == entity.CategoryNone {
			return p, fmt.Errorf("unknown category %q in unit overrides", name)
		}
		out.Units[cat] = strings.ToLower(strings.TrimSpace(unit))
	}

	for name, cost := range o.DrinkUnitCosts {
		drink := entity.Drink(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := out.DrinkUnitCosts[drink]; !ok {
			return p, fmt.Errorf("unknown drink %q in unit cost overrides", name)
		}
		out.DrinkUnitCosts[drink] = cost
	}

	if len(o.SupplierAliases) > 0 {
		out.SupplierAliases = append([]SupplierAlias(nil), o.SupplierAliases...)
	}

	if o.Timezone != "" {
		loc, err := time.LoadLocation(o.Timezone)
		if err != nil {
			return p, fmt.Errorf("invalid timezone %q: %w", o.Timezone, err)
		}
		out.Location = loc
	}

	return out, nil
}

// clone copies the maps and slices so overrides never alias the receiver.
func (p Policy) clone() Policy {
	out := p
	out.CategoryLookup = make(map[string]entity.Category, len(p.CategoryLookup))
	for k, v := range p.CategoryLookup {
		out.CategoryLookup[k] = v
	}
	out.KeywordRules = make([]KeywordRule, len(p.KeywordRules))
	for i, r := range p.KeywordRules {
		out.KeywordRules[i] = KeywordRule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	out.Units = make(map[entity.Category]string, len(p.Units))
	for k, v := range p.Units {
		out.Units[k] = v
	}
	out.DrinkUnitCosts = make(map[entity.Drink]float64, len(p.DrinkUnitCosts))
	for k, v := range p.DrinkUnitCosts {
		out.DrinkUnitCosts[k] = v
	}
	out.SupplierAliases = append([]SupplierAlias(nil), p.SupplierAliases...)
	return out
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
