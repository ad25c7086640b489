package analytics

import (
	"testing"
	_ "time/tzdata"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPolicy_Apply(t *testing.T) {
	base := DefaultPolicy()

	got, err := base.Apply(PolicyOverrides{
		CriticalDays:   intPtr(2),
		LowOnHand:      floatPtr(80),
		BandMultiplier: floatPtr(2),
		MaxAlerts:      intPtr(10),
		Keywords:       map[string][]string{"poisson": {" Marlin ", "SWORDFISH"}},
		Units:          map[string]string{"beer_soft": "Cans"},
		DrinkUnitCosts: map[string]float64{"Beer": 95},
		SupplierAliases: []SupplierAlias{
			{StandardName: "Ocean Catch", Aliases: []string{"OC"}},
		},
		Timezone: "Indian/Mauritius",
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got.CriticalDays != 2 || got.LowOnHand != 80 || got.BandMultiplier != 2 || got.MaxAlerts != 10 {
		t.Errorf("scalar overrides not applied: %+v", got)
	}
	if got.LowDays != base.LowDays || got.PriceSpikePct != base.PriceSpikePct {
		t.Error("nil overrides must keep the defaults")
	}
	for _, r := range got.KeywordRules {
		if r.Category == entity.CategoryPoisson {
			if len(r.Keywords) != 2 || r.Keywords[0] != "marlin" || r.Keywords[1] != "swordfish" {
				t.Errorf("poisson keywords = %v", r.Keywords)
			}
		}
	}
	if got.Units[entity.CategoryBeerSoft] != "cans" {
		t.Errorf("beer_soft unit = %q", got.Units[entity.CategoryBeerSoft])
	}
	if got.DrinkUnitCosts[entity.DrinkBeer] != 95 {
		t.Errorf("beer cost = %v", got.DrinkUnitCosts[entity.DrinkBeer])
	}
	if len(got.SupplierAliases) != 1 || got.SupplierAliases[0].StandardName != "Ocean Catch" {
		t.Errorf("aliases = %+v", got.SupplierAliases)
	}
	if got.Location.String() != "Indian/Mauritius" {
		t.Errorf("Location = %s", got.Location)
	}

	// The receiver must be untouched.
	if base.Units[entity.CategoryBeerSoft] != "bottles" || base.DrinkUnitCosts[entity.DrinkBeer] != 89 {
		t.Error("Apply mutated the base policy")
	}
	for _, r := range base.KeywordRules {
		if r.Category == entity.CategoryPoisson && r.Keywords[0] != "poisson" {
			t.Errorf("base poisson keywords changed: %v", r.Keywords)
		}
	}
}

func TestPolicy_ApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		o    PolicyOverrides
	}{
		{name: "unknown keyword category", o: PolicyOverrides{Keywords: map[string][]string{"caviar": {"caviar"}}}},
		{name: "unknown unit category", o: PolicyOverrides{Units: map[string]string{"bread": "loaves"}}},
		{name: "unknown drink", o: PolicyOverrides{DrinkUnitCosts: map[string]float64{"whisky": 500}}},
		{name: "bad timezone", o: PolicyOverrides{Timezone: "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DefaultPolicy().Apply(tt.o); err == nil {
				t.Error("Apply() returned nil error")
			}
		})
	}
}

func TestNew_ClonesPolicy(t *testing.T) {
	p := DefaultPolicy()
	e := New(p)
	p.Units[entity.CategoryPoulet] = "lb"

	if e.Policy().Units[entity.CategoryPoulet] != "kg" {
		t.Error("engine shares the caller's policy maps")
	}
}
