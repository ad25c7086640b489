package entity

import "time"

// UsageEntry is the stream-agnostic form of a usage log row: one calendar day,
// one quantity per tracked category.
type UsageEntry struct {
	Date       time.Time            `json:"usage_date"`
	Quantities map[Category]float64 `json:"quantities"`
}

// Qty returns the logged quantity for c, 0 when absent.
func (u UsageEntry) Qty(c Category) float64 {
	return u.Quantities[c]
}

// FoodUsage é o registro diário de consumo da cozinha (kg).
type FoodUsage struct {
	Date              time.Time `json:"usage_date"`
	PouletKg          float64   `json:"poulet_kg"`
	LangoustesKg      float64   `json:"langoustes_kg"`
	PoissonKg         float64   `json:"poisson_kg"`
	ReserveGambasPcs  float64   `json:"reserve_gambass_pcs,omitempty"`
	ReserveLangoustes float64   `json:"reserve_langoustes,omitempty"`
}

// Entry converts the row to a UsageEntry keyed by food category.
func (f FoodUsage) Entry() UsageEntry {
	return UsageEntry{
		Date: f.Date,
		Quantities: map[Category]float64{
			CategoryPoulet:     f.PouletKg,
			CategoryPoisson:    f.PoissonKg,
			CategoryLangoustes: f.LangoustesKg,
		},
	}
}

// TotalKg sums the three tracked food quantities.
func (f FoodUsage) TotalKg() float64 {
	return f.PouletKg + f.LangoustesKg + f.PoissonKg
}

// DrinksUsage é o registro diário de consumo do bar (garrafas).
type DrinksUsage struct {
	Date            time.Time `json:"usage_date"`
	CocaColaBottles float64   `json:"coca_cola_bottles"`
	SpriteBottles   float64   `json:"sprite_bottles"`
	BeerBottles     float64   `json:"beer_bottles"`
	RhumBottles     float64   `json:"rhum_bottles"`
	RoseBottles     float64   `json:"rose_bottles"`
	BlancBottles    float64   `json:"blanc_bottles"`
}

// Entry folds the per-drink counts into the two beverage categories.
func (d DrinksUsage) Entry() UsageEntry {
	return UsageEntry{
		Date: d.Date,
		Quantities: map[Category]float64{
			CategoryBeerSoft: d.CocaColaBottles + d.SpriteBottles + d.BeerBottles,
			CategoryWineRhum: d.RhumBottles + d.RoseBottles + d.BlancBottles,
		},
	}
}

// Bottles returns the per-drink counts keyed by drink.
func (d DrinksUsage) Bottles() map[Drink]float64 {
	return map[Drink]float64{
		DrinkCocaCola: d.CocaColaBottles,
		DrinkSprite:   d.SpriteBottles,
		DrinkBeer:     d.BeerBottles,
		DrinkRhum:     d.RhumBottles,
		DrinkRose:     d.RoseBottles,
		DrinkBlanc:    d.BlancBottles,
	}
}

// TotalBottles sums every drink of the row.
func (d DrinksUsage) TotalBottles() float64 {
	return d.CocaColaBottles + d.SpriteBottles + d.BeerBottles + d.RhumBottles + d.RoseBottles + d.BlancBottles
}

// Drink identifies an individual beverage of the bar log.
type Drink string

const (
	DrinkCocaCola Drink = "coca_cola"
	DrinkSprite   Drink = "sprite"
	DrinkBeer     Drink = "beer"
	DrinkRhum     Drink = "rhum"
	DrinkRose     Drink = "rose"
	DrinkBlanc    Drink = "blanc"
)

// Drinks lists the beverages in display order.
var Drinks = []Drink{DrinkCocaCola, DrinkSprite, DrinkBeer, DrinkRhum, DrinkRose, DrinkBlanc}

// FoodEntries converts a food log to generic entries.
func FoodEntries(rows []FoodUsage) []UsageEntry {
	out := make([]UsageEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Entry())
	}
	return out
}

// DrinksEntries converts a drinks log to generic entries.
func DrinksEntries(rows []DrinksUsage) []UsageEntry {
	out := make([]UsageEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Entry())
	}
	return out
}
