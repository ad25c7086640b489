package entity

import "strings"

// Category identifica o produto rastreado ao qual uma despesa ou consumo pertence.
type Category string

const (
	CategoryNone       Category = ""
	CategoryPoulet     Category = "poulet"
	CategoryPoisson    Category = "poisson"
	CategoryLangoustes Category = "langoustes"
	CategoryBeerSoft   Category = "beer_soft"
	CategoryWineRhum   Category = "wine_rhum"
)

// FoodCategories are the kg-tracked products of the kitchen log.
var FoodCategories = []Category{CategoryPoulet, CategoryPoisson, CategoryLangoustes}

// DrinksCategories are the bottle-tracked products of the bar log.
var DrinksCategories = []Category{CategoryBeerSoft, CategoryWineRhum}

// AllCategories lists every tracked category in display order.
func AllCategories() []Category {
	all := make([]Category, 0, len(FoodCategories)+len(DrinksCategories))
	all = append(all, FoodCategories...)
	return append(all, DrinksCategories...)
}

// ParseCategory converte um nome em Category; retorna CategoryNone para valores desconhecidos.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryPoulet:
		return CategoryPoulet
	case CategoryPoisson:
		return CategoryPoisson
	case CategoryLangoustes:
		return CategoryLangoustes
	case CategoryBeerSoft:
		return CategoryBeerSoft
	case CategoryWineRhum:
		return CategoryWineRhum
	default:
		return CategoryNone
	}
}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryPoulet:
		return "Poulet"
	case CategoryPoisson:
		return "Poisson"
	case CategoryLangoustes:
		return "Langoustes"
	case CategoryBeerSoft:
		return "Beer & Soft Drinks"
	case CategoryWineRhum:
		return "Wine & Rhum"
	default:
		return "Unclassified"
	}
}
