package analytics

import (
	"strings"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// Classifier mapeia uma despesa para uma categoria rastreada.
// Primeiro tenta o campo de categoria, depois as palavras-chave da descrição.
type Classifier struct {
	lookup map[string]entity.Category
	rules  []KeywordRule
	units  map[entity.Category]string
}

// NewClassifier builds a classifier from the policy's rule table.
func NewClassifier(p Policy) *Classifier {
	lookup := make(map[string]entity.Category, len(p.CategoryLookup))
	for k, v := range p.CategoryLookup {
		lookup[strings.ToLower(strings.TrimSpace(k))] = v
	}
	rules := make([]KeywordRule, 0, len(p.KeywordRules))
	for _, r := range p.KeywordRules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kws = append(kws, strings.ToLower(kw))
		}
		rules = append(rules, KeywordRule{Category: r.Category, Keywords: kws})
	}
	units := make(map[entity.Category]string, len(p.Units))
	for k, v := range p.Units {
		units[k] = strings.ToLower(strings.TrimSpace(v))
	}
	return &Classifier{lookup: lookup, rules: rules, units: units}
}

// Classify returns the category of e, or entity.CategoryNone.
func (c *Classifier) Classify(e entity.ExpenseRecord) entity.Category {
	if cat, ok := c.lookup[strings.ToLower(strings.TrimSpace(e.Category))]; ok {
		return cat
	}
	desc := strings.ToLower(e.Description)
	for _, rule := range c.rules {
		if rule.Matches(desc) {
			return rule.Category
		}
	}
	return entity.CategoryNone
}

// Weighted reports whether e can enter the cost basis of cat: a positive
// quantity expressed in the category's unit.
func (c *Classifier) Weighted(e entity.ExpenseRecord, cat entity.Category) bool {
	if cat == entity.CategoryNone || e.Quantity == nil || *e.Quantity <= 0 {
		return false
	}
	unit, ok := c.units[cat]
	if !ok {
		return false
	}
	return strings.ToLower(strings.TrimSpace(e.UnitOfMeasure)) == unit
}

// Unit returns the expected unit of measure of cat.
func (c *Classifier) Unit(cat entity.Category) string {
	return c.units[cat]
}
