package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// Preset is a named analysis window.
type Preset string

const (
	PresetThisMonth   Preset = "this_month"
	PresetLastMonth   Preset = "last_month"
	PresetLast3Months Preset = "last_3_months"
	PresetAllTime     Preset = "all_time"
	PresetCustom      Preset = "custom"
)

// Presets lists the accepted preset names.
var Presets = []Preset{PresetThisMonth, PresetLastMonth, PresetLast3Months, PresetAllTime, PresetCustom}

// ParsePreset valida o nome de um preset; vazio equivale a all_time.
func ParsePreset(s string) (Preset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PresetAllTime, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown date preset %q", s)
}

// ResolvePreset turns a preset into a concrete range relative to now.
// custom is only consulted for PresetCustom.
func ResolvePreset(p Preset, custom entity.DateRange, now time.Time) entity.DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	today := startOfDay(now)

	switch p {
	case PresetThisMonth:
		return entity.DateRange{From: &first, To: &today}
	case PresetLastMonth:
		from := first.AddDate(0, -1, 0)
		to := first.AddDate(0, 0, -1)
		return entity.DateRange{From: &from, To: &to}
	case PresetLast3Months:
		from := first.AddDate(0, -2, 0)
		return entity.DateRange{From: &from, To: &today}
	case PresetCustom:
		return custom
	default:
		return entity.DateRange{}
	}
}

// FilterSnapshot devolve um novo snapshot restrito ao intervalo. As linhas de
// receita acompanham os pedidos mantidos; fornecedores nunca são filtrados.
func FilterSnapshot(s entity.Snapshot, r entity.DateRange) entity.Snapshot {
	out := entity.Snapshot{
		Suppliers: append([]entity.Supplier(nil), s.Suppliers...),
		FetchedAt: s.FetchedAt,
	}

	for _, e := range s.Expenses {
		if r.Contains(e.Date) {
			out.Expenses = append(out.Expenses, e)
		}
	}
	for _, rev := range s.Revenue {
		if r.Contains(rev.Date) {
			out.Revenue = append(out.Revenue, rev)
		}
	}
	out.RevenueLines = linesOf(out.Revenue, s.RevenueLines)

	for _, f := range s.FoodUsage {
		if r.Contains(f.Date) {
			out.FoodUsage = append(out.FoodUsage, f)
		}
	}
	for _, d := range s.DrinksUsage {
		if r.Contains(d.Date) {
			out.DrinksUsage = append(out.DrinksUsage, d)
		}
	}
	return out
}

// FilterClient keeps only the orders of one client (compared after
// normalisation, case-insensitive) and their lines. Other tables are kept as is.
func FilterClient(s entity.Snapshot, client string) entity.Snapshot {
	if strings.TrimSpace(client) == "" {
		return s
	}
	want := strings.ToLower(NormalizeClientName(client))

	out := s
	out.Revenue = nil
	for _, rev := range s.Revenue {
		if strings.ToLower(NormalizeClientName(rev.ClientName)) == want {
			out.Revenue = append(out.Revenue, rev)
		}
	}
	out.RevenueLines = linesOf(out.Revenue, s.RevenueLines)
	return out
}

func linesOf(revenue []entity.Revenue, lines []entity.RevenueLine) []entity.RevenueLine {
	ids := make(map[string]struct{}, len(revenue))
	for _, rev := range revenue {
		ids[rev.ID] = struct{}{}
	}
	var out []entity.RevenueLine
	for _, l := range lines {
		if _, ok := ids[l.RevenueID]; ok {
			out = append(out, l)
		}
	}
	return out
}
