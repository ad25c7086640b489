package analytics

import (
	"fmt"
	"strings"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// SupplierDirectory resolve o nome de fornecedor de uma despesa:
// nome explícito, depois a tabela mestre por chave, depois um marcador sintético.
// Apelidos conhecidos são normalizados para o nome padrão.
type SupplierDirectory struct {
	byKey    map[int]string
	category map[int]string
	aliases  map[string]string
}

// NewSupplierDirectory indexes the supplier master table and alias list.
func NewSupplierDirectory(suppliers []entity.Supplier, aliases []SupplierAlias) *SupplierDirectory {
	d := &SupplierDirectory{
		byKey:    make(map[int]string, len(suppliers)),
		category: make(map[int]string, len(suppliers)),
		aliases:  make(map[string]string),
	}
	for _, s := range suppliers {
		d.byKey[s.Key] = s.StandardName
		d.category[s.Key] = s.Category
	}
	for _, a := range aliases {
		d.aliases[strings.ToLower(a.StandardName)] = a.StandardName
		for _, alias := range a.Aliases {
			d.aliases[strings.ToLower(strings.TrimSpace(alias))] = a.StandardName
		}
	}
	return d
}

// Resolve returns the display name of the supplier of e.
func (d *SupplierDirectory) Resolve(e entity.ExpenseRecord) string {
	if name := strings.TrimSpace(e.SupplierName); name != "" {
		return d.Canonical(name)
	}
	if name, ok := d.byKey[e.SupplierKey]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Supplier %d", e.SupplierKey)
}

// Canonical maps an alias (case-insensitive exact match) to its standard name.
// Unknown names are returned trimmed.
func (d *SupplierDirectory) Canonical(name string) string {
	trimmed := strings.TrimSpace(name)
	if std, ok := d.aliases[strings.ToLower(trimmed)]; ok {
		return std
	}
	return trimmed
}

// Category returns the master-table category of the supplier key.
func (d *SupplierDirectory) Category(key int) string {
	if c, ok := d.category[key]; ok && c != "" {
		return c
	}
	return "General"
}
