package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// rowIterator is the subset shared by pgx.Rows and *sql.Rows.
type rowIterator interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// querier executes a read-only query; the returned func releases the rows.
type querier interface {
	query(ctx context.Context, sql string) (rowIterator, func(), error)
}

// dialect adapta as expressões que diferem entre PostgreSQL e SQLite.
type dialect struct {
	// date renders a column as a YYYY-MM-DD string.
	date func(col string) string
	// num renders a numeric column as a double.
	num func(col string) string
	// text renders an identifier column as a string.
	text func(col string) string
}

var postgresDialect = dialect{
	date: func(col string) string { return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", col) },
	num:  func(col string) string { return col + "::float8" },
	text: func(col string) string { return fmt.Sprintf("COALESCE(%s::text, '')", col) },
}

var sqliteDialect = dialect{
	date: func(col string) string { return fmt.Sprintf("substr(%s, 1, 10)", col) },
	num:  func(col string) string { return fmt.Sprintf("CAST(%s AS REAL)", col) },
	text: func(col string) string { return fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '')", col) },
}

func (d dialect) selectFrom(table, orderBy string, cols ...string) string {
	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
	if orderBy != "" {
		q += " ORDER BY " + orderBy
	}
	return q
}

func (d dialect) expensesQuery() string {
	return d.selectFrom("gwr_expenses", "expense_date DESC",
		d.text("expense_id"),
		d.date("expense_date"),
		"COALESCE(description, '')",
		"COALESCE(category, '')",
		d.num("quantity"),
		"COALESCE(unit_of_measure, '')",
		"COALESCE("+d.num("net_amount")+", 0)",
		"COALESCE("+d.num("vat_amount")+", 0)",
		"COALESCE("+d.num("total_amount")+", 0)",
		"COALESCE(supplier_key, 0)",
		"COALESCE(payment_method, '')",
		"COALESCE(invoice_number, '')",
	)
}

func (d dialect) suppliersQuery() string {
	return d.selectFrom("gwr_suppliers", "supplier_key",
		"supplier_key",
		"COALESCE(standard_name, '')",
		"COALESCE(category, '')",
	)
}

func (d dialect) revenueQuery() string {
	return d.selectFrom("gwr_revenue", "revenue_date DESC",
		d.text("revenue_id"),
		d.date("revenue_date"),
		"COALESCE(client_name, '')",
		"COALESCE(pax_count, 0)",
		"COALESCE("+d.num("total_revenue")+", 0)",
	)
}

func (d dialect) revenueLinesQuery() string {
	return d.selectFrom("gwr_revenue_lines", "",
		d.text("line_id"),
		d.text("revenue_id"),
		"COALESCE(menu_item, '')",
		"COALESCE("+d.num("quantity")+", 0)",
		"COALESCE("+d.num("unit_price")+", 0)",
		"COALESCE("+d.num("line_total")+", 0)",
	)
}

func (d dialect) foodUsageQuery() string {
	return d.selectFrom("gwr_food_usage", "usage_date DESC",
		d.date("usage_date"),
		"COALESCE("+d.num("poulet_kg")+", 0)",
		"COALESCE("+d.num("langoustes_kg")+", 0)",
		"COALESCE("+d.num("poisson_kg")+", 0)",
		"COALESCE("+d.num("reserve_gambass_pcs")+", 0)",
		"COALESCE("+d.num("reserve_langoustes")+", 0)",
	)
}

func (d dialect) drinksUsageQuery() string {
	return d.selectFrom("gwr_drinks_usage", "usage_date DESC",
		d.date("usage_date"),
		"COALESCE("+d.num("coca_cola_bottles")+", 0)",
		"COALESCE("+d.num("sprite_bottles")+", 0)",
		"COALESCE("+d.num("beer_bottles")+", 0)",
		"COALESCE("+d.num("rhum_bottles")+", 0)",
		"COALESCE("+d.num("rose_bottles")+", 0)",
		"COALESCE("+d.num("blanc_bottles")+", 0)",
	)
}

// loadTables lê as seis tabelas gwr_* e monta o snapshot. Apenas SELECT é emitido.
func loadTables(ctx context.Context, q querier, d dialect) (entity.Snapshot, error) {
	var doc document

	err := scanAll(ctx, q, d.expensesQuery(), func(rows rowIterator) error {
		var r expenseRow
		if err := rows.Scan(&r.ExpenseID, &r.ExpenseDate, &r.Description, &r.Category, &r.Quantity,
			&r.UnitOfMeasure, &r.NetAmount, &r.VATAmount, &r.TotalAmount, &r.SupplierKey,
			&r.PaymentMethod, &r.InvoiceNumber); err != nil {
			return err
		}
		doc.Expenses = append(doc.Expenses, r)
		return nil
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("gwr_expenses: %w", err)
	}

	err = scanAll(ctx, q, d.suppliersQuery(), func(rows rowIterator) error {
		var r supplierRow
		if err := rows.Scan(&r.SupplierKey, &r.StandardName, &r.Category); err != nil {
			return err
		}
		doc.Suppliers = append(doc.Suppliers, r)
		return nil
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("gwr_suppliers: %w", err)
	}

	err = scanAll(ctx, q, d.revenueQuery(), func(rows rowIterator) error {
		var r revenueRow
		if err := rows.Scan(&r.RevenueID, &r.RevenueDate, &r.ClientName, &r.PaxCount, &r.TotalRevenue); err != nil {
			return err
		}
		doc.Revenue = append(doc.Revenue, r)
		return nil
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("gwr_revenue: %w", err)
	}

	err = scanAll(ctx, q, d.revenueLinesQuery(), func(rows rowIterator) error {
		var r revenueLineRow
		if err := rows.Scan(&r.LineID, &r.RevenueID, &r.MenuItem, &r.Quantity, &r.UnitPrice, &r.LineTotal); err != nil {
			return err
		}
		doc.RevenueLines = append(doc.RevenueLines, r)
		return nil
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("gwr_revenue_lines: %w", err)
	}

	err = scanAll(ctx, q, d.foodUsageQuery(), func(rows rowIterator) error {
		var r foodUsageRow
		if err := rows.Scan(&r.UsageDate, &r.PouletKg, &r.LangoustesKg, &r.PoissonKg,
			&r.ReserveGambasPcs, &r.ReserveLangoustes); err != nil {
			return err
		}
		doc.FoodUsage = append(doc.FoodUsage, r)
		return nil
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("gwr_food_usage: %w", err)
	}

	err = scanAll(ctx, q, d.drinksUsageQuery(), func(rows rowIterator) error {
		var r drinksUsageRow
		if err := rows.Scan(&r.UsageDate, &r.CocaColaBottles, &r.SpriteBottles, &r.BeerBottles,
			&r.RhumBottles, &r.RoseBottles, &r.BlancBottles); err != nil {
			return err
		}
		doc.DrinksUsage = append(doc.DrinksUsage, r)
		return nil
	})
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("gwr_drinks_usage: %w", err)
	}

	return doc.toSnapshot()
}

func scanAll(ctx context.Context, q querier, sql string, scan func(rowIterator) error) error {
	rows, release, err := q.query(ctx, sql)
	if err != nil {
		return err
	}
	defer release()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
