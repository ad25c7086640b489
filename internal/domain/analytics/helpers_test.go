package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func qty(v float64) *float64 {
	return &v
}

func purchase(id, date, desc string, quantity float64, unit string, net float64) entity.ExpenseRecord {
	return entity.ExpenseRecord{
		ID:            id,
		Date:          day(date),
		Description:   desc,
		Quantity:      qty(quantity),
		UnitOfMeasure: unit,
		NetAmount:     net,
		TotalAmount:   net,
	}
}

func food(date string, poulet, poisson, langoustes float64) entity.FoodUsage {
	return entity.FoodUsage{Date: day(date), PouletKg: poulet, PoissonKg: poisson, LangoustesKg: langoustes}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func newTestEngine() *Engine {
	return New(DefaultPolicy())
}
