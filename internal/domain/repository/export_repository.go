package repository

import (
	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// ExportRepository grava o relatório como dados estruturados.
type ExportRepository interface {
	ExportToJSON(report entity.Report, filename string, outputDir string) (string, error)
}
