package repository

import (
	"context"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
)

// SnapshotRepository carrega um snapshot somente-leitura dos registros do dashboard.
type SnapshotRepository interface {
	// Load reads every table in one pass. Implementations never write.
	Load(ctx context.Context) (entity.Snapshot, error)
	// Describe returns a human-readable name of the source, without credentials.
	Describe() string
	Close() error
}
