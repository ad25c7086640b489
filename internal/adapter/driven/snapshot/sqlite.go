package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
)

// SQLiteRepositoryImpl lê o snapshot de um arquivo SQLite com o mesmo esquema gwr_*.
type SQLiteRepositoryImpl struct {
	path string
	db   *sql.DB
	now  func() time.Time
}

// NewSQLiteRepository abre o banco; apenas SELECT é emitido.
func NewSQLiteRepository(path string) (repository.SnapshotRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &SQLiteRepositoryImpl{path: path, db: db, now: time.Now}, nil
}

func (r *SQLiteRepositoryImpl) Load(ctx context.Context) (entity.Snapshot, error) {
	if err := r.db.PingContext(ctx); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	s, err := loadTables(ctx, sqlQuerier{db: r.db}, sqliteDialect)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("error loading snapshot from sqlite: %w", err)
	}
	s.FetchedAt = r.now()
	return s, nil
}

func (r *SQLiteRepositoryImpl) Describe() string {
	return "sqlite " + r.path
}

func (r *SQLiteRepositoryImpl) Close() error {
	return r.db.Close()
}

type sqlQuerier struct {
	db *sql.DB
}

func (q sqlQuerier) query(ctx context.Context, query string) (rowIterator, func(), error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	return rows, func() { _ = rows.Close() }, nil
}
