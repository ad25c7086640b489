package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
)

// PostgresRepositoryImpl lê o snapshot das tabelas gwr_* via pool pgx.
// O pool é criado na primeira carga e reutilizado pelo modo watch.
type PostgresRepositoryImpl struct {
	dsn  string
	pool *pgxpool.Pool
	once sync.Once
	err  error
	now  func() time.Time
}

// NewPostgresRepository cria um SnapshotRepository para uma URL postgres://.
func NewPostgresRepository(dsn string) repository.SnapshotRepository {
	return &PostgresRepositoryImpl{dsn: dsn, now: time.Now}
}

func (r *PostgresRepositoryImpl) connect(ctx context.Context) error {
	r.once.Do(func() {
		config, err := pgxpool.ParseConfig(r.dsn)
		if err != nil {
			r.err = fmt.Errorf("failed to parse database config: %w", err)
			return
		}
		// Sessões somente leitura: o dashboard nunca escreve.
		config.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"

		r.pool, r.err = pgxpool.NewWithConfig(ctx, config)
		if r.err != nil {
			r.err = fmt.Errorf("failed to create connection pool: %w", r.err)
		}
	})
	return r.err
}

func (r *PostgresRepositoryImpl) Load(ctx context.Context) (entity.Snapshot, error) {
	if err := r.connect(ctx); err != nil {
		return entity.Snapshot{}, err
	}

	s, err := loadTables(ctx, pgxQuerier{pool: r.pool}, postgresDialect)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("error loading snapshot from postgres: %w", err)
	}
	s.FetchedAt = r.now()
	return s, nil
}

// Describe omite a senha da URL.
func (r *PostgresRepositoryImpl) Describe() string {
	u, err := url.Parse(r.dsn)
	if err != nil {
		return "postgres"
	}
	return "postgres " + u.Redacted()
}

func (r *PostgresRepositoryImpl) Close() error {
	if r.pool != nil {
		r.pool.Close()
	}
	return nil
}

type pgxQuerier struct {
	pool *pgxpool.Pool
}

func (q pgxQuerier) query(ctx context.Context, sql string) (rowIterator, func(), error) {
	rows, err := q.pool.Query(ctx, sql)
	if err != nil {
		return nil, nil, err
	}
	return rows, rows.Close, nil
}
