// Package source escolhe o adaptador de snapshot a partir da string de origem.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/catering-analytics-go/internal/adapter/driven/aws"
	"github.com/diillson/catering-analytics-go/internal/adapter/driven/snapshot"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// Kind identifica o tipo de origem.
type Kind string

const (
	KindFile     Kind = "file"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	KindS3       Kind = "s3"
)

var fileExtensions = map[string]bool{".json": true, ".yaml": true, ".yml": true, ".toml": true}

// Detect classifica a origem sem abrir nada.
func Detect(src string) (Kind, error) {
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return "", types.ErrNoSource
	case strings.HasPrefix(src, "postgres://"), strings.HasPrefix(src, "postgresql://"):
		return KindPostgres, nil
	case strings.HasPrefix(src, "sqlite://"):
		return KindSQLite, nil
	case strings.HasPrefix(src, "s3://"):
		return KindS3, nil
	case strings.Contains(src, "://"):
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedSource, src)
	}

	ext := strings.ToLower(filepath.Ext(src))
	switch {
	case fileExtensions[ext]:
		return KindFile, nil
	case ext == ".db", ext == ".sqlite", ext == ".sqlite3":
		return KindSQLite, nil
	}
	return "", fmt.Errorf("%w: %s", types.ErrUnsupportedSource, src)
}

// Open cria o SnapshotRepository correspondente. awsProfile só é usado por s3://.
func Open(src, awsProfile string) (repository.SnapshotRepository, error) {
	kind, err := Detect(src)
	if err != nil {
		return nil, err
	}
	src = strings.TrimSpace(src)

	switch kind {
	case KindPostgres:
		return snapshot.NewPostgresRepository(src), nil
	case KindSQLite:
		return snapshot.NewSQLiteRepository(strings.TrimPrefix(src, "sqlite://"))
	case KindS3:
		return aws.NewS3Repository(src, awsProfile)
	default:
		return snapshot.NewFileRepository(src), nil
	}
}
