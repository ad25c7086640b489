package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/catering-analytics-go/internal/domain/entity"
	"github.com/diillson/catering-analytics-go/internal/domain/repository"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// Decode lê um snapshot serializado; ext escolhe o formato (.json, .yaml/.yml, .toml).
func Decode(data []byte, ext string) (entity.Snapshot, error) {
	var doc document

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return entity.Snapshot{}, fmt.Errorf("error parsing JSON snapshot: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return entity.Snapshot{}, fmt.Errorf("error parsing YAML snapshot: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return entity.Snapshot{}, fmt.Errorf("error parsing TOML snapshot: %w", err)
		}
	default:
		return entity.Snapshot{}, fmt.Errorf("%w: snapshot format %q", types.ErrUnsupportedSource, ext)
	}

	return doc.toSnapshot()
}

// FileRepositoryImpl lê o snapshot de um arquivo local a cada Load.
type FileRepositoryImpl struct {
	path string
	now  func() time.Time
}

// NewFileRepository cria um SnapshotRepository para um arquivo local.
func NewFileRepository(path string) repository.SnapshotRepository {
	return &FileRepositoryImpl{path: path, now: time.Now}
}

// Load relê o arquivo, de modo que edições aparecem no próximo ciclo do modo watch.
func (r *FileRepositoryImpl) Load(ctx context.Context) (entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return entity.Snapshot{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("error reading snapshot file: %w", err)
	}

	s, err := Decode(data, filepath.Ext(r.path))
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("%s: %w", r.path, err)
	}
	s.FetchedAt = r.now()
	return s, nil
}

func (r *FileRepositoryImpl) Describe() string {
	return "file " + r.path
}

func (r *FileRepositoryImpl) Close() error {
	return nil
}
