package repository

import (
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnv(files ...string) error
	// ApplyEnv fills the empty fields of cfg from environment variables.
	ApplyEnv(cfg *types.Config)
}
