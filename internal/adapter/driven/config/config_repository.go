package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/catering-analytics-go/internal/domain/repository"
	"github.com/diillson/catering-analytics-go/internal/shared/types"
)

// Variáveis de ambiente reconhecidas.
const (
	EnvSource      = "CATERING_SOURCE"
	EnvDatabaseURL = "DATABASE_URL"
	EnvRefresh     = "CATERING_REFRESH"
	EnvTimezone    = "CATERING_TIMEZONE"
	EnvAWSProfile  = "AWS_PROFILE"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, fileExtension)
	}

	return &config, nil
}

// LoadEnv carrega arquivos .env sem sobrescrever variáveis já definidas.
// Sem argumentos tenta ".env" no diretório atual; a ausência desse arquivo não é erro.
func (r *ConfigRepositoryImpl) LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("error loading env files %v: %w", files, err)
	}
	return nil
}

// ApplyEnv preenche os campos vazios de cfg a partir do ambiente.
func (r *ConfigRepositoryImpl) ApplyEnv(cfg *types.Config) {
	if cfg.Source == "" {
		cfg.Source = os.Getenv(EnvSource)
	}
	if cfg.Source == "" {
		cfg.Source = os.Getenv(EnvDatabaseURL)
	}
	if cfg.RefreshInterval == "" {
		cfg.RefreshInterval = os.Getenv(EnvRefresh)
	}
	if cfg.Policy.Timezone == "" {
		cfg.Policy.Timezone = os.Getenv(EnvTimezone)
	}
	if cfg.AWSProfile == "" {
		cfg.AWSProfile = os.Getenv(EnvAWSProfile)
	}
}
