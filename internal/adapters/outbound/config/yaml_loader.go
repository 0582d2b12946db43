package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rentacar/rentacar/internal/domain"
)

const (
	FileName    = ".rentacar.yaml"
	envFileName = ".env"

	EnvStorage  = "RENTACAR_STORAGE"
	EnvBoltPath = "RENTACAR_BOLT_PATH"
	EnvHTTPAddr = "RENTACAR_HTTP_ADDR"
)

// YAMLLoader implements domain.ConfigLoader by reading .rentacar.yaml and
// then applying environment overrides. Process environment wins over the
// data directory's .env file.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader reading the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader { return &YAMLLoader{getenv: getenv} }

// Load reads .rentacar.yaml from dataDir.
// Returns DefaultConfig (plus env overrides) if the file does not exist.
func (l *YAMLLoader) Load(dataDir string) (domain.AppConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dataDir, FileName))
	switch {
	case err == nil:
		var raw yamlConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.AppConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
		cfg, err = mergeConfig(cfg, raw)
		if err != nil {
			return domain.AppConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return domain.AppConfig{}, err
	}

	env, err := l.environment(dataDir)
	if err != nil {
		return domain.AppConfig{}, err
	}
	applyEnv(&cfg, env)

	if err := cfg.Validate(); err != nil {
		return domain.AppConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// environment merges the .env file under the process environment.
func (l *YAMLLoader) environment(dataDir string) (map[string]string, error) {
	env := map[string]string{}

	fileEnv, err := godotenv.Read(filepath.Join(dataDir, envFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("parsing %s: %w", envFileName, err)
	}
	for k, v := range fileEnv {
		env[k] = v
	}

	for _, key := range []string{EnvStorage, EnvBoltPath, EnvHTTPAddr} {
		if v := l.getenv(key); v != "" {
			env[key] = v
		}
	}
	return env, nil
}

func applyEnv(cfg *domain.AppConfig, env map[string]string) {
	if v := env[EnvStorage]; v != "" {
		cfg.Storage.Driver = domain.StorageDriver(v)
	}
	if v := env[EnvBoltPath]; v != "" {
		cfg.Storage.BoltPath = v
	}
	if v := env[EnvHTTPAddr]; v != "" {
		cfg.HTTPAddr = v
	}
}

// mergeConfig overlays explicit values from the file on top of defaults.
// An explicit tax_table replaces the default table entirely.
func mergeConfig(base domain.AppConfig, raw yamlConfig) (domain.AppConfig, error) {
	result := base

	if raw.Storage.Driver != "" {
		result.Storage.Driver = domain.StorageDriver(raw.Storage.Driver)
	}
	if raw.Storage.BoltPath != "" {
		result.Storage.BoltPath = raw.Storage.BoltPath
	}

	if raw.Files.Cars != "" {
		result.Files.Cars = raw.Files.Cars
	}
	if raw.Files.Categories != "" {
		result.Files.Categories = raw.Files.Categories
	}
	if raw.Files.Customers != "" {
		result.Files.Customers = raw.Files.Customers
	}

	if len(raw.TaxTable) > 0 {
		table := make(domain.TaxTable, 0, len(raw.TaxTable))
		for _, b := range raw.TaxTable {
			table = append(table, domain.TaxBracket{
				From: b.From,
				To:   b.To,
				Then: b.Then,
			})
		}
		result.TaxTable = table
	}

	if raw.HTTPAddr != "" {
		result.HTTPAddr = raw.HTTPAddr
	}

	if raw.LookupTimeout != "" {
		d, err := time.ParseDuration(raw.LookupTimeout)
		if err != nil {
			return domain.AppConfig{}, fmt.Errorf("lookup_timeout: %w", err)
		}
		result.LookupTimeout = d
	}

	return result, nil
}
