package domain

import (
	"fmt"
	"time"
)

// StorageDriver selects the backend behind the repositories.
type StorageDriver string

const (
	StorageJSONFile StorageDriver = "jsonfile"
	StorageBolt     StorageDriver = "bolt"
)

// ValidStorageDrivers enumerates all recognized storage drivers.
var ValidStorageDrivers = []StorageDriver{StorageJSONFile, StorageBolt}

// AppConfig holds configuration loaded from .rentacar.yaml and the environment.
type AppConfig struct {
	Storage       StorageConfig
	Files         FilesConfig
	TaxTable      TaxTable
	HTTPAddr      string
	LookupTimeout time.Duration
}

// StorageConfig chooses where records are read from.
type StorageConfig struct {
	Driver   StorageDriver
	BoltPath string
}

// FilesConfig names the flat files holding each record kind, relative to
// the data directory.
type FilesConfig struct {
	Cars       string
	Categories string
	Customers  string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() AppConfig {
	return AppConfig{
		Storage: StorageConfig{
			Driver:   StorageJSONFile,
			BoltPath: "rentacar.db",
		},
		Files: FilesConfig{
			Cars:       "cars.json",
			Categories: "carCategories.json",
			Customers:  "customers.json",
		},
		TaxTable:      DefaultTaxTable(),
		HTTPAddr:      ":8080",
		LookupTimeout: 5 * time.Second,
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AppConfig) Validate() error {
	valid := false
	for _, d := range ValidStorageDrivers {
		if c.Storage.Driver == d {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown storage driver %q (valid: jsonfile, bolt): %w", c.Storage.Driver, ErrInvalidConfig)
	}

	if c.Storage.Driver == StorageBolt && c.Storage.BoltPath == "" {
		return fmt.Errorf("storage.bolt_path is required for the bolt driver: %w", ErrInvalidConfig)
	}

	if c.LookupTimeout < 0 {
		return fmt.Errorf("lookup_timeout must not be negative (got %s): %w", c.LookupTimeout, ErrInvalidConfig)
	}

	return c.TaxTable.Validate()
}
