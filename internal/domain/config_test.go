package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rentacar/rentacar/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, domain.StorageJSONFile, cfg.Storage.Driver)
	assert.Equal(t, "cars.json", cfg.Files.Cars)
	assert.Equal(t, "carCategories.json", cfg.Files.Categories)
	assert.Equal(t, "customers.json", cfg.Files.Customers)
	assert.Len(t, cfg.TaxTable, 3)
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.AppConfig)
		errMsg string
	}{
		{"unknown driver", func(c *domain.AppConfig) { c.Storage.Driver = "postgres" }, "unknown storage driver"},
		{"bolt without path", func(c *domain.AppConfig) {
			c.Storage.Driver = domain.StorageBolt
			c.Storage.BoltPath = ""
		}, "bolt_path"},
		{"negative timeout", func(c *domain.AppConfig) { c.LookupTimeout = -time.Second }, "lookup_timeout"},
		{"empty tax table", func(c *domain.AppConfig) { c.TaxTable = nil }, "tax table is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
