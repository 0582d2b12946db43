package config

import "github.com/shopspring/decimal"

type yamlConfig struct {
	Storage       yamlStorage      `yaml:"storage"`
	Files         yamlFiles        `yaml:"files"`
	TaxTable      []yamlTaxBracket `yaml:"tax_table"`
	HTTPAddr      string           `yaml:"http_addr"`
	LookupTimeout string           `yaml:"lookup_timeout"`
}

type yamlStorage struct {
	Driver   string `yaml:"driver"`
	BoltPath string `yaml:"bolt_path"`
}

type yamlFiles struct {
	Cars       string `yaml:"cars"`
	Categories string `yaml:"categories"`
	Customers  string `yaml:"customers"`
}

type yamlTaxBracket struct {
	From int             `yaml:"from"`
	To   int             `yaml:"to"`
	Then decimal.Decimal `yaml:"then"`
}
