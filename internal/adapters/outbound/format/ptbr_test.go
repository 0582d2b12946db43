package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rentacar/rentacar/internal/adapters/outbound/format"
)

func TestPTBR_Currency(t *testing.T) {
	f := format.New()

	tests := []struct {
		amount string
		want   string
	}{
		{"244.4", "R$ 244,40"},
		{"206.8", "R$ 206,80"},
		{"0", "R$ 0,00"},
		{"0.005", "R$ 0,01"},
		{"41.364", "R$ 41,36"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-10.5", "-R$ 10,50"},
		{"100", "R$ 100,00"},
		{"100000", "R$ 100.000,00"},
		{"99999999999999999999.99", "R$ 99.999.999.999.999.999.999,99"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Currency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestPTBR_CurrencyIsStable(t *testing.T) {
	f := format.New()
	amount := decimal.RequireFromString("244.40")
	assert.Equal(t, f.Currency(amount), f.Currency(amount))
}

func TestPTBR_LongDate(t *testing.T) {
	f := format.New()

	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2020, time.November, 10, 0, 0, 0, 0, time.UTC), "10 de novembro de 2020"},
		{time.Date(2021, time.January, 1, 12, 0, 0, 0, time.UTC), "1 de janeiro de 2021"},
		{time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC), "31 de março de 2024"},
		{time.Date(2019, time.December, 25, 0, 0, 0, 0, time.UTC), "25 de dezembro de 2019"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.LongDate(tt.date))
		})
	}
}
