package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket maps an inclusive age range to a price multiplier.
type TaxBracket struct {
	From int             `json:"from"`
	To   int             `json:"to"`
	Then decimal.Decimal `json:"then"`
}

// Contains reports whether age falls in [From, To].
func (b TaxBracket) Contains(age int) bool {
	return age >= b.From && age <= b.To
}

// TaxTable is an ordered list of brackets. Order matters: overlapping
// brackets resolve to the earliest one.
type TaxTable []TaxBracket

// DefaultTaxTable returns the age table used when no config overrides it.
func DefaultTaxTable() TaxTable {
	return TaxTable{
		{From: 18, To: 25, Then: decimal.RequireFromString("1.1")},
		{From: 26, To: 30, Then: decimal.RequireFromString("1.5")},
		{From: 31, To: 100, Then: decimal.RequireFromString("1.3")},
	}
}

// Lookup returns the first bracket containing age.
func (t TaxTable) Lookup(age int) (TaxBracket, error) {
	for _, b := range t {
		if b.Contains(age) {
			return b, nil
		}
	}
	return TaxBracket{}, fmt.Errorf("age %d: %w", age, ErrNoMatchingTaxBracket)
}

// Validate checks every bracket for a sane range and a positive multiplier.
func (t TaxTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("tax table is empty: %w", ErrInvalidConfig)
	}
	for i, b := range t {
		if b.From < 0 || b.To < b.From {
			return fmt.Errorf("tax_table[%d]: range %d-%d is invalid: %w", i, b.From, b.To, ErrInvalidConfig)
		}
		if !b.Then.IsPositive() {
			return fmt.Errorf("tax_table[%d]: multiplier must be > 0 (got %s): %w", i, b.Then, ErrInvalidConfig)
		}
	}
	return nil
}
