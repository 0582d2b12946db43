package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CarRepository looks up cars by id. Implementations return an error
// wrapping ErrRecordNotFound for unknown ids.
type CarRepository interface {
	Find(ctx context.Context, id string) (*Car, error)
}

// CategoryRepository looks up car categories by id.
type CategoryRepository interface {
	Find(ctx context.Context, id string) (*CarCategory, error)
}

// CustomerRepository looks up customers by id.
type CustomerRepository interface {
	Find(ctx context.Context, id string) (*Customer, error)
}

// TaxTableProvider supplies the ordered age brackets.
type TaxTableProvider interface {
	TaxTable() TaxTable
}

// RandomSource draws a uniform integer in [0, n). n is always > 0.
type RandomSource interface {
	IntN(n int) int
}

// Formatter renders amounts and dates for receipts. Identical inputs must
// produce identical output.
type Formatter interface {
	Currency(amount decimal.Decimal) string
	LongDate(t time.Time) string
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// ConfigLoader loads project configuration from a data directory.
type ConfigLoader interface {
	Load(dataDir string) (AppConfig, error)
}

// RentalHistory persists and lists completed rentals.
type RentalHistory interface {
	Save(dataDir string, entry RentalEntry) error
	Load(dataDir string) ([]RentalEntry, error)
}

// DataRevision identifies the version of the data directory, if tracked.
type DataRevision interface {
	CommitHash(dataDir string) (string, error)
}

// StaticTaxTable is a TaxTableProvider over a fixed table.
type StaticTaxTable TaxTable

func (s StaticTaxTable) TaxTable() TaxTable { return TaxTable(s) }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
