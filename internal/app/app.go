// Package app wires the outbound adapters selected by configuration into a
// ready-to-use DeskService. The CLI, HTTP and MCP adapters all start here.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rentacar/rentacar/internal/adapters/outbound/boltdb"
	"github.com/rentacar/rentacar/internal/adapters/outbound/config"
	"github.com/rentacar/rentacar/internal/adapters/outbound/format"
	"github.com/rentacar/rentacar/internal/adapters/outbound/gitinfo"
	"github.com/rentacar/rentacar/internal/adapters/outbound/history"
	"github.com/rentacar/rentacar/internal/adapters/outbound/jsonfile"
	"github.com/rentacar/rentacar/internal/adapters/outbound/random"
	"github.com/rentacar/rentacar/internal/application"
	"github.com/rentacar/rentacar/internal/domain"
)

// Options tweak how the app is assembled. Zero values use production
// adapters.
type Options struct {
	Loader domain.ConfigLoader
	Random domain.RandomSource
	Clock  domain.Clock
	Logger *slog.Logger
}

// App holds the assembled service and everything that must be released.
type App struct {
	Config  domain.AppConfig
	DataDir string
	Desk    *application.DeskService

	closers []func() error
}

// New loads configuration from dataDir and builds the service graph.
func New(dataDir string, opts Options) (*App, error) {
	if opts.Loader == nil {
		opts.Loader = config.New()
	}
	if opts.Random == nil {
		opts.Random = random.New()
	}
	if opts.Clock == nil {
		opts.Clock = domain.SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	cfg, err := opts.Loader.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &App{Config: cfg, DataDir: dataDir}

	var (
		cars       domain.CarRepository
		categories domain.CategoryRepository
		customers  domain.CustomerRepository
	)

	switch cfg.Storage.Driver {
	case domain.StorageBolt:
		db, err := boltdb.Open(a.resolve(cfg.Storage.BoltPath))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		cars, categories, customers = db.Cars(), db.Categories(), db.Customers()
	default:
		cars = jsonfile.New[domain.Car](a.resolve(cfg.Files.Cars))
		categories = jsonfile.New[domain.CarCategory](a.resolve(cfg.Files.Categories))
		customers = jsonfile.New[domain.Customer](a.resolve(cfg.Files.Customers))
	}

	rentals := application.NewRentalService(
		cars,
		domain.StaticTaxTable(cfg.TaxTable),
		opts.Random,
		format.New(),
		opts.Clock,
	)

	a.Desk = application.NewDeskService(
		rentals,
		customers,
		categories,
		history.New(),
		gitinfo.New(),
		dataDir,
		opts.Logger,
	)

	opts.Logger.Debug("app.ready", "data_dir", dataDir, "storage", cfg.Storage.Driver)
	return a, nil
}

// Close releases storage handles.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) resolve(p string) string { return resolvePath(a.DataDir, p) }

// resolvePath makes p relative to dataDir unless it is absolute.
func resolvePath(dataDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}
