package app

import (
	"context"

	"github.com/rentacar/rentacar/internal/adapters/outbound/boltdb"
	"github.com/rentacar/rentacar/internal/adapters/outbound/jsonfile"
	"github.com/rentacar/rentacar/internal/domain"
)

// ImportReport counts the records written per kind.
type ImportReport struct {
	Cars       int `json:"cars"`
	Categories int `json:"categories"`
	Customers  int `json:"customers"`
}

// ImportFlatFiles copies the JSON files named by cfg into the bolt database
// at dbPath. Records whose id already exists are left untouched, so running
// it twice is harmless.
func ImportFlatFiles(ctx context.Context, dataDir string, cfg domain.AppConfig, dbPath string) (ImportReport, error) {
	var report ImportReport

	resolve := func(p string) string { return resolvePath(dataDir, p) }

	db, err := boltdb.Open(resolve(dbPath))
	if err != nil {
		return report, err
	}
	defer db.Close()

	cars, err := jsonfile.New[domain.Car](resolve(cfg.Files.Cars)).All(ctx)
	if err != nil {
		return report, err
	}
	if report.Cars, err = boltdb.Import(ctx, db.Cars(), cars); err != nil {
		return report, err
	}

	categories, err := jsonfile.New[domain.CarCategory](resolve(cfg.Files.Categories)).All(ctx)
	if err != nil {
		return report, err
	}
	if report.Categories, err = boltdb.Import(ctx, db.Categories(), categories); err != nil {
		return report, err
	}

	customers, err := jsonfile.New[domain.Customer](resolve(cfg.Files.Customers)).All(ctx)
	if err != nil {
		return report, err
	}
	if report.Customers, err = boltdb.Import(ctx, db.Customers(), customers); err != nil {
		return report, err
	}

	return report, nil
}
