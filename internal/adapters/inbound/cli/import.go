package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentacar/rentacar/internal/adapters/outbound/config"
	"github.com/rentacar/rentacar/internal/adapters/outbound/logger"
	"github.com/rentacar/rentacar/internal/app"
)

func newImportCmd(g *globals) *cobra.Command {
	var (
		dbPath     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the JSON database into a BoltDB file",
		Long:  "Read cars, categories and customers from the configured JSON files and store them in a BoltDB file. Existing ids are kept, so the import can be re-run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := g.opts.Loader
			if loader == nil {
				loader = config.New()
			}
			cfg, err := loader.Load(g.dataDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dbPath == "" {
				dbPath = cfg.Storage.BoltPath
			}

			closeLog, err := logger.Setup(logger.Config{DataDir: g.dataDir, Debug: g.debug})
			if err != nil {
				return fmt.Errorf("setting up logger: %w", err)
			}
			defer closeLog()

			report, err := app.ImportFlatFiles(cmd.Context(), g.dataDir, cfg, dbPath)
			if err != nil {
				logger.L().Error("import.failed", "db", dbPath, "error", err)
				return fmt.Errorf("import failed: %w", err)
			}
			logger.L().Info("import.completed",
				"db", dbPath, "cars", report.Cars, "categories", report.Categories, "customers", report.Customers)

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cars, %d categories, %d customers into %s\n",
				report.Cars, report.Categories, report.Customers, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "BoltDB file (defaults to storage.bolt_path)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
