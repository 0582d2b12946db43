package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rentacar/rentacar/internal/adapters/outbound/config"
	"github.com/rentacar/rentacar/internal/domain"
)

func newInitCmd(g *globals) *cobra.Command {
	var (
		storage string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .rentacar.yaml configuration file",
		Long:  "Create a .rentacar.yaml in the data directory with the default files and tax table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(g.dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			driver := domain.StorageDriver(storage)
			if driver != domain.StorageJSONFile && driver != domain.StorageBolt {
				return fmt.Errorf("unknown storage driver %q (valid: %s, %s)", storage, domain.StorageJSONFile, domain.StorageBolt)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(driver)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&storage, "storage", string(domain.StorageJSONFile), "Storage driver (jsonfile, bolt)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .rentacar.yaml")

	return cmd
}

func generateConfig(driver domain.StorageDriver) string {
	cfg := domain.DefaultConfig()

	var b strings.Builder
	b.WriteString("# rentacar configuration\n\n")
	fmt.Fprintf(&b, "storage:\n  driver: %s\n  bolt_path: %s\n\n", driver, cfg.Storage.BoltPath)
	fmt.Fprintf(&b, "files:\n  cars: %s\n  categories: %s\n  customers: %s\n\n",
		cfg.Files.Cars, cfg.Files.Categories, cfg.Files.Customers)

	b.WriteString("tax_table:\n")
	for _, br := range cfg.TaxTable {
		fmt.Fprintf(&b, "  - {from: %d, to: %d, then: %s}\n", br.From, br.To, br.Then)
	}

	fmt.Fprintf(&b, "\nhttp_addr: %q\nlookup_timeout: %s\n", cfg.HTTPAddr, cfg.LookupTimeout)
	b.WriteString(`
# RENTACAR_STORAGE, RENTACAR_BOLT_PATH and RENTACAR_HTTP_ADDR
# (process environment or .env) override the values above.
`)
	return b.String()
}
