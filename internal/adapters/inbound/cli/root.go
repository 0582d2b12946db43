package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentacar/rentacar/internal/adapters/outbound/logger"
	"github.com/rentacar/rentacar/internal/app"
)

var (
	version = "dev"
	commit  = "none"
)

// globals carries the persistent flags shared by every subcommand.
type globals struct {
	dataDir string
	debug   bool
	opts    app.Options
}

func newRootCmd(opts app.Options) *cobra.Command {
	g := &globals{opts: opts}

	cmd := &cobra.Command{
		Use:           "rentacar",
		Short:         "Rent cars and price rentals by customer age",
		Long:          "rentacar picks an available car from a category, prices the rental with the age-based tax table and prints a receipt.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&g.dataDir, "data", ".", "Directory holding the JSON database and .rentacar.yaml")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Write debug logs with source locations")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(g))
	cmd.AddCommand(newRentCmd(g))
	cmd.AddCommand(newQuoteCmd(g))
	cmd.AddCommand(newHistoryCmd(g))
	cmd.AddCommand(newTaxTableCmd(g))
	cmd.AddCommand(newImportCmd(g))
	cmd.AddCommand(newServeCmd(g))
	cmd.AddCommand(newMCPCmd(g))
	return cmd
}

// open sets up logging under the data directory and assembles the app.
// The returned func releases both.
func (g *globals) open() (*app.App, func(), error) {
	closeLog, err := logger.Setup(logger.Config{DataDir: g.dataDir, Debug: g.debug})
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logger: %w", err)
	}

	opts := g.opts
	if opts.Logger == nil {
		opts.Logger = logger.L()
	}

	a, err := app.New(g.dataDir, opts)
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}
	return a, func() {
		_ = a.Close()
		_ = closeLog()
	}, nil
}

// NewRootCmdForTest returns the root command wired with the given options.
func NewRootCmdForTest(opts app.Options) *cobra.Command {
	return newRootCmd(opts)
}

func Execute() error {
	cmd := newRootCmd(app.Options{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
