package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentacar/rentacar/internal/adapters/outbound/tui"
	"github.com/rentacar/rentacar/internal/domain"
)

func newHistoryCmd(g *globals) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed rentals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := g.open()
			if err != nil {
				return err
			}
			defer done()

			entries, err := a.Desk.History()
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.RentalEntry{}
				}
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newTaxTableCmd(g *globals) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tax-table",
		Short: "Show the age brackets used for pricing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := g.open()
			if err != nil {
				return err
			}
			defer done()

			table := a.Desk.TaxTable()
			if jsonOutput {
				return renderJSON(cmd, table)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTaxTable(table))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
