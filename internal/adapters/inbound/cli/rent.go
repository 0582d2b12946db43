package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentacar/rentacar/internal/adapters/outbound/tui"
	"github.com/rentacar/rentacar/internal/application"
)

// rentalFlags are shared by rent and quote.
type rentalFlags struct {
	customer   string
	category   string
	days       int
	jsonOutput bool
	timeout    time.Duration
}

func (f *rentalFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.customer, "customer", "", "Customer id")
	cmd.Flags().StringVar(&f.category, "category", "", "Car category id")
	cmd.Flags().IntVar(&f.days, "days", 0, "Number of rental days")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Lookup timeout (defaults to lookup_timeout from config)")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("days")
}

func (f *rentalFlags) request() application.RentalRequest {
	return application.RentalRequest{CustomerID: f.customer, CategoryID: f.category, Days: f.days}
}

// context bounds the lookup by --timeout, falling back to the configured
// timeout. Zero means no limit.
func (f *rentalFlags) context(parent context.Context, fallback time.Duration) (context.Context, context.CancelFunc) {
	timeout := f.timeout
	if timeout <= 0 {
		timeout = fallback
	}
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func newRentCmd(g *globals) *cobra.Command {
	var f rentalFlags

	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Rent a car from a category",
		Long:  "Pick a random available car from the category, price the rental for the customer and record it in the history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := g.open()
			if err != nil {
				return err
			}
			defer done()

			ctx, cancel := f.context(cmd.Context(), a.Config.LookupTimeout)
			defer cancel()

			tx, err := a.Desk.Rent(ctx, f.request())
			if err != nil {
				return fmt.Errorf("rent failed: %w", err)
			}

			if f.jsonOutput {
				return renderJSON(cmd, tx)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReceipt(tx))
			return nil
		},
	}
	f.bind(cmd)

	return cmd
}

func newQuoteCmd(g *globals) *cobra.Command {
	var f rentalFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a rental without renting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := g.open()
			if err != nil {
				return err
			}
			defer done()

			ctx, cancel := f.context(cmd.Context(), a.Config.LookupTimeout)
			defer cancel()

			quote, err := a.Desk.Quote(ctx, f.request())
			if err != nil {
				return fmt.Errorf("quote failed: %w", err)
			}

			if f.jsonOutput {
				return renderJSON(cmd, quote)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderQuote(quote))
			return nil
		},
	}
	f.bind(cmd)

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
