package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/rentacar/rentacar/internal/adapters/inbound/http"
	"github.com/rentacar/rentacar/internal/adapters/outbound/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(g *globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rental API over HTTP",
		Long:  "Start the HTTP API (POST /rentals, GET /quotes, GET /tax-table, GET /metrics). Stops on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := g.open()
			if err != nil {
				return err
			}
			defer done()

			if addr == "" {
				addr = a.Config.HTTPAddr
			}

			metrics := httpadapter.NewMetrics()
			handler := httpadapter.NewRentalHandler(a.Desk, metrics, a.Config.LookupTimeout, logger.L())
			srv := &http.Server{
				Addr:              addr,
				Handler:           httpadapter.NewRouter(handler, metrics),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, srv, func(addr string) {
				fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to http_addr from config)")

	return cmd
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, started func(addr string)) error {
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		logger.L().Info("http.listening", "addr", srv.Addr)
		started(srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", srv.Addr, err)
		}
		return nil
	})

	grp.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.L().Info("http.shutdown", "addr", srv.Addr)
		return srv.Shutdown(shutdownCtx)
	})

	return grp.Wait()
}
