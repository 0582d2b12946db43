package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers the rental routes and /metrics.
func NewRouter(handler *RentalHandler, metrics *Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.HandleFunc("/rentals", handler.CreateRental).Methods(http.MethodPost)
	r.HandleFunc("/rentals", handler.ListRentals).Methods(http.MethodGet)
	r.HandleFunc("/quotes", handler.GetQuote).Methods(http.MethodGet)
	r.HandleFunc("/tax-table", handler.GetTaxTable).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}
