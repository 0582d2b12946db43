package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rentacar/rentacar/internal/application"
	"github.com/rentacar/rentacar/internal/domain"
)

type RentalHandler struct {
	desk    *application.DeskService
	metrics *Metrics
	timeout time.Duration
	logger  *slog.Logger
}

func NewRentalHandler(desk *application.DeskService, metrics *Metrics, timeout time.Duration, logger *slog.Logger) *RentalHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RentalHandler{desk: desk, metrics: metrics, timeout: timeout, logger: logger}
}

// statusClientClosedRequest is reported when the caller went away before
// the lookup finished. net/http has no constant for it.
const statusClientClosedRequest = 499

type errorBody struct {
	Error string `json:"error"`
}

// CreateRental handles POST /rentals.
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req application.RentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body: " + err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	tx, err := h.desk.Rent(ctx, req)
	if err != nil {
		h.metrics.observeRental(req.CategoryID, "error")
		h.writeError(w, r, err)
		return
	}
	h.metrics.observeRental(req.CategoryID, "ok")
	writeJSON(w, http.StatusCreated, tx)
}

// GetQuote handles GET /quotes?customerId=&categoryId=&days=.
func (h *RentalHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "days must be an integer"})
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	quote, err := h.desk.Quote(ctx, application.RentalRequest{
		CustomerID: q.Get("customerId"),
		CategoryID: q.Get("categoryId"),
		Days:       days,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// GetTaxTable handles GET /tax-table.
func (h *RentalHandler) GetTaxTable(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.desk.TaxTable())
}

// ListRentals handles GET /rentals.
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	entries, err := h.desk.History()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.RentalEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *RentalHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func (h *RentalHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("http.request_failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrNoMatchingTaxBracket),
		errors.Is(err, domain.ErrInvalidDays):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
