package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rentacar/rentacar/internal/domain"
)

// DeskService is the entry point used by the CLI, HTTP and MCP adapters.
// It resolves customers and categories by id, delegates to RentalService and
// records completed rentals in the history.
type DeskService struct {
	rentals    *RentalService
	customers  domain.CustomerRepository
	categories domain.CategoryRepository
	history    domain.RentalHistory
	revision   domain.DataRevision
	dataDir    string
	logger     *slog.Logger
}

func NewDeskService(
	rentals *RentalService,
	customers domain.CustomerRepository,
	categories domain.CategoryRepository,
	history domain.RentalHistory,
	revision domain.DataRevision,
	dataDir string,
	logger *slog.Logger,
) *DeskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeskService{
		rentals:    rentals,
		customers:  customers,
		categories: categories,
		history:    history,
		revision:   revision,
		dataDir:    dataDir,
		logger:     logger,
	}
}

// RentalRequest identifies a rental by record ids.
type RentalRequest struct {
	CustomerID string `json:"customerId"`
	CategoryID string `json:"categoryId"`
	Days       int    `json:"days"`
}

// Rent resolves the request, rents a car and appends the result to the
// history. A history failure is logged and does not fail the rental.
func (s *DeskService) Rent(ctx context.Context, req RentalRequest) (*domain.Transaction, error) {
	customer, category, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	tx, err := s.rentals.Rent(ctx, *customer, *category, req.Days)
	if err != nil {
		s.logger.Warn("rental.failed",
			"customer", req.CustomerID, "category", req.CategoryID, "days", req.Days, "error", err)
		return nil, err
	}

	entry := domain.RentalEntry{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		TransactionID: tx.ID,
		CustomerID:    customer.ID,
		CategoryID:    category.ID,
		CarID:         tx.Car.ID,
		DueDate:       tx.DueDate,
		Amount:        tx.Amount,
	}
	if s.revision != nil {
		if hash, err := s.revision.CommitHash(s.dataDir); err == nil {
			entry.DataRevision = hash
		}
	}
	if s.history != nil {
		if err := s.history.Save(s.dataDir, entry); err != nil {
			s.logger.Warn("history.save_failed", "transaction", tx.ID, "error", err)
		}
	}

	s.logger.Info("rental.completed",
		"transaction", tx.ID, "customer", customer.ID, "car", tx.Car.ID, "amount", tx.Amount)
	return tx, nil
}

// Quote resolves the request and prices it without allocating a car.
func (s *DeskService) Quote(ctx context.Context, req RentalRequest) (*domain.Quote, error) {
	customer, category, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.rentals.Quote(*customer, *category, req.Days)
}

// ChooseCar draws a car id from the named category.
func (s *DeskService) ChooseCar(ctx context.Context, categoryID string) (string, error) {
	category, err := s.categories.Find(ctx, categoryID)
	if err != nil {
		return "", fmt.Errorf("finding category %q: %w", categoryID, err)
	}
	return s.rentals.ChooseCar(*category)
}

// History lists previous rentals, oldest first.
func (s *DeskService) History() ([]domain.RentalEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load(s.dataDir)
}

// TaxTable returns the table the service prices with.
func (s *DeskService) TaxTable() domain.TaxTable {
	return s.rentals.taxes.TaxTable()
}

func (s *DeskService) resolve(ctx context.Context, req RentalRequest) (*domain.Customer, *domain.CarCategory, error) {
	customer, err := s.customers.Find(ctx, req.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("finding customer %q: %w", req.CustomerID, err)
	}
	category, err := s.categories.Find(ctx, req.CategoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("finding category %q: %w", req.CategoryID, err)
	}
	return customer, category, nil
}
