package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/rentacar/rentacar/internal/domain"
)

// RentalService allocates a car from a category and prices the rental:
// pick a random candidate → fetch the car → apply the age multiplier → receipt.
type RentalService struct {
	cars      domain.CarRepository
	taxes     domain.TaxTableProvider
	random    domain.RandomSource
	formatter domain.Formatter
	clock     domain.Clock
}

func NewRentalService(
	cars domain.CarRepository,
	taxes domain.TaxTableProvider,
	random domain.RandomSource,
	formatter domain.Formatter,
	clock domain.Clock,
) *RentalService {
	return &RentalService{
		cars:      cars,
		taxes:     taxes,
		random:    random,
		formatter: formatter,
		clock:     clock,
	}
}

// RandomIndex returns a uniformly distributed index into list.
func RandomIndex[T any](src domain.RandomSource, list []T) (int, error) {
	if len(list) == 0 {
		return 0, domain.ErrEmptyCategory
	}
	return src.IntN(len(list)), nil
}

// SelectRandomCandidate returns a random index into list using the
// service's random source.
func (s *RentalService) SelectRandomCandidate(list []string) (int, error) {
	return RandomIndex(s.random, list)
}

// ChooseCar returns one car id drawn at random from the category.
func (s *RentalService) ChooseCar(category domain.CarCategory) (string, error) {
	idx, err := s.SelectRandomCandidate(category.CarIDs)
	if err != nil {
		return "", fmt.Errorf("category %q: %w", category.ID, err)
	}
	return category.CarIDs[idx], nil
}

// FetchAvailableCar chooses a car id and loads it from the repository.
// Repository errors are returned as-is apart from wrapping.
func (s *RentalService) FetchAvailableCar(ctx context.Context, category domain.CarCategory) (*domain.Car, error) {
	carID, err := s.ChooseCar(category)
	if err != nil {
		return nil, err
	}

	car, err := s.cars.Find(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("finding car %q: %w", carID, err)
	}
	return car, nil
}

// ComputeFinalPrice returns the formatted total for the rental.
// The multiplier is applied once to price × days, not compounded per day.
func (s *RentalService) ComputeFinalPrice(customer domain.Customer, category domain.CarCategory, days int) (string, error) {
	_, total, err := s.price(customer, category, days)
	if err != nil {
		return "", err
	}
	return s.formatter.Currency(total), nil
}

// Quote prices a rental without allocating a car.
func (s *RentalService) Quote(customer domain.Customer, category domain.CarCategory, days int) (*domain.Quote, error) {
	multiplier, total, err := s.price(customer, category, days)
	if err != nil {
		return nil, err
	}
	return &domain.Quote{
		Customer:   customer,
		Category:   category,
		Days:       days,
		Multiplier: multiplier,
		Total:      total,
		Amount:     s.formatter.Currency(total),
	}, nil
}

// Rent allocates a car and prices the rental. The car lookup and the price
// computation run concurrently; if either fails no transaction is built.
func (s *RentalService) Rent(ctx context.Context, customer domain.Customer, category domain.CarCategory, days int) (*domain.Transaction, error) {
	var (
		car    *domain.Car
		amount string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		car, err = s.FetchAvailableCar(gctx, category)
		return err
	})
	g.Go(func() error {
		var err error
		amount, err = s.ComputeFinalPrice(customer, category, days)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dueDate := s.clock.Now().AddDate(0, 0, days)

	return &domain.Transaction{
		ID:       uuid.NewString(),
		Customer: customer,
		Car:      *car,
		DueDate:  s.formatter.LongDate(dueDate),
		Amount:   amount,
	}, nil
}

func (s *RentalService) price(customer domain.Customer, category domain.CarCategory, days int) (decimal.Decimal, decimal.Decimal, error) {
	if days <= 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%d days: %w", days, domain.ErrInvalidDays)
	}

	bracket, err := s.taxes.TaxTable().Lookup(customer.Age)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("customer %q: %w", customer.ID, err)
	}

	total := bracket.Then.Mul(category.Price).Mul(decimal.NewFromInt(int64(days)))
	return bracket.Then, total, nil
}
