package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/rentacar/internal/adapters/outbound/format"
	"github.com/rentacar/rentacar/internal/adapters/outbound/random"
	"github.com/rentacar/rentacar/internal/application"
	"github.com/rentacar/rentacar/internal/domain"
)

// fixedRandom returns idx modulo n and counts draws.
type fixedRandom struct {
	mu    sync.Mutex
	idx   int
	calls int
	sizes []int
}

func (r *fixedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.sizes = append(r.sizes, n)
	return r.idx % n
}

// stubCars returns car for any id and records the ids it was asked for.
type stubCars struct {
	mu  sync.Mutex
	car *domain.Car
	err error
	ids []string
}

func (s *stubCars) Find(_ context.Context, id string) (*domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
	if s.err != nil {
		return nil, s.err
	}
	c := *s.car
	return &c, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var (
	validCar      = domain.Car{ID: "c1", Name: "Fiat Uno", ReleaseYear: 2010, Available: true, GasAvailable: true}
	validCustomer = domain.Customer{ID: "ana", Name: "Ana Souza", Age: 20}
	validCategory = domain.CarCategory{ID: "economy", Name: "EconomyHatch", CarIDs: []string{"c1", "c2", "c3"}, Price: dec("37.6")}
	fixedNow      = domain.ClockFunc(func() time.Time { return time.Date(2020, time.November, 5, 0, 0, 0, 0, time.Local) })
)

func newService(cars domain.CarRepository, taxes domain.TaxTable, rnd domain.RandomSource) *application.RentalService {
	return application.NewRentalService(cars, domain.StaticTaxTable(taxes), rnd, format.New(), fixedNow)
}

func TestRandomIndex_InRange(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		src := random.NewSeeded(seed)
		for n := 1; n <= 10; n++ {
			list := make([]int, n)
			idx, err := application.RandomIndex(src, list)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
		}
	}
}

func TestRandomIndex_EmptyList(t *testing.T) {
	_, err := application.RandomIndex(random.New(), []string{})
	assert.ErrorIs(t, err, domain.ErrEmptyCategory)
}

func TestRentalService_SelectRandomCandidate(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), random.NewSeeded(1))
	data := []string{"0", "1", "2", "3", "4"}

	for i := 0; i < 200; i++ {
		idx, err := svc.SelectRandomCandidate(data)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(data))
	}
}

func TestRentalService_ChooseCarReturnsDrawnID(t *testing.T) {
	rnd := &fixedRandom{idx: 0}
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), rnd)

	id, err := svc.ChooseCar(validCategory)
	require.NoError(t, err)
	assert.Equal(t, validCategory.CarIDs[0], id)
	assert.Equal(t, 1, rnd.calls)
	assert.Equal(t, []int{3}, rnd.sizes)
}

func TestRentalService_ChooseCarIsMemberOfCategory(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), random.NewSeeded(9))

	for i := 0; i < 100; i++ {
		id, err := svc.ChooseCar(validCategory)
		require.NoError(t, err)
		assert.Contains(t, validCategory.CarIDs, id)
	}
}

func TestRentalService_ChooseCarEmptyCategory(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), &fixedRandom{})

	_, err := svc.ChooseCar(domain.CarCategory{ID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrEmptyCategory)
}

func TestRentalService_FetchAvailableCar(t *testing.T) {
	cars := &stubCars{car: &validCar}
	rnd := &fixedRandom{}
	svc := newService(cars, domain.DefaultTaxTable(), rnd)

	category := validCategory
	category.CarIDs = []string{validCar.ID}

	car, err := svc.FetchAvailableCar(context.Background(), category)
	require.NoError(t, err)
	assert.Equal(t, validCar, *car)
	assert.Equal(t, 1, rnd.calls, "one draw per fetch")
	assert.Equal(t, []string{validCar.ID}, cars.ids)
}

func TestRentalService_FetchAvailableCarPropagatesRepositoryError(t *testing.T) {
	cars := &stubCars{err: domain.ErrRecordNotFound}
	svc := newService(cars, domain.DefaultTaxTable(), &fixedRandom{})

	_, err := svc.FetchAvailableCar(context.Background(), validCategory)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Len(t, cars.ids, 1, "no retry")
}

func TestRentalService_ComputeFinalPrice(t *testing.T) {
	taxes := domain.TaxTable{{From: 40, To: 50, Then: dec("1.3")}}
	svc := newService(&stubCars{car: &validCar}, taxes, &fixedRandom{})

	customer := validCustomer
	customer.Age = 50
	category := validCategory
	category.Price = dec("37.6")

	got, err := svc.ComputeFinalPrice(customer, category, 5)
	require.NoError(t, err)
	assert.Equal(t, "R$ 244,40", got)

	again, err := svc.ComputeFinalPrice(customer, category, 5)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestRentalService_ComputeFinalPriceMultiplierNotCompounded(t *testing.T) {
	taxes := domain.TaxTable{{From: 0, To: 120, Then: dec("2")}}
	svc := newService(&stubCars{car: &validCar}, taxes, &fixedRandom{})
	category := validCategory
	category.Price = dec("10")

	got, err := svc.ComputeFinalPrice(validCustomer, category, 3)
	require.NoError(t, err)
	assert.Equal(t, "R$ 60,00", got)
}

func TestRentalService_ComputeFinalPriceNoBracket(t *testing.T) {
	taxes := domain.TaxTable{{From: 40, To: 50, Then: dec("1.3")}}
	svc := newService(&stubCars{car: &validCar}, taxes, &fixedRandom{})

	_, err := svc.ComputeFinalPrice(validCustomer, validCategory, 5)
	assert.ErrorIs(t, err, domain.ErrNoMatchingTaxBracket)
}

func TestRentalService_ComputeFinalPriceBoundaries(t *testing.T) {
	taxes := domain.TaxTable{
		{From: 18, To: 25, Then: dec("1")},
		{From: 25, To: 40, Then: dec("2")},
	}
	svc := newService(&stubCars{car: &validCar}, taxes, &fixedRandom{})
	category := validCategory
	category.Price = dec("100")

	tests := []struct {
		age  int
		want string
	}{
		{18, "R$ 100,00"},
		{25, "R$ 100,00"},
		{26, "R$ 200,00"},
		{40, "R$ 200,00"},
	}
	for _, tt := range tests {
		customer := validCustomer
		customer.Age = tt.age
		got, err := svc.ComputeFinalPrice(customer, category, 1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "age %d", tt.age)
	}
}

func TestRentalService_ComputeFinalPriceInvalidDays(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), &fixedRandom{})

	for _, days := range []int{0, -1} {
		_, err := svc.ComputeFinalPrice(validCustomer, validCategory, days)
		assert.ErrorIs(t, err, domain.ErrInvalidDays)
	}
}

func TestRentalService_Quote(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), &fixedRandom{})

	q, err := svc.Quote(validCustomer, validCategory, 5)
	require.NoError(t, err)
	assert.True(t, q.Multiplier.Equal(dec("1.1")))
	assert.True(t, q.Total.Equal(dec("206.8")))
	assert.Equal(t, "R$ 206,80", q.Amount)
	assert.Equal(t, 5, q.Days)
}

func TestRentalService_Rent(t *testing.T) {
	cars := &stubCars{car: &validCar}
	svc := newService(cars, domain.DefaultTaxTable(), &fixedRandom{})

	category := validCategory
	category.Price = dec("37.6")
	category.CarIDs = []string{validCar.ID}

	tx, err := svc.Rent(context.Background(), validCustomer, category, 5)
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, validCustomer, tx.Customer)
	assert.Equal(t, validCar, tx.Car)
	assert.Equal(t, "10 de novembro de 2020", tx.DueDate)
	assert.Equal(t, "R$ 206,80", tx.Amount)
	assert.Equal(t, []string{validCar.ID}, cars.ids)
}

func TestRentalService_RentFailsWithoutBracket(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), &fixedRandom{})
	customer := validCustomer
	customer.Age = 16

	tx, err := svc.Rent(context.Background(), customer, validCategory, 5)
	assert.ErrorIs(t, err, domain.ErrNoMatchingTaxBracket)
	assert.Nil(t, tx)
}

func TestRentalService_RentFailsOnRepositoryError(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := newService(&stubCars{err: boom}, domain.DefaultTaxTable(), &fixedRandom{})

	tx, err := svc.Rent(context.Background(), validCustomer, validCategory, 5)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, tx)
}

func TestRentalService_RentEmptyCategory(t *testing.T) {
	svc := newService(&stubCars{car: &validCar}, domain.DefaultTaxTable(), &fixedRandom{})

	tx, err := svc.Rent(context.Background(), validCustomer, domain.CarCategory{ID: "ghost", Price: dec("10")}, 5)
	assert.ErrorIs(t, err, domain.ErrEmptyCategory)
	assert.Nil(t, tx)
}
