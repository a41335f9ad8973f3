package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"court_manager/helper"
	"court_manager/model"
	"court_manager/repository"
	"court_manager/utils"

	"github.com/stretchr/testify/assert"
)

// fakeRentalRepo mirrors the store's guarantees in memory: ids are assigned on
// insert and the one-rental-per-customer unique constraint is enforced under a
// single lock, the way the database index does.
type fakeRentalRepo struct {
	mu      sync.Mutex
	nextID  uint
	rentals map[uint]model.Rental
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[uint]model.Rental)}
}

func (f *fakeRentalRepo) All(ctx context.Context) (model.Rentals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(model.Rentals, 0, len(f.rentals))
	for _, r := range f.rentals {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRentalRepo) ByID(ctx context.Context, id uint) (*model.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRentalRepo) ByCourtID(ctx context.Context, courtID uint) (model.Rentals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(model.Rentals, 0)
	for _, r := range f.rentals {
		if r.CourtID == courtID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) HasRentalForCustomer(ctx context.Context, customerID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.customerBookedLocked(customerID, 0), nil
}

func (f *fakeRentalRepo) Create(ctx context.Context, rental *model.Rental) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.customerBookedLocked(rental.CustomerID, 0) {
		return repository.ErrAlreadyBooked
	}
	f.nextID++
	rental.ID = f.nextID
	f.rentals[rental.ID] = *rental
	return nil
}

func (f *fakeRentalRepo) Update(ctx context.Context, id uint, in model.EditRentalInput) (*model.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if f.customerBookedLocked(in.CustomerID, id) {
		return nil, repository.ErrAlreadyBooked
	}
	existing.Price = helper.FinalPrice(existing.Price, existing.Date, in.Date)
	existing.CourtID = in.CourtID
	existing.CustomerID = in.CustomerID
	existing.Date = in.Date
	f.rentals[id] = existing
	return &existing, nil
}

func (f *fakeRentalRepo) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rentals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rentals, id)
	return nil
}

func (f *fakeRentalRepo) customerBookedLocked(customerID, excludeID uint) bool {
	for _, r := range f.rentals {
		if r.CustomerID == customerID && r.ID != excludeID {
			return true
		}
	}
	return false
}

func date(s string) utils.DateOnly {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return utils.DateOnly{Time: t}
}

func TestCreateRental(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	rental, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID:    5,
		CustomerID: 1,
		Date:       date("2025-01-10"),
		Price:      100.0,
	})

	assert.NoError(t, err)
	assert.NotZero(t, rental.ID)
	assert.Equal(t, uint(5), rental.CourtID)
	assert.Equal(t, uint(1), rental.CustomerID)
	assert.Equal(t, "2025-01-10", rental.Date.String())
	assert.Equal(t, 100.0, rental.Price)

	fetched, err := svc.Get(context.Background(), rental.ID)
	assert.NoError(t, err)
	assert.Equal(t, rental.CourtID, fetched.CourtID)
	assert.Equal(t, rental.CustomerID, fetched.CustomerID)
	assert.True(t, rental.Date.Equal(fetched.Date))
	assert.Equal(t, rental.Price, fetched.Price)
}

func TestCreateRentalSecondBookingRefused(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalSvc(repo)

	_, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
	})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 6, CustomerID: 1, Date: date("2025-01-11"), Price: 80.0,
	})
	assert.True(t, errors.Is(err, repository.ErrAlreadyBooked))

	rentals, err := svc.All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
}

// admissionBlindRepo always reports the customer as free, so every concurrent
// caller passes the read check and the uniqueness constraint alone must decide
// the winner. This is the race the store-level mechanism exists to close.
type admissionBlindRepo struct {
	*fakeRentalRepo
}

func (r *admissionBlindRepo) HasRentalForCustomer(ctx context.Context, customerID uint) (bool, error) {
	return false, nil
}

func TestCreateRentalConcurrentSingleWinner(t *testing.T) {
	svc := NewRentalSvc(&admissionBlindRepo{newFakeRentalRepo()})

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), model.CreateRentalInput{
				CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, refused int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, repository.ErrAlreadyBooked):
			refused++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, refused)

	rentals, err := svc.All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestUpdateRentalSurcharge(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	rental, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
	})
	assert.NoError(t, err)

	// Same date: no surcharge.
	updated, err := svc.Update(context.Background(), rental.ID, model.EditRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, updated.Price)

	// Rescheduled: one surcharge.
	updated, err = svc.Update(context.Background(), rental.ID, model.EditRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-12"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)

	// Back to the original date: the surcharge accumulates, it is not undone.
	updated, err = svc.Update(context.Background(), rental.ID, model.EditRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 200.0, updated.Price)
}

func TestUpdateRentalClientPriceIgnored(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	rental, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
	})
	assert.NoError(t, err)

	updated, err := svc.Update(context.Background(), rental.ID, model.EditRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 1.0,
	})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, updated.Price)
}

func TestUpdateRentalToBookedCustomerRefused(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	_, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
	})
	assert.NoError(t, err)
	second, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 6, CustomerID: 2, Date: date("2025-01-11"), Price: 80.0,
	})
	assert.NoError(t, err)

	// Reassigning the second rental to customer 1 would give them two
	// rentals, so the uniqueness constraint refuses it.
	_, err = svc.Update(context.Background(), second.ID, model.EditRentalInput{
		CourtID: 6, CustomerID: 1, Date: date("2025-01-11"),
	})
	assert.True(t, errors.Is(err, repository.ErrAlreadyBooked))

	kept, err := svc.Get(context.Background(), second.ID)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), kept.CustomerID)
	assert.Equal(t, 80.0, kept.Price)

	// Keeping its own customer is not a conflict with itself.
	updated, err := svc.Update(context.Background(), second.ID, model.EditRentalInput{
		CourtID: 6, CustomerID: 2, Date: date("2025-01-11"),
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), updated.CustomerID)
}

func TestUpdateRentalNotFound(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	_, err := svc.Update(context.Background(), 42, model.EditRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"),
	})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDeleteRental(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	rental, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), rental.ID))

	_, err = svc.Get(context.Background(), rental.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// The customer is free to book again once the rental is gone.
	_, err = svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 6, CustomerID: 1, Date: date("2025-02-01"), Price: 90.0,
	})
	assert.NoError(t, err)
}

func TestDeleteRentalNotFound(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())
	err := svc.Delete(context.Background(), 42)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestRentalsByCourt(t *testing.T) {
	svc := NewRentalSvc(newFakeRentalRepo())

	_, err := svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 1, Date: date("2025-01-10"), Price: 100.0,
	})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 5, CustomerID: 2, Date: date("2025-01-11"), Price: 100.0,
	})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), model.CreateRentalInput{
		CourtID: 9, CustomerID: 3, Date: date("2025-01-11"), Price: 100.0,
	})
	assert.NoError(t, err)

	rentals, err := svc.ByCourt(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, rentals, 2)
	for _, r := range rentals {
		assert.Equal(t, uint(5), r.CourtID)
	}
}
