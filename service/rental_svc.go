package service

import (
	"context"

	"court_manager/model"
	"court_manager/repository"

	"github.com/jinzhu/copier"
)

type RentalRepository interface {
	All(ctx context.Context) (model.Rentals, error)
	ByID(ctx context.Context, id uint) (*model.Rental, error)
	ByCourtID(ctx context.Context, courtID uint) (model.Rentals, error)
	HasRentalForCustomer(ctx context.Context, customerID uint) (bool, error)
	Create(ctx context.Context, rental *model.Rental) error
	Update(ctx context.Context, id uint, in model.EditRentalInput) (*model.Rental, error)
	Delete(ctx context.Context, id uint) error
}

// RentalSvc is the sole write path for rentals. It runs the admission check
// before every insert and leaves pricing to the store's transactional update.
type RentalSvc struct {
	repo RentalRepository
}

func NewRentalSvc(repo RentalRepository) *RentalSvc {
	return &RentalSvc{repo: repo}
}

func (s *RentalSvc) All(ctx context.Context) (model.Rentals, error) {
	return s.repo.All(ctx)
}

func (s *RentalSvc) Get(ctx context.Context, id uint) (*model.Rental, error) {
	return s.repo.ByID(ctx, id)
}

func (s *RentalSvc) ByCourt(ctx context.Context, courtID uint) (model.Rentals, error) {
	return s.repo.ByCourtID(ctx, courtID)
}

// Create admits at most one rental per customer. A refusal writes nothing; a
// race between the check and the insert is caught by the store's unique
// constraint and reported as the same outcome.
func (s *RentalSvc) Create(ctx context.Context, in model.CreateRentalInput) (*model.Rental, error) {
	booked, err := s.repo.HasRentalForCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, repository.ErrAlreadyBooked
	}

	rental := new(model.Rental)
	copier.Copy(rental, &in)
	if err := s.repo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *RentalSvc) Update(ctx context.Context, id uint, in model.EditRentalInput) (*model.Rental, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *RentalSvc) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
