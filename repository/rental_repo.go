package repository

import (
	"context"
	"errors"
	"fmt"

	"court_manager/helper"
	"court_manager/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RentalRepo struct {
	db *gorm.DB
}

func NewRentalRepo(db *gorm.DB) *RentalRepo {
	return &RentalRepo{db: db}
}

func (r *RentalRepo) All(ctx context.Context) (model.Rentals, error) {
	var rentals model.Rentals
	if err := r.db.WithContext(ctx).Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

func (r *RentalRepo) ByID(ctx context.Context, id uint) (*model.Rental, error) {
	var rental model.Rental
	if err := r.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rental %d: %w", id, err)
	}
	return &rental, nil
}

func (r *RentalRepo) ByCourtID(ctx context.Context, courtID uint) (model.Rentals, error) {
	var rentals model.Rentals
	if err := r.db.WithContext(ctx).Where("court_id = ?", courtID).Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals for court %d: %w", courtID, err)
	}
	return rentals, nil
}

// HasRentalForCustomer is the admission read check: true when the customer
// already holds a rental row.
func (r *RentalRepo) HasRentalForCustomer(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Rental{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count rentals for customer %d: %w", customerID, err)
	}
	return count > 0, nil
}

// Create inserts the row with the supplied base price. A concurrent insert for
// the same customer loses to the unique index on customer_id rather than
// slipping past the admission check.
func (r *RentalRepo) Create(ctx context.Context, rental *model.Rental) error {
	if err := r.db.WithContext(ctx).Create(rental).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyBooked
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrForeignKey
		}
		return fmt.Errorf("failed to create rental: %w", err)
	}
	return nil
}

// Update runs in a transaction: the existing row is locked so the price
// lookup and the price write cannot interleave with a concurrent update. The
// persisted price is derived from the stored one; whatever price the request
// carried never lands in the row.
func (r *RentalRepo) Update(ctx context.Context, id uint, in model.EditRentalInput) (*model.Rental, error) {
	var rental model.Rental
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rental, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		rental.Price = helper.FinalPrice(rental.Price, rental.Date, in.Date)
		rental.CourtID = in.CourtID
		rental.CustomerID = in.CustomerID
		rental.Date = in.Date

		if err := tx.Save(&rental).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBooked
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrForeignKey
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyBooked) || errors.Is(err, ErrForeignKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update rental %d: %w", id, err)
	}
	return &rental, nil
}

// Delete always succeeds for an existing rental; nothing references rentals in
// the current schema, but a violation from the store is still surfaced rather
// than swallowed.
func (r *RentalRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Rental{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return ErrInUse
		}
		return fmt.Errorf("failed to delete rental %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
