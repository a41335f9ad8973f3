package repository

import (
	"context"
	"errors"
	"fmt"

	"court_manager/model"

	"gorm.io/gorm"
)

type CourtRepo struct {
	db *gorm.DB
}

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) All(ctx context.Context) (model.Courts, error) {
	var courts model.Courts
	if err := r.db.WithContext(ctx).Find(&courts).Error; err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	return courts, nil
}

func (r *CourtRepo) ByID(ctx context.Context, id uint) (*model.Court, error) {
	var court model.Court
	if err := r.db.WithContext(ctx).First(&court, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get court %d: %w", id, err)
	}
	return &court, nil
}

func (r *CourtRepo) Create(ctx context.Context, court *model.Court) error {
	if err := r.db.WithContext(ctx).Create(court).Error; err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}
	return nil
}

// Update replaces the court attributes under the existing id; write and
// read-back share one transaction.
func (r *CourtRepo) Update(ctx context.Context, court *model.Court) (*model.Court, error) {
	var updated model.Court
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Court{}).
			Where("id = ?", court.ID).
			Updates(map[string]interface{}{"coverage": court.Coverage, "size": court.Size, "price": court.Price})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&updated, court.ID).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update court %d: %w", court.ID, err)
	}
	return &updated, nil
}

func (r *CourtRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Court{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return ErrInUse
		}
		return fmt.Errorf("failed to delete court %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
