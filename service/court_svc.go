package service

import (
	"context"

	"court_manager/model"

	"github.com/jinzhu/copier"
)

type CourtRepository interface {
	All(ctx context.Context) (model.Courts, error)
	ByID(ctx context.Context, id uint) (*model.Court, error)
	Create(ctx context.Context, court *model.Court) error
	Update(ctx context.Context, court *model.Court) (*model.Court, error)
	Delete(ctx context.Context, id uint) error
}

type CourtSvc struct {
	repo CourtRepository
}

func NewCourtSvc(repo CourtRepository) *CourtSvc {
	return &CourtSvc{repo: repo}
}

func (s *CourtSvc) All(ctx context.Context) (model.Courts, error) {
	return s.repo.All(ctx)
}

func (s *CourtSvc) Get(ctx context.Context, id uint) (*model.Court, error) {
	return s.repo.ByID(ctx, id)
}

func (s *CourtSvc) Create(ctx context.Context, in model.CreateCourtInput) (*model.Court, error) {
	court := new(model.Court)
	copier.Copy(court, &in)
	if err := s.repo.Create(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

func (s *CourtSvc) Update(ctx context.Context, id uint, in model.EditCourtInput) (*model.Court, error) {
	court := new(model.Court)
	copier.Copy(court, &in)
	court.ID = id
	return s.repo.Update(ctx, court)
}

func (s *CourtSvc) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
