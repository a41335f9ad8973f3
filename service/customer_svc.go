package service

import (
	"context"

	"court_manager/model"

	"github.com/jinzhu/copier"
)

type CustomerRepository interface {
	All(ctx context.Context) (model.Customers, error)
	ByID(ctx context.Context, id uint) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id uint) error
}

type CustomerSvc struct {
	repo CustomerRepository
}

func NewCustomerSvc(repo CustomerRepository) *CustomerSvc {
	return &CustomerSvc{repo: repo}
}

func (s *CustomerSvc) All(ctx context.Context) (model.Customers, error) {
	return s.repo.All(ctx)
}

func (s *CustomerSvc) Get(ctx context.Context, id uint) (*model.Customer, error) {
	return s.repo.ByID(ctx, id)
}

func (s *CustomerSvc) Create(ctx context.Context, in model.CreateCustomerInput) (*model.Customer, error) {
	customer := new(model.Customer)
	copier.Copy(customer, &in)
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerSvc) Update(ctx context.Context, id uint, in model.EditCustomerInput) (*model.Customer, error) {
	customer := new(model.Customer)
	copier.Copy(customer, &in)
	customer.ID = id
	return s.repo.Update(ctx, customer)
}

func (s *CustomerSvc) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
