package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
)

// CustomerService manages customers.
type CustomerService struct {
	customers *repository.CustomerRepository
}

func NewCustomerService(customers *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// CreateCustomerRequest carries a new customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// UpdateCustomerRequest carries the partial update.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
}

func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.City != nil {
		customer.City = *req.City
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, page, pageSize int, search string) ([]entity.Customer, int64, error) {
	return s.customers.FindAll(ctx, page, pageSize, search)
}

// Delete removes a customer unless orders are still in preparation or
// en route.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	exists, err := s.customers.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCustomerNotFound
	}

	active, err := s.customers.CountActiveOrders(ctx, id, []string{
		entity.CustomerOrderStatusEnPreparation,
		entity.CustomerOrderStatusEnRoute,
	})
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrCustomerHasActiveOrders
	}

	return s.customers.Delete(ctx, id)
}
