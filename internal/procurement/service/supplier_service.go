package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
)

// SupplierService manages suppliers.
type SupplierService struct {
	suppliers *repository.SupplierRepository
}

func NewSupplierService(suppliers *repository.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// CreateSupplierRequest carries a new supplier.
type CreateSupplierRequest struct {
	Name     string   `json:"name" binding:"required"`
	Contact  string   `json:"contact"`
	Rating   *float64 `json:"rating"`
	LeadTime *int     `json:"lead_time"`
}

// UpdateSupplierRequest carries the partial update.
type UpdateSupplierRequest struct {
	Name     *string  `json:"name"`
	Contact  *string  `json:"contact"`
	Rating   *float64 `json:"rating"`
	LeadTime *int     `json:"lead_time"`
}

func (s *SupplierService) Create(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Contact:  req.Contact,
		Rating:   req.Rating,
		LeadTime: req.LeadTime,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, id string, req *UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Contact != nil {
		supplier.Contact = *req.Contact
	}
	if req.Rating != nil {
		supplier.Rating = req.Rating
	}
	if req.LeadTime != nil {
		supplier.LeadTime = req.LeadTime
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) List(ctx context.Context, page, pageSize int, search string) ([]entity.Supplier, int64, error) {
	return s.suppliers.FindAll(ctx, page, pageSize, search)
}

// Delete removes a supplier unless supply orders are still pending or
// in progress.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	exists, err := s.suppliers.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSupplierNotFound
	}

	active, err := s.suppliers.CountActiveOrders(ctx, id, []string{
		entity.SupplyOrderStatusEnAttente,
		entity.SupplyOrderStatusEnCours,
	})
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrSupplierHasActiveOrders
	}

	return s.suppliers.Delete(ctx, id)
}
