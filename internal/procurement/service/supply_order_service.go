package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
)

// SupplyOrderService manages replenishment orders.
type SupplyOrderService struct {
	orders    *repository.SupplyOrderRepository
	suppliers *repository.SupplierRepository
	materials *repository.RawMaterialRepository
}

func NewSupplyOrderService(
	orders *repository.SupplyOrderRepository,
	suppliers *repository.SupplierRepository,
	materials *repository.RawMaterialRepository,
) *SupplyOrderService {
	return &SupplyOrderService{
		orders:    orders,
		suppliers: suppliers,
		materials: materials,
	}
}

// CreateSupplyOrderRequest carries a new supply order.
type CreateSupplyOrderRequest struct {
	SupplierID           string     `json:"supplier_id" binding:"required"`
	MaterialIDs          []string   `json:"material_ids" binding:"required,min=1"`
	OrderDate            *time.Time `json:"order_date"`
	Status               string     `json:"status"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
}

// UpdateSupplyOrderRequest carries the partial update. A non-empty
// MaterialIDs replaces the whole material set.
type UpdateSupplyOrderRequest struct {
	SupplierID           *string    `json:"supplier_id"`
	MaterialIDs          []string   `json:"material_ids"`
	OrderDate            *time.Time `json:"order_date"`
	Status               *string    `json:"status"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
}

func (s *SupplyOrderService) Create(ctx context.Context, req *CreateSupplyOrderRequest) (*entity.SupplyOrder, error) {
	if _, err := s.suppliers.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	materials, err := s.resolveMaterials(ctx, req.MaterialIDs)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.SupplyOrderStatusEnAttente
	}

	order := &entity.SupplyOrder{
		ID:                   uuid.New().String(),
		SupplierID:           req.SupplierID,
		Materials:            materials,
		OrderDate:            req.OrderDate,
		Status:               status,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, order.ID)
}

func (s *SupplyOrderService) Update(ctx context.Context, id string, req *UpdateSupplyOrderRequest) (*entity.SupplyOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplyOrderNotFound
		}
		return nil, err
	}

	if req.SupplierID != nil && *req.SupplierID != order.SupplierID {
		supplier, err := s.suppliers.FindByID(ctx, *req.SupplierID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, err
		}
		order.SupplierID = supplier.ID
		order.Supplier = *supplier
	}

	if req.OrderDate != nil {
		order.OrderDate = req.OrderDate
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = req.ExpectedDeliveryDate
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	if len(req.MaterialIDs) > 0 {
		materials, err := s.resolveMaterials(ctx, req.MaterialIDs)
		if err != nil {
			return nil, err
		}
		if err := s.orders.ReplaceMaterials(ctx, order, materials); err != nil {
			return nil, err
		}
	}

	return s.orders.FindByID(ctx, id)
}

func (s *SupplyOrderService) Get(ctx context.Context, id string) (*entity.SupplyOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplyOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// List pages through supply orders with optional status/supplier
// filters.
func (s *SupplyOrderService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.SupplyOrder, int64, error) {
	if supplierID := filters["supplier_id"]; supplierID != "" {
		exists, err := s.suppliers.ExistsByID(ctx, supplierID)
		if err != nil {
			return nil, 0, err
		}
		if !exists {
			return nil, 0, ErrSupplierNotFound
		}
	}
	return s.orders.FindAll(ctx, page, pageSize, filters)
}

// UpdateStatus sets the order status directly.
func (s *SupplyOrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.SupplyOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplyOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an order, allowed only while it is still pending.
func (s *SupplyOrderService) Delete(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSupplyOrderNotFound
		}
		return err
	}

	if !order.CanBeDeleted() {
		return ErrSupplyOrderCannotBeDeleted
	}

	return s.orders.Delete(ctx, id)
}

func (s *SupplyOrderService) resolveMaterials(ctx context.Context, ids []string) ([]entity.RawMaterial, error) {
	var materials []entity.RawMaterial
	for _, id := range ids {
		material, err := s.materials.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrRawMaterialNotFound
			}
			return nil, err
		}
		materials = append(materials, *material)
	}
	return materials, nil
}
