package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
)

// ProductionOrderService manages production orders. Creation is gated
// on the BOM availability check but does not reserve raw-material
// stock: the check is a feasibility gate only.
type ProductionOrderService struct {
	orders   *repository.ProductionOrderRepository
	products *repository.ProductRepository
	boms     *BOMService
}

func NewProductionOrderService(
	orders *repository.ProductionOrderRepository,
	products *repository.ProductRepository,
	boms *BOMService,
) *ProductionOrderService {
	return &ProductionOrderService{
		orders:   orders,
		products: products,
		boms:     boms,
	}
}

// CreateProductionOrderRequest carries a new production order.
type CreateProductionOrderRequest struct {
	ProductID  string     `json:"product_id" binding:"required"`
	Quantity   int        `json:"quantity" binding:"required,gt=0"`
	Status     string     `json:"status"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	IsPriority *bool      `json:"is_priority"`
}

// UpdateProductionOrderRequest carries the partial update.
type UpdateProductionOrderRequest struct {
	Quantity   *int       `json:"quantity"`
	Status     *string    `json:"status"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	IsPriority *bool      `json:"is_priority"`
}

// Create validates the product and the material availability for the
// requested quantity, then persists the order.
func (s *ProductionOrderService) Create(ctx context.Context, req *CreateProductionOrderRequest) (*entity.ProductionOrder, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	available, err := s.boms.CheckAvailability(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !available {
		shortages, err := s.boms.MissingMaterials(ctx, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		return nil, &InsufficientMaterialsError{ProductID: req.ProductID, Shortages: shortages}
	}

	status := req.Status
	if status == "" {
		status = entity.ProductionOrderStatusEnAttente
	}
	isPriority := false
	if req.IsPriority != nil {
		isPriority = *req.IsPriority
	}

	order := &entity.ProductionOrder{
		ID:         uuid.New().String(),
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Status:     status,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		IsPriority: isPriority,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, order.ID)
}

func (s *ProductionOrderService) Update(ctx context.Context, id string, req *UpdateProductionOrderRequest) (*entity.ProductionOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductionOrderNotFound
		}
		return nil, err
	}

	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.StartDate != nil {
		order.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		order.EndDate = req.EndDate
	}
	if req.IsPriority != nil {
		order.IsPriority = *req.IsPriority
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the order status directly.
func (s *ProductionOrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.ProductionOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductionOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns one production order with its current material
// availability.
func (s *ProductionOrderService) Get(ctx context.Context, id string) (*entity.ProductionOrder, bool, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrProductionOrderNotFound
		}
		return nil, false, err
	}

	available, err := s.boms.CheckAvailability(ctx, order.ProductID, order.Quantity)
	if err != nil {
		return nil, false, err
	}
	return order, available, nil
}

// List pages through production orders with optional status, product
// and priority filters.
func (s *ProductionOrderService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.ProductionOrder, int64, error) {
	if productID := filters["product_id"]; productID != "" {
		exists, err := s.products.ExistsByID(ctx, productID)
		if err != nil {
			return nil, 0, err
		}
		if !exists {
			return nil, 0, ErrProductNotFound
		}
	}
	return s.orders.FindAll(ctx, page, pageSize, filters)
}

// Cancel removes an order while it is still waiting.
func (s *ProductionOrderService) Cancel(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductionOrderNotFound
		}
		return err
	}

	if !order.CanBeCancelled() {
		return ErrProductionOrderCannotBeCancelled
	}

	return s.orders.Delete(ctx, id)
}

// EstimateTime returns production_time * quantity in hours, or nil
// when the product has no configured production time.
func (s *ProductionOrderService) EstimateTime(ctx context.Context, productID string, quantity int) (*int, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if product.ProductionTime == nil {
		return nil, nil
	}
	estimate := *product.ProductionTime * quantity
	return &estimate, nil
}
