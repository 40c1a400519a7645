package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryService manages shipments and keeps the linked customer
// order's status in step with the delivery's.
type DeliveryService struct {
	deliveries *repository.DeliveryRepository
	orders     *repository.CustomerOrderRepository
	db         *gorm.DB
}

func NewDeliveryService(
	deliveries *repository.DeliveryRepository,
	orders *repository.CustomerOrderRepository,
	db *gorm.DB,
) *DeliveryService {
	return &DeliveryService{
		deliveries: deliveries,
		orders:     orders,
		db:         db,
	}
}

// CreateDeliveryRequest carries a new delivery.
type CreateDeliveryRequest struct {
	OrderID      string     `json:"order_id" binding:"required"`
	Vehicle      string     `json:"vehicle"`
	Driver       string     `json:"driver"`
	Status       string     `json:"status"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Cost         *float64   `json:"cost"`
}

// UpdateDeliveryRequest carries the partial update: only non-nil
// fields overwrite the delivery.
type UpdateDeliveryRequest struct {
	Vehicle      *string    `json:"vehicle"`
	Driver       *string    `json:"driver"`
	Status       *string    `json:"status"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Cost         *float64   `json:"cost"`
}

// Create attaches a delivery to a customer order. An unset or zero
// cost defaults to the computed fee, and an order still in preparation
// moves to EN_ROUTE.
func (s *DeliveryService) Create(ctx context.Context, req *CreateDeliveryRequest) (*entity.Delivery, error) {
	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, err
	}

	if _, err := s.deliveries.FindByOrderID(ctx, order.ID); err == nil {
		return nil, ErrDeliveryAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.DeliveryStatusPlanifiee
	}

	cost := 0.0
	if req.Cost != nil {
		cost = *req.Cost
	}
	if cost == 0 {
		cost = deliveryCost(order.Product.Cost, order.Quantity)
	}

	delivery := &entity.Delivery{
		ID:           uuid.New().String(),
		OrderID:      order.ID,
		Vehicle:      req.Vehicle,
		Driver:       req.Driver,
		Status:       status,
		DeliveryDate: req.DeliveryDate,
		Cost:         cost,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Status == entity.CustomerOrderStatusEnPreparation {
			order.Status = entity.CustomerOrderStatusEnRoute
			if err := repository.NewCustomerOrderRepository(tx).Update(ctx, order); err != nil {
				return err
			}
		}
		return repository.NewDeliveryRepository(tx).Create(ctx, delivery)
	})
	if err != nil {
		return nil, err
	}

	return s.deliveries.FindByID(ctx, delivery.ID)
}

// Update applies a partial update. Setting the delivery status to
// LIVREE marks the order delivered; EN_COURS puts the order back en
// route. Other statuses leave the order alone.
func (s *DeliveryService) Update(ctx context.Context, id string, req *UpdateDeliveryRequest) (*entity.Delivery, error) {
	delivery, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, err
	}

	if req.Vehicle != nil {
		delivery.Vehicle = *req.Vehicle
	}
	if req.Driver != nil {
		delivery.Driver = *req.Driver
	}
	if req.DeliveryDate != nil {
		delivery.DeliveryDate = req.DeliveryDate
	}
	if req.Cost != nil {
		delivery.Cost = *req.Cost
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Status != nil {
			delivery.Status = *req.Status

			var orderStatus string
			switch *req.Status {
			case entity.DeliveryStatusLivree:
				orderStatus = entity.CustomerOrderStatusLivree
			case entity.DeliveryStatusEnCours:
				orderStatus = entity.CustomerOrderStatusEnRoute
			}
			if orderStatus != "" {
				order := delivery.Order
				order.Status = orderStatus
				if err := repository.NewCustomerOrderRepository(tx).Update(ctx, &order); err != nil {
					return err
				}
			}
		}
		return repository.NewDeliveryRepository(tx).Update(ctx, delivery)
	})
	if err != nil {
		return nil, err
	}

	return s.deliveries.FindByID(ctx, id)
}

// Get returns one delivery.
func (s *DeliveryService) Get(ctx context.Context, id string) (*entity.Delivery, error) {
	delivery, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, err
	}
	return delivery, nil
}

// GetByOrder returns the delivery attached to a customer order.
func (s *DeliveryService) GetByOrder(ctx context.Context, orderID string) (*entity.Delivery, error) {
	delivery, err := s.deliveries.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, err
	}
	return delivery, nil
}

// List pages through deliveries with an optional status filter.
func (s *DeliveryService) List(ctx context.Context, page, pageSize int, status string) ([]entity.Delivery, int64, error) {
	return s.deliveries.FindAll(ctx, page, pageSize, status)
}

// CalculateCost recomputes the delivery cost from the linked order's
// current product cost and quantity, persists it and returns it.
func (s *DeliveryService) CalculateCost(ctx context.Context, id string) (float64, error) {
	delivery, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrDeliveryNotFound
		}
		return 0, err
	}

	cost := deliveryCost(delivery.Order.Product.Cost, delivery.Order.Quantity)
	delivery.Cost = cost
	if err := s.deliveries.Update(ctx, delivery); err != nil {
		return 0, err
	}
	return cost, nil
}

// Delete removes a delivery.
func (s *DeliveryService) Delete(ctx context.Context, id string) error {
	exists, err := s.deliveries.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDeliveryNotFound
	}
	return s.deliveries.Delete(ctx, id)
}

// deliveryCost is the flat base fee plus 10% of the order's product
// value, rounded half-up to the cent.
func deliveryCost(unitCost float64, quantity int) float64 {
	cost := decimal.NewFromFloat(50.0).
		Add(decimal.NewFromFloat(unitCost).
			Mul(decimal.NewFromInt(int64(quantity))).
			Mul(decimal.NewFromFloat(0.1)))
	v, _ := cost.Round(2).Float64()
	return v
}
