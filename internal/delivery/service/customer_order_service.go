package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
	productionrepo "github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
	"gorm.io/gorm"
)

// CustomerOrderService owns the order lifecycle and the product-stock
// bookkeeping that goes with it: creation reserves stock, cancellation
// restores it, updates adjust the difference. Every stock mutation
// runs inside one transaction through the conditional stock update, so
// product stock can never be driven negative and a failed operation
// leaves nothing behind.
type CustomerOrderService struct {
	orders    *repository.CustomerOrderRepository
	customers *repository.CustomerRepository
	products  *productionrepo.ProductRepository
	db        *gorm.DB
}

func NewCustomerOrderService(
	orders *repository.CustomerOrderRepository,
	customers *repository.CustomerRepository,
	products *productionrepo.ProductRepository,
	db *gorm.DB,
) *CustomerOrderService {
	return &CustomerOrderService{
		orders:    orders,
		customers: customers,
		products:  products,
		db:        db,
	}
}

// CreateCustomerOrderRequest carries a new order.
type CreateCustomerOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	ProductID  string `json:"product_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	Status     string `json:"status"`
}

// UpdateCustomerOrderRequest carries the partial update: only non-nil
// fields overwrite the order.
type UpdateCustomerOrderRequest struct {
	CustomerID *string `json:"customer_id"`
	ProductID  *string `json:"product_id"`
	Quantity   *int    `json:"quantity"`
	Status     *string `json:"status"`
}

// Create places an order and reserves product stock.
func (s *CustomerOrderService) Create(ctx context.Context, req *CreateCustomerOrderRequest) (*entity.CustomerOrder, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productionrepo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if product.Stock < req.Quantity {
		return nil, &InsufficientStockError{
			ProductName: product.Name,
			Available:   product.Stock,
			Required:    req.Quantity,
		}
	}

	status := req.Status
	if status == "" {
		status = entity.CustomerOrderStatusEnPreparation
	}

	order := &entity.CustomerOrder{
		ID:         uuid.New().String(),
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Status:     status,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := productionrepo.NewProductRepository(tx).AdjustStock(ctx, req.ProductID, -req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost a race since the read above.
			return &InsufficientStockError{
				ProductName: product.Name,
				Available:   product.Stock,
				Required:    req.Quantity,
			}
		}
		return repository.NewCustomerOrderRepository(tx).Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return s.orders.FindByID(ctx, order.ID)
}

// Update applies a partial update. When the product changes, the old
// reservation is released before the new product is charged; a
// quantity change alone adjusts the current product by the difference.
// The whole operation is one transaction, so a failure on any step
// leaves every stock level untouched.
func (s *CustomerOrderService) Update(ctx context.Context, id string, req *UpdateCustomerOrderRequest) (*entity.CustomerOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := productionrepo.NewProductRepository(tx)
		customers := repository.NewCustomerRepository(tx)

		if req.CustomerID != nil && *req.CustomerID != order.CustomerID {
			customer, err := customers.FindByID(ctx, *req.CustomerID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return ErrCustomerNotFound
				}
				return err
			}
			order.CustomerID = customer.ID
			order.Customer = *customer
		}

		switch {
		case req.ProductID != nil && *req.ProductID != order.ProductID:
			quantity := order.Quantity
			if req.Quantity != nil {
				quantity = *req.Quantity
			}

			// Release the old product's reservation first.
			if _, err := products.AdjustStock(ctx, order.ProductID, order.Quantity); err != nil {
				return err
			}

			newProduct, err := products.FindByID(ctx, *req.ProductID)
			if err != nil {
				if errors.Is(err, productionrepo.ErrNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			if newProduct.Stock < quantity {
				return &InsufficientStockError{
					ProductName: newProduct.Name,
					Available:   newProduct.Stock,
					Required:    quantity,
				}
			}
			rows, err := products.AdjustStock(ctx, newProduct.ID, -quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return &InsufficientStockError{
					ProductName: newProduct.Name,
					Available:   newProduct.Stock,
					Required:    quantity,
				}
			}
			order.ProductID = newProduct.ID
			order.Product = *newProduct
			order.Quantity = quantity

		case req.Quantity != nil && *req.Quantity != order.Quantity:
			delta := *req.Quantity - order.Quantity
			if order.Product.Stock < delta {
				return &InsufficientStockError{
					ProductName: order.Product.Name,
					Available:   order.Product.Stock,
					Required:    delta,
				}
			}
			rows, err := products.AdjustStock(ctx, order.ProductID, -delta)
			if err != nil {
				return err
			}
			if rows == 0 {
				return &InsufficientStockError{
					ProductName: order.Product.Name,
					Available:   order.Product.Stock,
					Required:    delta,
				}
			}
			order.Quantity = *req.Quantity
		}

		if req.Status != nil {
			order.Status = *req.Status
		}

		return repository.NewCustomerOrderRepository(tx).Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return s.orders.FindByID(ctx, id)
}

// Get returns one order.
func (s *CustomerOrderService) Get(ctx context.Context, id string) (*entity.CustomerOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// List pages through orders with optional customer/status filters.
// Filtering by an unknown customer is an error, matching the lookup
// semantics of the single-customer listing.
func (s *CustomerOrderService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.CustomerOrder, int64, error) {
	if customerID := filters["customer_id"]; customerID != "" {
		exists, err := s.customers.ExistsByID(ctx, customerID)
		if err != nil {
			return nil, 0, err
		}
		if !exists {
			return nil, 0, ErrCustomerNotFound
		}
	}
	return s.orders.FindAll(ctx, page, pageSize, filters)
}

// Cancel restores the reserved stock and removes the order. Orders
// already en route or delivered cannot be cancelled.
func (s *CustomerOrderService) Cancel(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerOrderNotFound
		}
		return err
	}

	if !order.CanBeCancelled() {
		return ErrOrderCannotBeCancelled
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := productionrepo.NewProductRepository(tx).AdjustStock(ctx, order.ProductID, order.Quantity); err != nil {
			return err
		}
		return repository.NewCustomerOrderRepository(tx).Delete(ctx, id)
	})
}
