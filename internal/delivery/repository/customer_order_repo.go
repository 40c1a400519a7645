package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"gorm.io/gorm"
)

// CustomerOrderRepository persists customer orders.
type CustomerOrderRepository struct {
	db *gorm.DB
}

func NewCustomerOrderRepository(db *gorm.DB) *CustomerOrderRepository {
	return &CustomerOrderRepository{db: db}
}

// FindAll lists customer orders, optionally filtered by customer and
// status.
func (r *CustomerOrderRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.CustomerOrder, int64, error) {
	var items []entity.CustomerOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CustomerOrder{})
	if customerID := filters["customer_id"]; customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Customer").
		Preload("Product").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *CustomerOrderRepository) FindByID(ctx context.Context, id string) (*entity.CustomerOrder, error) {
	var order entity.CustomerOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *CustomerOrderRepository) Create(ctx context.Context, order *entity.CustomerOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *CustomerOrderRepository) Update(ctx context.Context, order *entity.CustomerOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *CustomerOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.CustomerOrder{}, "id = ?", id).Error
}
