package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"gorm.io/gorm"
)

// ProductionOrderRepository persists production orders.
type ProductionOrderRepository struct {
	db *gorm.DB
}

func NewProductionOrderRepository(db *gorm.DB) *ProductionOrderRepository {
	return &ProductionOrderRepository{db: db}
}

// FindAll lists production orders, optionally filtered by status,
// product and priority flag.
func (r *ProductionOrderRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.ProductionOrder, int64, error) {
	var items []entity.ProductionOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ProductionOrder{})
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if productID := filters["product_id"]; productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	if priority := filters["priority"]; priority == "true" {
		query = query.Where("is_priority = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *ProductionOrderRepository) FindByID(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	var order entity.ProductionOrder
	err := r.db.WithContext(ctx).
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

func (r *ProductionOrderRepository) Create(ctx context.Context, order *entity.ProductionOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *ProductionOrderRepository) Update(ctx context.Context, order *entity.ProductionOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *ProductionOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.ProductionOrder{}, "id = ?", id).Error
}
