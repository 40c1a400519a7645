package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"gorm.io/gorm"
)

// SupplyOrderRepository persists supply orders.
type SupplyOrderRepository struct {
	db *gorm.DB
}

func NewSupplyOrderRepository(db *gorm.DB) *SupplyOrderRepository {
	return &SupplyOrderRepository{db: db}
}

// FindAll lists supply orders, optionally filtered by status and
// supplier.
func (r *SupplyOrderRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.SupplyOrder, int64, error) {
	var items []entity.SupplyOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SupplyOrder{})
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Supplier").
		Preload("Materials").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *SupplyOrderRepository) FindByID(ctx context.Context, id string) (*entity.SupplyOrder, error) {
	var order entity.SupplyOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Materials").
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

func (r *SupplyOrderRepository) Create(ctx context.Context, order *entity.SupplyOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *SupplyOrderRepository) Update(ctx context.Context, order *entity.SupplyOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// ReplaceMaterials swaps the order's material set.
func (r *SupplyOrderRepository) ReplaceMaterials(ctx context.Context, order *entity.SupplyOrder, materials []entity.RawMaterial) error {
	return r.db.WithContext(ctx).Model(order).Association("Materials").Replace(materials)
}

func (r *SupplyOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.SupplyOrder{}, "id = ?", id).Error
}
