package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"gorm.io/gorm"
)

// SupplierRepository persists suppliers.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// FindAll lists suppliers, optionally filtered by name substring.
func (r *SupplierRepository) FindAll(ctx context.Context, page, pageSize int, search string) ([]entity.Supplier, int64, error) {
	var items []entity.Supplier
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Supplier{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Supplier{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountActiveOrders counts supply orders for the supplier in any of
// the given statuses.
func (r *SupplierRepository) CountActiveOrders(ctx context.Context, supplierID string, statuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.SupplyOrder{}).
		Where("supplier_id = ? AND status IN ?", supplierID, statuses).
		Count(&count).Error
	return count, err
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Supplier{}, "id = ?", id).Error
}
