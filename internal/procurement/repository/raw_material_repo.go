package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"gorm.io/gorm"
)

// RawMaterialRepository persists raw materials and their supplier
// associations.
type RawMaterialRepository struct {
	db *gorm.DB
}

func NewRawMaterialRepository(db *gorm.DB) *RawMaterialRepository {
	return &RawMaterialRepository{db: db}
}

// FindAll lists materials, optionally filtered by name substring.
func (r *RawMaterialRepository) FindAll(ctx context.Context, page, pageSize int, search string) ([]entity.RawMaterial, int64, error) {
	var items []entity.RawMaterial
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RawMaterial{})
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

func (r *RawMaterialRepository) FindByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	var material entity.RawMaterial
	err := r.db.WithContext(ctx).
		Preload("Suppliers").
		Where("id = ?", id).
		First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

func (r *RawMaterialRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.RawMaterial{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindBelowMinimum pages through materials whose stock is under their
// reorder threshold.
func (r *RawMaterialRepository) FindBelowMinimum(ctx context.Context, page, pageSize int) ([]entity.RawMaterial, int64, error) {
	var items []entity.RawMaterial
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RawMaterial{}).Where("stock < stock_min")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindAllBelowMinimum returns every material under threshold, for the
// low-stock scan.
func (r *RawMaterialRepository) FindAllBelowMinimum(ctx context.Context) ([]entity.RawMaterial, error) {
	var items []entity.RawMaterial
	err := r.db.WithContext(ctx).
		Where("stock < stock_min").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *RawMaterialRepository) Create(ctx context.Context, material *entity.RawMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *RawMaterialRepository) Update(ctx context.Context, material *entity.RawMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// ReplaceSuppliers swaps the material's supplier set.
func (r *RawMaterialRepository) ReplaceSuppliers(ctx context.Context, material *entity.RawMaterial, suppliers []entity.Supplier) error {
	return r.db.WithContext(ctx).Model(material).Association("Suppliers").Replace(suppliers)
}

func (r *RawMaterialRepository) AddSupplier(ctx context.Context, material *entity.RawMaterial, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Model(material).Association("Suppliers").Append(supplier)
}

func (r *RawMaterialRepository) RemoveSupplier(ctx context.Context, material *entity.RawMaterial, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Model(material).Association("Suppliers").Delete(supplier)
}

func (r *RawMaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.RawMaterial{}, "id = ?", id).Error
}
