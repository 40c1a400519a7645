package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"gorm.io/gorm"
)

// BillOfMaterialRepository persists BOM lines.
type BillOfMaterialRepository struct {
	db *gorm.DB
}

func NewBillOfMaterialRepository(db *gorm.DB) *BillOfMaterialRepository {
	return &BillOfMaterialRepository{db: db}
}

func (r *BillOfMaterialRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.BillOfMaterial, int64, error) {
	var items []entity.BillOfMaterial
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BillOfMaterial{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Material").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *BillOfMaterialRepository) FindByID(ctx context.Context, id string) (*entity.BillOfMaterial, error) {
	var bom entity.BillOfMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("id = ?", id).
		First(&bom).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bom, nil
}

func (r *BillOfMaterialRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.BillOfMaterial{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindByProduct returns every BOM line of a product with its material
// loaded. The availability check iterates this.
func (r *BillOfMaterialRepository) FindByProduct(ctx context.Context, productID string) ([]entity.BillOfMaterial, error) {
	var items []entity.BillOfMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("product_id = ?", productID).
		Find(&items).Error
	return items, err
}

// FindByProductPaginated pages through a product's BOM lines.
func (r *BillOfMaterialRepository) FindByProductPaginated(ctx context.Context, productID string, page, pageSize int) ([]entity.BillOfMaterial, int64, error) {
	var items []entity.BillOfMaterial
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BillOfMaterial{}).Where("product_id = ?", productID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Material").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *BillOfMaterialRepository) Create(ctx context.Context, bom *entity.BillOfMaterial) error {
	return r.db.WithContext(ctx).Create(bom).Error
}

func (r *BillOfMaterialRepository) Update(ctx context.Context, bom *entity.BillOfMaterial) error {
	return r.db.WithContext(ctx).Save(bom).Error
}

func (r *BillOfMaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.BillOfMaterial{}, "id = ?", id).Error
}
