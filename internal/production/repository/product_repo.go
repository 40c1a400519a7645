package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"gorm.io/gorm"
)

// ProductRepository persists products and owns the conditional stock
// update every writer of product stock must go through.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll lists products, optionally filtered by name substring.
func (r *ProductRepository) FindAll(ctx context.Context, page, pageSize int, search string) ([]entity.Product, int64, error) {
	var items []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})
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

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// AdjustStock applies delta to the product's stock with a guard that
// keeps the resulting stock non-negative. It returns the number of
// rows updated: zero means the product is missing or the decrement
// would have driven stock below zero, and nothing was written.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	return result.RowsAffected, result.Error
}

// CountActiveProductionOrders counts production orders for the product
// in any of the given statuses.
func (r *ProductRepository) CountActiveProductionOrders(ctx context.Context, productID string, statuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ProductionOrder{}).
		Where("product_id = ? AND status IN ?", productID, statuses).
		Count(&count).Error
	return count, err
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}
