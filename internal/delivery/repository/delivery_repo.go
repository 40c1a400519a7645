package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"gorm.io/gorm"
)

// DeliveryRepository persists deliveries.
type DeliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// FindAll lists deliveries, optionally filtered by status.
func (r *DeliveryRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.Delivery, int64, error) {
	var items []entity.Delivery
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Delivery{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Order").
		Preload("Order.Customer").
		Preload("Order.Product").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	err := r.db.WithContext(ctx).
		Preload("Order").
		Preload("Order.Customer").
		Preload("Order.Product").
		Where("id = ?", id).
		First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindByOrderID returns the delivery attached to a customer order.
func (r *DeliveryRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	err := r.db.WithContext(ctx).
		Preload("Order").
		Preload("Order.Customer").
		Preload("Order.Product").
		Where("order_id = ?", orderID).
		First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *DeliveryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Delivery{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DeliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	return r.db.WithContext(ctx).Create(delivery).Error
}

func (r *DeliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	return r.db.WithContext(ctx).Save(delivery).Error
}

func (r *DeliveryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Delivery{}, "id = ?", id).Error
}
