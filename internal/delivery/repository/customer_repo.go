package repository

import (
	"context"
	"errors"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"gorm.io/gorm"
)

// CustomerRepository persists customers.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindAll lists customers, optionally filtered by name substring.
func (r *CustomerRepository) FindAll(ctx context.Context, page, pageSize int, search string) ([]entity.Customer, int64, error) {
	var items []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})
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

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountActiveOrders counts customer orders in any of the given
// statuses.
func (r *CustomerRepository) CountActiveOrders(ctx context.Context, customerID string, statuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CustomerOrder{}).
		Where("customer_id = ? AND status IN ?", customerID, statuses).
		Count(&count).Error
	return count, err
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}
