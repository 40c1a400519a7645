package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repositories groups the delivery-domain repositories.
type Repositories struct {
	Customer      *CustomerRepository
	CustomerOrder *CustomerOrderRepository
	Delivery      *DeliveryRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:      NewCustomerRepository(db),
		CustomerOrder: NewCustomerOrderRepository(db),
		Delivery:      NewDeliveryRepository(db),
	}
}
