package entity

import (
	"time"

	production "github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
)

// CustomerOrder reserves product stock for a customer. The reserved
// quantity stays deducted from the product's stock for the lifetime of
// the order; cancelling restores exactly that quantity.
type CustomerOrder struct {
	ID         string             `json:"id" gorm:"primaryKey;size:36"`
	CustomerID string             `json:"customer_id" gorm:"size:36;not null;index"`
	Customer   Customer           `json:"customer" gorm:"foreignKey:CustomerID"`
	ProductID  string             `json:"product_id" gorm:"size:36;not null;index"`
	Product    production.Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity   int                `json:"quantity" gorm:"not null"`
	Status     string             `json:"status" gorm:"size:20;not null;default:EN_PREPARATION"`

	Delivery *Delivery `json:"delivery,omitempty" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerOrder) TableName() string {
	return "customer_orders"
}

// CanBeCancelled reports whether the order may still be cancelled.
// Orders already on the road or delivered cannot.
func (o *CustomerOrder) CanBeCancelled() bool {
	return o.Status != CustomerOrderStatusEnRoute && o.Status != CustomerOrderStatusLivree
}
