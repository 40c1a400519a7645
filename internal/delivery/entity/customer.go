package entity

import "time"

// Customer order statuses
const (
	CustomerOrderStatusEnPreparation = "EN_PREPARATION"
	CustomerOrderStatusEnRoute       = "EN_ROUTE"
	CustomerOrderStatusLivree        = "LIVREE"
)

// Delivery statuses
const (
	DeliveryStatusPlanifiee = "PLANIFIEE"
	DeliveryStatusEnCours   = "EN_COURS"
	DeliveryStatusLivree    = "LIVREE"
)

// Customer is a buyer of finished products.
type Customer struct {
	ID      string `json:"id" gorm:"primaryKey;size:36"`
	Name    string `json:"name" gorm:"size:200;not null"`
	Address string `json:"address" gorm:"size:500"`
	City    string `json:"city" gorm:"size:100"`

	Orders []CustomerOrder `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
