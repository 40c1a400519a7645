package entity

import "time"

// Delivery is the single shipment attached to a customer order.
type Delivery struct {
	ID      string        `json:"id" gorm:"primaryKey;size:36"`
	OrderID string        `json:"order_id" gorm:"size:36;not null;uniqueIndex"`
	Order   CustomerOrder `json:"order,omitempty" gorm:"foreignKey:OrderID"`

	Vehicle      string     `json:"vehicle" gorm:"size:100"`
	Driver       string     `json:"driver" gorm:"size:200"`
	Status       string     `json:"status" gorm:"size:20;not null;default:PLANIFIEE"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Cost         float64    `json:"cost" gorm:"type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Delivery) TableName() string {
	return "deliveries"
}
