package entity

import "time"

// Production order statuses
const (
	ProductionOrderStatusEnAttente    = "EN_ATTENTE"
	ProductionOrderStatusEnProduction = "EN_PRODUCTION"
	ProductionOrderStatusTermine      = "TERMINE"
)

// Product is a finished good. Stock is the integer count of units on
// hand; customer orders reserve units by decrementing it.
type Product struct {
	ID             string  `json:"id" gorm:"primaryKey;size:36"`
	Name           string  `json:"name" gorm:"size:200;uniqueIndex;not null"`
	ProductionTime *int    `json:"production_time"` // hours per unit
	Cost           float64 `json:"cost" gorm:"type:decimal(12,2);not null;default:0"`
	Stock          int     `json:"stock" gorm:"not null;default:0"`

	BillOfMaterials  []BillOfMaterial  `json:"bill_of_materials,omitempty" gorm:"foreignKey:ProductID"`
	ProductionOrders []ProductionOrder `json:"production_orders,omitempty" gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
