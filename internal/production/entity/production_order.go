package entity

import "time"

// ProductionOrder is a request to manufacture a quantity of a product.
// Creation only checks material availability; it does not reserve
// raw-material stock.
type ProductionOrder struct {
	ID        string  `json:"id" gorm:"primaryKey;size:36"`
	ProductID string  `json:"product_id" gorm:"size:36;not null;index"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Status    string  `json:"status" gorm:"size:20;not null;default:EN_ATTENTE"`

	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	IsPriority bool       `json:"is_priority" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductionOrder) TableName() string {
	return "production_orders"
}

// CanBeCancelled reports whether the order is still waiting and may be
// removed.
func (o *ProductionOrder) CanBeCancelled() bool {
	return o.Status == ProductionOrderStatusEnAttente
}

// IsActive reports whether the order still ties up the product
// (waiting or in production).
func (o *ProductionOrder) IsActive() bool {
	return o.Status == ProductionOrderStatusEnAttente || o.Status == ProductionOrderStatusEnProduction
}
