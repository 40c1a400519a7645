package entity

import "time"

// SupplyOrder is a replenishment order placed with a supplier for a
// set of raw materials.
type SupplyOrder struct {
	ID         string   `json:"id" gorm:"primaryKey;size:36"`
	SupplierID string   `json:"supplier_id" gorm:"size:36;not null;index"`
	Supplier   Supplier `json:"supplier" gorm:"foreignKey:SupplierID"`

	Materials []RawMaterial `json:"materials" gorm:"many2many:supply_order_materials"`

	OrderDate            *time.Time `json:"order_date"`
	Status               string     `json:"status" gorm:"size:20;not null;default:EN_ATTENTE"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SupplyOrder) TableName() string {
	return "supply_orders"
}

// CanBeDeleted reports whether the order may still be removed. Only
// orders that have not started processing qualify.
func (o *SupplyOrder) CanBeDeleted() bool {
	return o.Status == SupplyOrderStatusEnAttente
}
