package entity

import (
	"time"

	procurement "github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
)

// BillOfMaterial links a product to one raw material it consumes,
// with the quantity of material needed per unit of product.
type BillOfMaterial struct {
	ID         string                  `json:"id" gorm:"primaryKey;size:36"`
	ProductID  string                  `json:"product_id" gorm:"size:36;not null;index"`
	Product    Product                 `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	MaterialID string                  `json:"material_id" gorm:"size:36;not null;index"`
	Material   procurement.RawMaterial `json:"material" gorm:"foreignKey:MaterialID"`
	Quantity   int                     `json:"quantity" gorm:"not null"`

	// Derived at read time: material.stock >= quantity.
	MaterialAvailable bool `json:"material_available" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BillOfMaterial) TableName() string {
	return "bill_of_materials"
}

// IsMaterialAvailable reports whether the loaded material has enough
// stock for one unit of product.
func (b *BillOfMaterial) IsMaterialAvailable() bool {
	return b.Material.Stock >= b.Quantity
}
