package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repositories groups the production repositories.
type Repositories struct {
	Product         *ProductRepository
	BillOfMaterial  *BillOfMaterialRepository
	ProductionOrder *ProductionOrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Product:         NewProductRepository(db),
		BillOfMaterial:  NewBillOfMaterialRepository(db),
		ProductionOrder: NewProductionOrderRepository(db),
	}
}
