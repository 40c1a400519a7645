package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repositories groups the procurement repositories.
type Repositories struct {
	Supplier    *SupplierRepository
	RawMaterial *RawMaterialRepository
	SupplyOrder *SupplyOrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier:    NewSupplierRepository(db),
		RawMaterial: NewRawMaterialRepository(db),
		SupplyOrder: NewSupplyOrderRepository(db),
	}
}
