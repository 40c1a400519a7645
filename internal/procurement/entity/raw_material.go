package entity

import "time"

// RawMaterial is a stocked production input. Stock and StockMin are
// integer unit counts; BelowMinimum is derived at read time and never
// stored.
type RawMaterial struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	Name     string `json:"name" gorm:"size:200;not null"`
	Stock    int    `json:"stock" gorm:"not null;default:0"`
	StockMin int    `json:"stock_min" gorm:"not null;default:0"`
	Unit     string `json:"unit" gorm:"size:50"`

	Suppliers []Supplier `json:"suppliers,omitempty" gorm:"many2many:material_suppliers"`

	BelowMinimum bool `json:"below_minimum" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RawMaterial) TableName() string {
	return "raw_materials"
}

// IsBelowMinimum reports whether current stock is under the reorder
// threshold.
func (m *RawMaterial) IsBelowMinimum() bool {
	return m.Stock < m.StockMin
}
