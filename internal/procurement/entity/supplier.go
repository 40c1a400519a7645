package entity

import "time"

// Supply order statuses
const (
	SupplyOrderStatusEnAttente = "EN_ATTENTE"
	SupplyOrderStatusEnCours   = "EN_COURS"
	SupplyOrderStatusLivree    = "LIVREE"
)

// Supplier is a raw material supplier.
type Supplier struct {
	ID       string   `json:"id" gorm:"primaryKey;size:36"`
	Name     string   `json:"name" gorm:"size:200;not null"`
	Contact  string   `json:"contact" gorm:"size:200"`
	Rating   *float64 `json:"rating" gorm:"type:decimal(3,1)"`
	LeadTime *int     `json:"lead_time"` // days

	Orders []SupplyOrder `json:"orders,omitempty" gorm:"foreignKey:SupplierID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
