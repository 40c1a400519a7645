package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound                  = errors.New("product not found")
	ErrProductNameTaken                 = errors.New("product name already exists")
	ErrRawMaterialNotFound              = errors.New("raw material not found")
	ErrBillOfMaterialNotFound           = errors.New("bill of material not found")
	ErrProductionOrderNotFound          = errors.New("production order not found")
	ErrProductionOrderCannotBeCancelled = errors.New("production order cannot be cancelled in its current status")
	ErrProductHasActiveOrders           = errors.New("product has active production orders")
)

// MaterialShortage describes one deficient BOM line.
type MaterialShortage struct {
	MaterialName string `json:"material_name"`
	Required     int    `json:"required"`
	Available    int    `json:"available"`
}

// InsufficientMaterialsError is returned when a production order asks
// for more raw material than is in stock; it lists every deficient
// line.
type InsufficientMaterialsError struct {
	ProductID string
	Shortages []MaterialShortage
}

func (e *InsufficientMaterialsError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (required: %d, available: %d)",
			s.MaterialName, s.Required, s.Available))
	}
	return "insufficient materials for product " + e.ProductID + ": " + strings.Join(parts, ", ")
}
