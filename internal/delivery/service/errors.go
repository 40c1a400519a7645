package service

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrCustomerOrderNotFound   = errors.New("customer order not found")
	ErrDeliveryNotFound        = errors.New("delivery not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrOrderCannotBeCancelled  = errors.New("customer order cannot be cancelled in its current status")
	ErrDeliveryAlreadyExists   = errors.New("order already has a delivery")
	ErrCustomerHasActiveOrders = errors.New("customer has active orders")
)

// InsufficientStockError is returned when an order asks for more
// units than the product has on hand.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Required    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, required %d",
		e.ProductName, e.Available, e.Required)
}
