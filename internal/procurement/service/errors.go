package service

import "errors"

var (
	ErrSupplierNotFound           = errors.New("supplier not found")
	ErrRawMaterialNotFound        = errors.New("raw material not found")
	ErrSupplyOrderNotFound        = errors.New("supply order not found")
	ErrSupplyOrderCannotBeDeleted = errors.New("supply order can only be deleted while pending")
	ErrSupplierHasActiveOrders    = errors.New("supplier has active supply orders")
)
