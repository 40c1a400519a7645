package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/service"
)

// Handlers bundles the procurement HTTP handlers.
type Handlers struct {
	Supplier    *SupplierHandler
	RawMaterial *RawMaterialHandler
	SupplyOrder *SupplyOrderHandler
}

func NewHandlers(
	suppliers *service.SupplierService,
	materials *service.RawMaterialService,
	orders *service.SupplyOrderService,
) *Handlers {
	return &Handlers{
		Supplier:    NewSupplierHandler(suppliers),
		RawMaterial: NewRawMaterialHandler(materials),
		SupplyOrder: NewSupplyOrderHandler(orders),
	}
}

// writeError maps procurement service errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrRawMaterialNotFound),
		errors.Is(err, service.ErrSupplyOrderNotFound):
		httpapi.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSupplyOrderCannotBeDeleted),
		errors.Is(err, service.ErrSupplierHasActiveOrders):
		httpapi.Conflict(c, err.Error())
	default:
		httpapi.InternalError(c, err.Error())
	}
}
