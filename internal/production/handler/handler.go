package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/service"
)

// Handlers bundles the production HTTP handlers.
type Handlers struct {
	Product         *ProductHandler
	BOM             *BOMHandler
	ProductionOrder *ProductionOrderHandler
}

func NewHandlers(
	products *service.ProductService,
	boms *service.BOMService,
	orders *service.ProductionOrderService,
) *Handlers {
	return &Handlers{
		Product:         NewProductHandler(products),
		BOM:             NewBOMHandler(boms),
		ProductionOrder: NewProductionOrderHandler(orders),
	}
}

// writeError maps production service errors to HTTP responses. A
// material shortage carries its deficient lines in the response data.
func writeError(c *gin.Context, err error) {
	var shortage *service.InsufficientMaterialsError
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrRawMaterialNotFound),
		errors.Is(err, service.ErrBillOfMaterialNotFound),
		errors.Is(err, service.ErrProductionOrderNotFound):
		httpapi.NotFound(c, err.Error())
	case errors.Is(err, service.ErrProductNameTaken),
		errors.Is(err, service.ErrProductHasActiveOrders),
		errors.Is(err, service.ErrProductionOrderCannotBeCancelled):
		httpapi.Conflict(c, err.Error())
	case errors.As(err, &shortage):
		c.JSON(409, httpapi.Response{
			Code:    40901,
			Message: shortage.Error(),
			Data:    gin.H{"shortages": shortage.Shortages},
		})
	default:
		httpapi.InternalError(c, err.Error())
	}
}
