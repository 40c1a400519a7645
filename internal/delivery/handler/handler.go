package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/service"
	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
)

// Handlers bundles the delivery HTTP handlers.
type Handlers struct {
	Customer      *CustomerHandler
	CustomerOrder *CustomerOrderHandler
	Delivery      *DeliveryHandler
}

func NewHandlers(
	customers *service.CustomerService,
	orders *service.CustomerOrderService,
	deliveries *service.DeliveryService,
) *Handlers {
	return &Handlers{
		Customer:      NewCustomerHandler(customers),
		CustomerOrder: NewCustomerOrderHandler(orders),
		Delivery:      NewDeliveryHandler(deliveries),
	}
}

// writeError maps delivery service errors to HTTP responses. A stock
// shortfall reports the available and required quantities.
func writeError(c *gin.Context, err error) {
	var stock *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrCustomerOrderNotFound),
		errors.Is(err, service.ErrDeliveryNotFound),
		errors.Is(err, service.ErrProductNotFound):
		httpapi.NotFound(c, err.Error())
	case errors.Is(err, service.ErrOrderCannotBeCancelled),
		errors.Is(err, service.ErrCustomerHasActiveOrders),
		errors.Is(err, service.ErrDeliveryAlreadyExists):
		httpapi.Conflict(c, err.Error())
	case errors.As(err, &stock):
		c.JSON(409, httpapi.Response{
			Code:    40902,
			Message: stock.Error(),
			Data: gin.H{
				"product":   stock.ProductName,
				"available": stock.Available,
				"required":  stock.Required,
			},
		})
	default:
		httpapi.InternalError(c, err.Error())
	}
}
