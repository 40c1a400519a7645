package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/service"
	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
)

// CustomerOrderHandler serves the customer order endpoints.
type CustomerOrderHandler struct {
	svc *service.CustomerOrderService
}

func NewCustomerOrderHandler(svc *service.CustomerOrderService) *CustomerOrderHandler {
	return &CustomerOrderHandler{svc: svc}
}

func (h *CustomerOrderHandler) List(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)
	filters := map[string]string{
		"customer_id": c.Query("customer_id"),
		"status":      c.Query("status"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *CustomerOrderHandler) Create(c *gin.Context) {
	var req service.CreateCustomerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	order, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Created(c, order)
}

func (h *CustomerOrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, order)
}

func (h *CustomerOrderHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	order, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, order)
}

// Cancel removes the order and returns the reserved stock.
func (h *CustomerOrderHandler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, nil)
}
