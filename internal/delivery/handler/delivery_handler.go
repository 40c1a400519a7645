package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/service"
	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
)

// DeliveryHandler serves the delivery endpoints.
type DeliveryHandler struct {
	svc *service.DeliveryService
}

func NewDeliveryHandler(svc *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

func (h *DeliveryHandler) List(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *DeliveryHandler) Create(c *gin.Context) {
	var req service.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	delivery, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Created(c, delivery)
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	delivery, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, delivery)
}

// GetByOrder finds the delivery attached to a customer order.
func (h *DeliveryHandler) GetByOrder(c *gin.Context) {
	delivery, err := h.svc.GetByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, delivery)
}

func (h *DeliveryHandler) Update(c *gin.Context) {
	var req service.UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	delivery, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, delivery)
}

// CalculateCost recomputes the delivery fee from the current order.
func (h *DeliveryHandler) CalculateCost(c *gin.Context) {
	cost, err := h.svc.CalculateCost(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, gin.H{"delivery_id": c.Param("id"), "cost": cost})
}

func (h *DeliveryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, nil)
}
