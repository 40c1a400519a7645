package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/service"
)

// SupplyOrderHandler serves the supply order endpoints.
type SupplyOrderHandler struct {
	svc *service.SupplyOrderService
}

func NewSupplyOrderHandler(svc *service.SupplyOrderService) *SupplyOrderHandler {
	return &SupplyOrderHandler{svc: svc}
}

func (h *SupplyOrderHandler) List(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)
	filters := map[string]string{
		"status":      c.Query("status"),
		"supplier_id": c.Query("supplier_id"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *SupplyOrderHandler) Create(c *gin.Context) {
	var req service.CreateSupplyOrderRequest
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

func (h *SupplyOrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, order)
}

func (h *SupplyOrderHandler) Update(c *gin.Context) {
	var req service.UpdateSupplyOrderRequest
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

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *SupplyOrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, order)
}

func (h *SupplyOrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, nil)
}
