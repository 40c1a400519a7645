package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/service"
)

// ProductionOrderHandler serves the production order endpoints.
type ProductionOrderHandler struct {
	svc *service.ProductionOrderService
}

func NewProductionOrderHandler(svc *service.ProductionOrderService) *ProductionOrderHandler {
	return &ProductionOrderHandler{svc: svc}
}

func (h *ProductionOrderHandler) List(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)
	filters := map[string]string{
		"status":     c.Query("status"),
		"product_id": c.Query("product_id"),
		"priority":   c.Query("priority"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *ProductionOrderHandler) Create(c *gin.Context) {
	var req service.CreateProductionOrderRequest
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

// Get returns the order along with whether its BOM is currently
// satisfiable.
func (h *ProductionOrderHandler) Get(c *gin.Context) {
	order, available, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, gin.H{
		"order":               order,
		"materials_available": available,
	})
}

func (h *ProductionOrderHandler) Update(c *gin.Context) {
	var req service.UpdateProductionOrderRequest
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

func (h *ProductionOrderHandler) UpdateStatus(c *gin.Context) {
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

func (h *ProductionOrderHandler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, nil)
}

// EstimateTime reports the estimated production duration for a product
// and quantity. Products without a configured production time return a
// null estimate.
func (h *ProductionOrderHandler) EstimateTime(c *gin.Context) {
	quantity := 1
	if q := c.Query("quantity"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 {
			httpapi.BadRequest(c, "quantity must be a positive integer")
			return
		}
		quantity = v
	}

	estimate, err := h.svc.EstimateTime(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, gin.H{
		"product_id":     c.Param("id"),
		"quantity":       quantity,
		"estimated_time": estimate,
	})
}
