package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/service"
)

// BOMHandler serves the bill-of-material endpoints.
type BOMHandler struct {
	svc *service.BOMService
}

func NewBOMHandler(svc *service.BOMService) *BOMHandler {
	return &BOMHandler{svc: svc}
}

func (h *BOMHandler) List(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)

	if productID := c.Query("product_id"); productID != "" {
		items, total, err := h.svc.ListByProductPaginated(c.Request.Context(), productID, page, pageSize)
		if err != nil {
			writeError(c, err)
			return
		}
		httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
		return
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *BOMHandler) ListByProduct(c *gin.Context) {
	items, err := h.svc.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, items)
}

func (h *BOMHandler) Create(c *gin.Context) {
	var req service.CreateBOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	line, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Created(c, line)
}

func (h *BOMHandler) Get(c *gin.Context) {
	line, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, line)
}

func (h *BOMHandler) Update(c *gin.Context) {
	var req service.UpdateBOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	line, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, line)
}

func (h *BOMHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, nil)
}

// CheckAvailability answers whether the product's BOM can be satisfied
// for the requested quantity.
func (h *BOMHandler) CheckAvailability(c *gin.Context) {
	quantity := 1
	if q := c.Query("quantity"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 {
			httpapi.BadRequest(c, "quantity must be a positive integer")
			return
		}
		quantity = v
	}

	available, err := h.svc.CheckAvailability(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	shortages, err := h.svc.MissingMaterials(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	httpapi.Success(c, gin.H{
		"product_id": c.Param("id"),
		"quantity":   quantity,
		"available":  available,
		"shortages":  shortages,
	})
}
