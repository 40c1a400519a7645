package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/service"
)

// RawMaterialHandler serves the raw material endpoints, including the
// supplier links and the low-stock view.
type RawMaterialHandler struct {
	svc *service.RawMaterialService
}

func NewRawMaterialHandler(svc *service.RawMaterialService) *RawMaterialHandler {
	return &RawMaterialHandler{svc: svc}
}

func (h *RawMaterialHandler) List(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *RawMaterialHandler) ListBelowMinimum(c *gin.Context) {
	page, pageSize := httpapi.GetPagination(c)
	items, total, err := h.svc.ListBelowMinimum(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, httpapi.NewListResponse(items, page, pageSize, total))
}

func (h *RawMaterialHandler) Create(c *gin.Context) {
	var req service.CreateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	material, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Created(c, material)
}

func (h *RawMaterialHandler) Get(c *gin.Context) {
	material, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, material)
}

func (h *RawMaterialHandler) Update(c *gin.Context) {
	var req service.UpdateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	material, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, material)
}

func (h *RawMaterialHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, nil)
}

func (h *RawMaterialHandler) AddSupplier(c *gin.Context) {
	material, err := h.svc.AddSupplier(c.Request.Context(), c.Param("id"), c.Param("supplierId"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, material)
}

func (h *RawMaterialHandler) RemoveSupplier(c *gin.Context) {
	material, err := h.svc.RemoveSupplier(c.Request.Context(), c.Param("id"), c.Param("supplierId"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpapi.Success(c, material)
}
