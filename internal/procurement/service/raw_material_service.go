package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
)

// RawMaterialService manages raw materials and their supplier
// associations. The below-minimum flag is derived on every read.
type RawMaterialService struct {
	materials *repository.RawMaterialRepository
	suppliers *repository.SupplierRepository
}

func NewRawMaterialService(
	materials *repository.RawMaterialRepository,
	suppliers *repository.SupplierRepository,
) *RawMaterialService {
	return &RawMaterialService{
		materials: materials,
		suppliers: suppliers,
	}
}

// CreateRawMaterialRequest carries a new material.
type CreateRawMaterialRequest struct {
	Name        string   `json:"name" binding:"required"`
	Stock       int      `json:"stock" binding:"gte=0"`
	StockMin    int      `json:"stock_min" binding:"gte=0"`
	Unit        string   `json:"unit"`
	SupplierIDs []string `json:"supplier_ids"`
}

// UpdateRawMaterialRequest carries the partial update. A non-nil
// SupplierIDs replaces the whole supplier set.
type UpdateRawMaterialRequest struct {
	Name        *string   `json:"name"`
	Stock       *int      `json:"stock"`
	StockMin    *int      `json:"stock_min"`
	Unit        *string   `json:"unit"`
	SupplierIDs *[]string `json:"supplier_ids"`
}

func (s *RawMaterialService) Create(ctx context.Context, req *CreateRawMaterialRequest) (*entity.RawMaterial, error) {
	suppliers, err := s.resolveSuppliers(ctx, req.SupplierIDs)
	if err != nil {
		return nil, err
	}

	material := &entity.RawMaterial{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Stock:     req.Stock,
		StockMin:  req.StockMin,
		Unit:      req.Unit,
		Suppliers: suppliers,
	}
	if err := s.materials.Create(ctx, material); err != nil {
		return nil, err
	}
	material.BelowMinimum = material.IsBelowMinimum()
	return material, nil
}

func (s *RawMaterialService) Update(ctx context.Context, id string, req *UpdateRawMaterialRequest) (*entity.RawMaterial, error) {
	material, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRawMaterialNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		material.Name = *req.Name
	}
	if req.Stock != nil {
		material.Stock = *req.Stock
	}
	if req.StockMin != nil {
		material.StockMin = *req.StockMin
	}
	if req.Unit != nil {
		material.Unit = *req.Unit
	}

	if err := s.materials.Update(ctx, material); err != nil {
		return nil, err
	}

	if req.SupplierIDs != nil {
		suppliers, err := s.resolveSuppliers(ctx, *req.SupplierIDs)
		if err != nil {
			return nil, err
		}
		if err := s.materials.ReplaceSuppliers(ctx, material, suppliers); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *RawMaterialService) Get(ctx context.Context, id string) (*entity.RawMaterial, error) {
	material, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRawMaterialNotFound
		}
		return nil, err
	}
	material.BelowMinimum = material.IsBelowMinimum()
	return material, nil
}

func (s *RawMaterialService) List(ctx context.Context, page, pageSize int, search string) ([]entity.RawMaterial, int64, error) {
	items, total, err := s.materials.FindAll(ctx, page, pageSize, search)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].BelowMinimum = items[i].IsBelowMinimum()
	}
	return items, total, nil
}

// ListBelowMinimum pages through materials under their reorder
// threshold.
func (s *RawMaterialService) ListBelowMinimum(ctx context.Context, page, pageSize int) ([]entity.RawMaterial, int64, error) {
	items, total, err := s.materials.FindBelowMinimum(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].BelowMinimum = true
	}
	return items, total, nil
}

func (s *RawMaterialService) Delete(ctx context.Context, id string) error {
	exists, err := s.materials.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRawMaterialNotFound
	}
	return s.materials.Delete(ctx, id)
}

// AddSupplier associates a supplier with the material.
func (s *RawMaterialService) AddSupplier(ctx context.Context, materialID, supplierID string) (*entity.RawMaterial, error) {
	material, err := s.materials.FindByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRawMaterialNotFound
		}
		return nil, err
	}
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	if err := s.materials.AddSupplier(ctx, material, supplier); err != nil {
		return nil, err
	}
	return s.Get(ctx, materialID)
}

// RemoveSupplier dissociates a supplier from the material.
func (s *RawMaterialService) RemoveSupplier(ctx context.Context, materialID, supplierID string) (*entity.RawMaterial, error) {
	material, err := s.materials.FindByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRawMaterialNotFound
		}
		return nil, err
	}
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	if err := s.materials.RemoveSupplier(ctx, material, supplier); err != nil {
		return nil, err
	}
	return s.Get(ctx, materialID)
}

func (s *RawMaterialService) resolveSuppliers(ctx context.Context, ids []string) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	for _, id := range ids {
		supplier, err := s.suppliers.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, err
		}
		suppliers = append(suppliers, *supplier)
	}
	return suppliers, nil
}
