package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
	procurementrepo "github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
)

// BOMService manages bill-of-material lines and answers the
// material-availability question production orders are gated on.
type BOMService struct {
	boms      *repository.BillOfMaterialRepository
	products  *repository.ProductRepository
	materials *procurementrepo.RawMaterialRepository
}

func NewBOMService(
	boms *repository.BillOfMaterialRepository,
	products *repository.ProductRepository,
	materials *procurementrepo.RawMaterialRepository,
) *BOMService {
	return &BOMService{
		boms:      boms,
		products:  products,
		materials: materials,
	}
}

// CreateBOMRequest carries a new BOM line.
type CreateBOMRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	MaterialID string `json:"material_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateBOMRequest only allows changing the line quantity.
type UpdateBOMRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

func (s *BOMService) Create(ctx context.Context, req *CreateBOMRequest) (*entity.BillOfMaterial, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if _, err := s.materials.FindByID(ctx, req.MaterialID); err != nil {
		if errors.Is(err, procurementrepo.ErrNotFound) {
			return nil, ErrRawMaterialNotFound
		}
		return nil, err
	}

	bom := &entity.BillOfMaterial{
		ID:         uuid.New().String(),
		ProductID:  req.ProductID,
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
	}
	if err := s.boms.Create(ctx, bom); err != nil {
		return nil, err
	}
	return s.Get(ctx, bom.ID)
}

func (s *BOMService) Update(ctx context.Context, id string, req *UpdateBOMRequest) (*entity.BillOfMaterial, error) {
	bom, err := s.boms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillOfMaterialNotFound
		}
		return nil, err
	}

	bom.Quantity = req.Quantity
	if err := s.boms.Update(ctx, bom); err != nil {
		return nil, err
	}
	bom.MaterialAvailable = bom.IsMaterialAvailable()
	return bom, nil
}

func (s *BOMService) Get(ctx context.Context, id string) (*entity.BillOfMaterial, error) {
	bom, err := s.boms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillOfMaterialNotFound
		}
		return nil, err
	}
	bom.MaterialAvailable = bom.IsMaterialAvailable()
	return bom, nil
}

func (s *BOMService) List(ctx context.Context, page, pageSize int) ([]entity.BillOfMaterial, int64, error) {
	items, total, err := s.boms.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].MaterialAvailable = items[i].IsMaterialAvailable()
	}
	return items, total, nil
}

// ListByProduct returns every BOM line of one product.
func (s *BOMService) ListByProduct(ctx context.Context, productID string) ([]entity.BillOfMaterial, error) {
	exists, err := s.products.ExistsByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	items, err := s.boms.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].MaterialAvailable = items[i].IsMaterialAvailable()
	}
	return items, nil
}

// ListByProductPaginated pages through one product's BOM lines.
func (s *BOMService) ListByProductPaginated(ctx context.Context, productID string, page, pageSize int) ([]entity.BillOfMaterial, int64, error) {
	exists, err := s.products.ExistsByID(ctx, productID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrProductNotFound
	}

	items, total, err := s.boms.FindByProductPaginated(ctx, productID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].MaterialAvailable = items[i].IsMaterialAvailable()
	}
	return items, total, nil
}

func (s *BOMService) Delete(ctx context.Context, id string) error {
	exists, err := s.boms.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBillOfMaterialNotFound
	}
	return s.boms.Delete(ctx, id)
}

// CheckAvailability reports whether every BOM line of the product has
// enough material stock for the given production quantity. A product
// with no BOM lines has no recipe and is never considered
// produceable.
func (s *BOMService) CheckAvailability(ctx context.Context, productID string, quantity int) (bool, error) {
	lines, err := s.boms.FindByProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	if len(lines) == 0 {
		return false, nil
	}

	for _, line := range lines {
		required := line.Quantity * quantity
		if line.Material.Stock < required {
			return false, nil
		}
	}
	return true, nil
}

// MissingMaterials lists each BOM line whose material stock cannot
// cover the given production quantity.
func (s *BOMService) MissingMaterials(ctx context.Context, productID string, quantity int) ([]MaterialShortage, error) {
	lines, err := s.boms.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var shortages []MaterialShortage
	for _, line := range lines {
		required := line.Quantity * quantity
		if line.Material.Stock < required {
			shortages = append(shortages, MaterialShortage{
				MaterialName: line.Material.Name,
				Required:     required,
				Available:    line.Material.Stock,
			})
		}
	}
	return shortages, nil
}
