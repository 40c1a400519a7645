package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
)

// ProductService manages finished products.
type ProductService struct {
	products *repository.ProductRepository
}

func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// CreateProductRequest carries a new product.
type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	ProductionTime *int    `json:"production_time"`
	Cost           float64 `json:"cost"`
	Stock          int     `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest carries the partial update.
type UpdateProductRequest struct {
	Name           *string  `json:"name"`
	ProductionTime *int     `json:"production_time"`
	Cost           *float64 `json:"cost"`
	Stock          *int     `json:"stock"`
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*entity.Product, error) {
	taken, err := s.products.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrProductNameTaken
	}

	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           req.Name,
		ProductionTime: req.ProductionTime,
		Cost:           req.Cost,
		Stock:          req.Stock,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != product.Name {
		taken, err := s.products.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrProductNameTaken
		}
		product.Name = *req.Name
	}
	if req.ProductionTime != nil {
		product.ProductionTime = req.ProductionTime
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, page, pageSize int, search string) ([]entity.Product, int64, error) {
	return s.products.FindAll(ctx, page, pageSize, search)
}

// Delete removes a product unless production orders are still waiting
// or running for it.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	exists, err := s.products.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}

	active, err := s.products.CountActiveProductionOrders(ctx, id, []string{
		entity.ProductionOrderStatusEnAttente,
		entity.ProductionOrderStatusEnProduction,
	})
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrProductHasActiveOrders
	}

	return s.products.Delete(ctx, id)
}
