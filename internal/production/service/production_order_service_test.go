package service

import (
	"context"
	"errors"
	"testing"

	procurementrepo "github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"gorm.io/gorm"
)

func newProductionServices(db *gorm.DB) (*BOMService, *ProductionOrderService) {
	repos := repository.NewRepositories(db)
	boms := NewBOMService(repos.BillOfMaterial, repos.Product, procurementrepo.NewRawMaterialRepository(db))
	orders := NewProductionOrderService(repos.ProductionOrder, repos.Product, boms)
	return boms, orders
}

// seedRecipe sets up a product whose BOM needs 2 steel and 1 resin per
// unit.
func seedRecipe(t *testing.T, db *gorm.DB, boms *BOMService, steelStock, resinStock int) {
	t.Helper()
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 0)
	testutil.SeedRawMaterial(t, db, "mat-steel", "Steel", steelStock, 10)
	testutil.SeedRawMaterial(t, db, "mat-resin", "Resin", resinStock, 5)

	ctx := context.Background()
	if _, err := boms.Create(ctx, &CreateBOMRequest{ProductID: "prod-1", MaterialID: "mat-steel", Quantity: 2}); err != nil {
		t.Fatalf("create bom line: %v", err)
	}
	if _, err := boms.Create(ctx, &CreateBOMRequest{ProductID: "prod-1", MaterialID: "mat-resin", Quantity: 1}); err != nil {
		t.Fatalf("create bom line: %v", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	db := testutil.SetupTestDB(t)
	boms, _ := newProductionServices(db)
	seedRecipe(t, db, boms, 20, 5)

	ctx := context.Background()

	// 5 units need 10 steel and 5 resin
	available, err := boms.CheckAvailability(ctx, "prod-1", 5)
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if !available {
		t.Error("5 units should be produceable")
	}

	// 6 units need 6 resin, only 5 on hand
	available, err = boms.CheckAvailability(ctx, "prod-1", 6)
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if available {
		t.Error("6 units should not be produceable")
	}
}

func TestCheckAvailabilityNoRecipe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	boms, _ := newProductionServices(db)
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 0)

	available, err := boms.CheckAvailability(context.Background(), "prod-1", 1)
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if available {
		t.Error("a product without BOM lines must not be produceable")
	}
}

func TestMissingMaterials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	boms, _ := newProductionServices(db)
	seedRecipe(t, db, boms, 4, 100)

	shortages, err := boms.MissingMaterials(context.Background(), "prod-1", 3)
	if err != nil {
		t.Fatalf("missing materials: %v", err)
	}

	if len(shortages) != 1 {
		t.Fatalf("shortages = %d, want 1", len(shortages))
	}
	s := shortages[0]
	if s.MaterialName != "Steel" || s.Required != 6 || s.Available != 4 {
		t.Errorf("shortage = %+v, want Steel 6/4", s)
	}
}

func TestCreateProductionOrderGatedOnMaterials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	boms, orders := newProductionServices(db)
	seedRecipe(t, db, boms, 20, 5)

	ctx := context.Background()

	order, err := orders.Create(ctx, &CreateProductionOrderRequest{
		ProductID: "prod-1",
		Quantity:  5,
	})
	if err != nil {
		t.Fatalf("create production order: %v", err)
	}
	if order.Status != entity.ProductionOrderStatusEnAttente {
		t.Errorf("status = %q, want %q", order.Status, entity.ProductionOrderStatusEnAttente)
	}

	// creation does not reserve material stock, so the same quantity
	// can be ordered again
	if _, err := orders.Create(ctx, &CreateProductionOrderRequest{
		ProductID: "prod-1",
		Quantity:  5,
	}); err != nil {
		t.Fatalf("second create: %v", err)
	}

	_, err = orders.Create(ctx, &CreateProductionOrderRequest{
		ProductID: "prod-1",
		Quantity:  6,
	})
	var shortage *InsufficientMaterialsError
	if !errors.As(err, &shortage) {
		t.Fatalf("err = %v, want InsufficientMaterialsError", err)
	}
	if len(shortage.Shortages) != 1 || shortage.Shortages[0].MaterialName != "Resin" {
		t.Errorf("shortages = %+v, want one Resin line", shortage.Shortages)
	}
}

func TestCancelProductionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	boms, orders := newProductionServices(db)
	seedRecipe(t, db, boms, 20, 20)

	ctx := context.Background()
	order, err := orders.Create(ctx, &CreateProductionOrderRequest{ProductID: "prod-1", Quantity: 2})
	if err != nil {
		t.Fatalf("create production order: %v", err)
	}

	if err := orders.Cancel(ctx, order.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, _, err := orders.Get(ctx, order.ID); !errors.Is(err, ErrProductionOrderNotFound) {
		t.Errorf("get after cancel err = %v, want ErrProductionOrderNotFound", err)
	}
}

func TestCancelActiveProductionOrderRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	boms, orders := newProductionServices(db)
	seedRecipe(t, db, boms, 20, 20)

	ctx := context.Background()
	order, err := orders.Create(ctx, &CreateProductionOrderRequest{
		ProductID: "prod-1",
		Quantity:  2,
		Status:    entity.ProductionOrderStatusEnProduction,
	})
	if err != nil {
		t.Fatalf("create production order: %v", err)
	}

	if err := orders.Cancel(ctx, order.ID); !errors.Is(err, ErrProductionOrderCannotBeCancelled) {
		t.Fatalf("cancel err = %v, want ErrProductionOrderCannotBeCancelled", err)
	}
}

func TestEstimateTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, orders := newProductionServices(db)

	hours := 3
	product := testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 0)
	db.Model(product).Update("production_time", hours)
	testutil.SeedProduct(t, db, "prod-2", "Untimed", 50, 0)

	ctx := context.Background()

	estimate, err := orders.EstimateTime(ctx, "prod-1", 4)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if estimate == nil || *estimate != 12 {
		t.Errorf("estimate = %v, want 12", estimate)
	}

	estimate, err = orders.EstimateTime(ctx, "prod-2", 4)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if estimate != nil {
		t.Errorf("estimate = %v, want nil for product without production time", *estimate)
	}
}
