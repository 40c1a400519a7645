package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
	productionentity "github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	productionrepo "github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *CustomerOrderService {
	repos := repository.NewRepositories(db)
	return NewCustomerOrderService(
		repos.CustomerOrder,
		repos.Customer,
		productionrepo.NewProductRepository(db),
		db,
	)
}

func productStock(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var product productionentity.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	return product.Stock
}

func TestCreateOrderReservesStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   5,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Status != entity.CustomerOrderStatusEnPreparation {
		t.Errorf("status = %q, want %q", order.Status, entity.CustomerOrderStatusEnPreparation)
	}
	if got := productStock(t, db, "prod-1"); got != 15 {
		t.Errorf("stock after create = %d, want 15", got)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 3)

	svc := newOrderService(db)

	_, err := svc.Create(context.Background(), &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   10,
	})

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if stockErr.Available != 3 || stockErr.Required != 10 {
		t.Errorf("shortfall = %d/%d, want 3/10", stockErr.Available, stockErr.Required)
	}
	if got := productStock(t, db, "prod-1"); got != 3 {
		t.Errorf("stock after failed create = %d, want 3", got)
	}
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)

	svc := newOrderService(db)

	_, err := svc.Create(context.Background(), &CreateCustomerOrderRequest{
		CustomerID: "missing",
		ProductID:  "prod-1",
		Quantity:   1,
	})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
	if got := productStock(t, db, "prod-1"); got != 20 {
		t.Errorf("stock = %d, want 20", got)
	}
}

func TestCancelOrderRestoresStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   8,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := svc.Cancel(ctx, order.ID); err != nil {
		t.Fatalf("cancel order: %v", err)
	}

	if got := productStock(t, db, "prod-1"); got != 20 {
		t.Errorf("stock after cancel = %d, want 20", got)
	}
	if _, err := svc.Get(ctx, order.ID); !errors.Is(err, ErrCustomerOrderNotFound) {
		t.Errorf("get after cancel err = %v, want ErrCustomerOrderNotFound", err)
	}
}

func TestCancelOrderEnRouteRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   2,
		Status:     entity.CustomerOrderStatusEnRoute,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := svc.Cancel(ctx, order.ID); !errors.Is(err, ErrOrderCannotBeCancelled) {
		t.Fatalf("cancel err = %v, want ErrOrderCannotBeCancelled", err)
	}
	if got := productStock(t, db, "prod-1"); got != 18 {
		t.Errorf("stock = %d, want 18", got)
	}
}

func TestUpdateOrderQuantityAdjustsStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   5,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// raise the quantity: 3 more units come off stock
	up := 8
	updated, err := svc.Update(ctx, order.ID, &UpdateCustomerOrderRequest{Quantity: &up})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if updated.Quantity != 8 {
		t.Errorf("quantity = %d, want 8", updated.Quantity)
	}
	if got := productStock(t, db, "prod-1"); got != 12 {
		t.Errorf("stock after raise = %d, want 12", got)
	}

	// lower it: units come back
	down := 2
	if _, err := svc.Update(ctx, order.ID, &UpdateCustomerOrderRequest{Quantity: &down}); err != nil {
		t.Fatalf("update order: %v", err)
	}
	if got := productStock(t, db, "prod-1"); got != 18 {
		t.Errorf("stock after lower = %d, want 18", got)
	}
}

func TestUpdateOrderQuantityInsufficientStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 10)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   5,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// only 5 left, asking for 7 more
	up := 12
	_, err = svc.Update(ctx, order.ID, &UpdateCustomerOrderRequest{Quantity: &up})

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if got := productStock(t, db, "prod-1"); got != 5 {
		t.Errorf("stock after failed update = %d, want 5", got)
	}

	reloaded, err := svc.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Quantity != 5 {
		t.Errorf("quantity after failed update = %d, want 5", reloaded.Quantity)
	}
}

func TestUpdateOrderSwapsProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)
	testutil.SeedProduct(t, db, "prod-2", "Alloy Frame", 150, 10)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   6,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	newProduct := "prod-2"
	quantity := 4
	updated, err := svc.Update(ctx, order.ID, &UpdateCustomerOrderRequest{
		ProductID: &newProduct,
		Quantity:  &quantity,
	})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}

	if updated.ProductID != "prod-2" || updated.Quantity != 4 {
		t.Errorf("order = %s x%d, want prod-2 x4", updated.ProductID, updated.Quantity)
	}
	if got := productStock(t, db, "prod-1"); got != 20 {
		t.Errorf("old product stock = %d, want 20", got)
	}
	if got := productStock(t, db, "prod-2"); got != 6 {
		t.Errorf("new product stock = %d, want 6", got)
	}
}

func TestUpdateOrderSwapInsufficientStockRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)
	testutil.SeedProduct(t, db, "prod-2", "Alloy Frame", 150, 2)

	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   6,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	newProduct := "prod-2"
	_, err = svc.Update(ctx, order.ID, &UpdateCustomerOrderRequest{ProductID: &newProduct})

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}

	// the release of prod-1 inside the failed transaction must be undone
	if got := productStock(t, db, "prod-1"); got != 14 {
		t.Errorf("old product stock = %d, want 14", got)
	}
	if got := productStock(t, db, "prod-2"); got != 2 {
		t.Errorf("new product stock = %d, want 2", got)
	}
}

func TestListOrdersUnknownCustomerFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newOrderService(db)

	_, _, err := svc.List(context.Background(), 1, 20, map[string]string{"customer_id": "missing"})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}
