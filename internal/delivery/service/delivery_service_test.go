package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"gorm.io/gorm"
)

func newDeliveryService(db *gorm.DB) (*DeliveryService, *CustomerOrderService) {
	repos := repository.NewRepositories(db)
	return NewDeliveryService(repos.Delivery, repos.CustomerOrder, db), newOrderService(db)
}

func seedOrder(t *testing.T, db *gorm.DB, orders *CustomerOrderService, quantity int) *entity.CustomerOrder {
	t.Helper()
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 50)

	order, err := orders.Create(context.Background(), &CreateCustomerOrderRequest{
		CustomerID: "cust-1",
		ProductID:  "prod-1",
		Quantity:   quantity,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestDeliveryCost(t *testing.T) {
	tests := []struct {
		name     string
		unitCost float64
		quantity int
		want     float64
	}{
		{"base plus ten percent", 100, 10, 150.00},
		{"small order", 40, 5, 70.00},
		{"rounds half up", 33.33, 7, 73.33},
		{"zero quantity", 100, 0, 50.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deliveryCost(tt.unitCost, tt.quantity); got != tt.want {
				t.Errorf("deliveryCost(%v, %d) = %v, want %v", tt.unitCost, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestCreateDeliveryDefaultsCostAndMovesOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deliveries, orders := newDeliveryService(db)
	order := seedOrder(t, db, orders, 10)

	delivery, err := deliveries.Create(context.Background(), &CreateDeliveryRequest{
		OrderID: order.ID,
		Vehicle: "TRUCK-12",
		Driver:  "K. Alaoui",
	})
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	if delivery.Status != entity.DeliveryStatusPlanifiee {
		t.Errorf("status = %q, want %q", delivery.Status, entity.DeliveryStatusPlanifiee)
	}
	// 50 + 100*10*0.1
	if delivery.Cost != 150.00 {
		t.Errorf("cost = %v, want 150.00", delivery.Cost)
	}

	reloaded, err := orders.Get(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Status != entity.CustomerOrderStatusEnRoute {
		t.Errorf("order status = %q, want %q", reloaded.Status, entity.CustomerOrderStatusEnRoute)
	}
}

func TestCreateDeliveryDuplicateRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deliveries, orders := newDeliveryService(db)
	order := seedOrder(t, db, orders, 2)

	ctx := context.Background()
	if _, err := deliveries.Create(ctx, &CreateDeliveryRequest{OrderID: order.ID}); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	_, err := deliveries.Create(ctx, &CreateDeliveryRequest{OrderID: order.ID})
	if !errors.Is(err, ErrDeliveryAlreadyExists) {
		t.Fatalf("err = %v, want ErrDeliveryAlreadyExists", err)
	}
}

func TestUpdateDeliveryStatusDrivesOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deliveries, orders := newDeliveryService(db)
	order := seedOrder(t, db, orders, 3)

	ctx := context.Background()
	delivery, err := deliveries.Create(ctx, &CreateDeliveryRequest{OrderID: order.ID})
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	status := entity.DeliveryStatusLivree
	if _, err := deliveries.Update(ctx, delivery.ID, &UpdateDeliveryRequest{Status: &status}); err != nil {
		t.Fatalf("update delivery: %v", err)
	}

	reloaded, err := orders.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Status != entity.CustomerOrderStatusLivree {
		t.Errorf("order status = %q, want %q", reloaded.Status, entity.CustomerOrderStatusLivree)
	}
}

func TestCalculateCostRecomputes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deliveries, orders := newDeliveryService(db)
	order := seedOrder(t, db, orders, 4)

	ctx := context.Background()
	explicit := 999.0
	delivery, err := deliveries.Create(ctx, &CreateDeliveryRequest{OrderID: order.ID, Cost: &explicit})
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}
	if delivery.Cost != 999.0 {
		t.Fatalf("cost = %v, want explicit 999.0", delivery.Cost)
	}

	cost, err := deliveries.CalculateCost(ctx, delivery.ID)
	if err != nil {
		t.Fatalf("calculate cost: %v", err)
	}
	// 50 + 100*4*0.1
	if cost != 90.00 {
		t.Errorf("cost = %v, want 90.00", cost)
	}
}

func TestGetDeliveryByOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deliveries, orders := newDeliveryService(db)
	order := seedOrder(t, db, orders, 1)

	ctx := context.Background()
	created, err := deliveries.Create(ctx, &CreateDeliveryRequest{OrderID: order.ID})
	if err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	found, err := deliveries.GetByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get by order: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("delivery id = %q, want %q", found.ID, created.ID)
	}

	if _, err := deliveries.GetByOrder(ctx, "missing"); !errors.Is(err, ErrDeliveryNotFound) {
		t.Errorf("err = %v, want ErrDeliveryNotFound", err)
	}
}
