package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/delivery/service"
	productionrepo "github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"gorm.io/gorm"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	orderSvc := service.NewCustomerOrderService(
		repos.CustomerOrder,
		repos.Customer,
		productionrepo.NewProductRepository(db),
		db,
	)
	h := NewCustomerOrderHandler(orderSvc)

	r := testutil.SetupRouter()
	orders := testutil.AuthGroup(r, "/api/v1/orders")
	orders.POST("", h.Create)
	orders.GET("/:id", h.Get)
	orders.DELETE("/:id", h.Cancel)

	return r, db
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, db := setupOrderRouter(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 20)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customer_id": "cust-1",
		"product_id":  "prod-1",
		"quantity":    5,
	}, testutil.DefaultTestToken())

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data, _ := resp["data"].(map[string]interface{})
	if data["quantity"] != float64(5) {
		t.Errorf("quantity = %v, want 5", data["quantity"])
	}
}

func TestCreateOrderEndpointInsufficientStock(t *testing.T) {
	r, db := setupOrderRouter(t)
	testutil.SeedCustomer(t, db, "cust-1", "Atlas Retail")
	testutil.SeedProduct(t, db, "prod-1", "Steel Frame", 100, 2)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customer_id": "cust-1",
		"product_id":  "prod-1",
		"quantity":    5,
	}, testutil.DefaultTestToken())

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["code"] != float64(40902) {
		t.Errorf("code = %v, want 40902", resp["code"])
	}
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customer_id": "cust-1",
	}, testutil.DefaultTestToken())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestOrderEndpointRequiresAuth(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customer_id": "cust-1",
		"product_id":  "prod-1",
		"quantity":    1,
	}, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", w.Code, w.Body.String())
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/orders/missing", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}
