package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/service"
	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"gorm.io/gorm"
)

func setupSupplierRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	h := NewSupplierHandler(service.NewSupplierService(repos.Supplier))

	r := testutil.SetupRouter()
	suppliers := testutil.AuthGroup(r, "/api/v1/suppliers")
	suppliers.GET("", h.List)
	suppliers.POST("", h.Create)
	suppliers.GET("/:id", h.Get)
	suppliers.PUT("/:id", h.Update)
	suppliers.DELETE("/:id", h.Delete)

	return r, db
}

func TestSupplierCRUD(t *testing.T) {
	r, _ := setupSupplierRouter(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/suppliers", map[string]interface{}{
		"name":    "Acier Maroc",
		"contact": "contact@acier.ma",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := created["id"].(string)

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/suppliers/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/suppliers/"+id, map[string]interface{}{
		"contact": "sales@acier.ma",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if updated["contact"] != "sales@acier.ma" {
		t.Errorf("contact = %v, want sales@acier.ma", updated["contact"])
	}

	w = testutil.DoRequest(r, http.MethodDelete, "/api/v1/suppliers/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/suppliers/"+id, nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}

func TestSupplierListPagination(t *testing.T) {
	r, db := setupSupplierRouter(t)
	for _, id := range []string{"sup-1", "sup-2", "sup-3"} {
		testutil.SeedSupplier(t, db, id, "Supplier "+id)
	}

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/suppliers?page=1&page_size=2", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"] != float64(3) {
		t.Errorf("total = %v, want 3", pagination["total"])
	}
	if pagination["total_pages"] != float64(2) {
		t.Errorf("total_pages = %v, want 2", pagination["total_pages"])
	}
}

func TestSupplierDeleteWithActiveOrders(t *testing.T) {
	r, db := setupSupplierRouter(t)
	testutil.SeedSupplier(t, db, "sup-1", "Acier Maroc")

	// attach a pending supply order directly
	err := db.Exec(
		"INSERT INTO supply_orders (id, supplier_id, status) VALUES (?, ?, ?)",
		"so-1", "sup-1", "EN_ATTENTE",
	).Error
	if err != nil {
		t.Fatalf("seed supply order: %v", err)
	}

	w := testutil.DoRequest(r, http.MethodDelete, "/api/v1/suppliers/sup-1", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
}
