// Package testutil holds the shared test helpers: an in-memory
// database, a gin test router and request utilities.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	deliveryentity "github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/middleware"
	procuremententity "github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	productionentity "github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	userentity "github.com/ousama-oujaber/SupplyChainX/internal/user/entity"
)

const JWTSecret = "supplychainx-test-jwt-secret"

// SetupTestDB opens an isolated in-memory database with the full
// schema migrated. The connection is closed when the test completes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// single connection keeps the in-memory database alive and avoids
	// sqlite write-lock contention between pooled connections
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&userentity.User{},
		&procuremententity.Supplier{},
		&procuremententity.RawMaterial{},
		&procuremententity.SupplyOrder{},
		&productionentity.Product{},
		&productionentity.BillOfMaterial{},
		&productionentity.ProductionOrder{},
		&deliveryentity.Customer{},
		&deliveryentity.CustomerOrder{},
		&deliveryentity.Delivery{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupRouter creates a gin test router.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group with JWT auth middleware for testing.
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret))
}

// GenerateTestToken creates a valid access token for testing.
func GenerateTestToken(userID, email, role string) string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iss":   "supplychainx",
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
		"jti":   fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// DefaultTestToken returns a token for a default admin test user.
func DefaultTestToken() string {
	return GenerateTestToken("test-user-001", "admin@test.com", userentity.RoleAdmin)
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedProduct creates a product row directly.
func SeedProduct(t *testing.T, db *gorm.DB, id, name string, cost float64, stock int) *productionentity.Product {
	t.Helper()
	product := &productionentity.Product{
		ID:    id,
		Name:  name,
		Cost:  cost,
		Stock: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

// SeedCustomer creates a customer row directly.
func SeedCustomer(t *testing.T, db *gorm.DB, id, name string) *deliveryentity.Customer {
	t.Helper()
	customer := &deliveryentity.Customer{
		ID:   id,
		Name: name,
		City: "Casablanca",
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}

// SeedRawMaterial creates a raw material row directly.
func SeedRawMaterial(t *testing.T, db *gorm.DB, id, name string, stock, stockMin int) *procuremententity.RawMaterial {
	t.Helper()
	material := &procuremententity.RawMaterial{
		ID:       id,
		Name:     name,
		Stock:    stock,
		StockMin: stockMin,
		Unit:     "kg",
	}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("Failed to seed raw material: %v", err)
	}
	return material
}

// SeedSupplier creates a supplier row directly.
func SeedSupplier(t *testing.T, db *gorm.DB, id, name string) *procuremententity.Supplier {
	t.Helper()
	supplier := &procuremententity.Supplier{
		ID:      id,
		Name:    name,
		Contact: name + "@suppliers.test",
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("Failed to seed supplier: %v", err)
	}
	return supplier
}
