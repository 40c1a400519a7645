package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"gorm.io/gorm"
)

func newMaterialService(db *gorm.DB) *RawMaterialService {
	repos := repository.NewRepositories(db)
	return NewRawMaterialService(repos.RawMaterial, repos.Supplier)
}

func TestCreateRawMaterialWithSuppliers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedSupplier(t, db, "sup-1", "Acier Maroc")
	svc := newMaterialService(db)

	material, err := svc.Create(context.Background(), &CreateRawMaterialRequest{
		Name:        "Steel",
		Stock:       100,
		StockMin:    20,
		Unit:        "kg",
		SupplierIDs: []string{"sup-1"},
	})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	if len(material.Suppliers) != 1 || material.Suppliers[0].ID != "sup-1" {
		t.Errorf("suppliers = %+v, want sup-1", material.Suppliers)
	}
	if material.BelowMinimum {
		t.Error("material at 100/20 must not be flagged below minimum")
	}
}

func TestCreateRawMaterialUnknownSupplier(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newMaterialService(db)

	_, err := svc.Create(context.Background(), &CreateRawMaterialRequest{
		Name:        "Steel",
		SupplierIDs: []string{"missing"},
	})
	if !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("err = %v, want ErrSupplierNotFound", err)
	}
}

func TestListBelowMinimum(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedRawMaterial(t, db, "mat-low", "Resin", 3, 10)
	testutil.SeedRawMaterial(t, db, "mat-ok", "Steel", 50, 10)
	testutil.SeedRawMaterial(t, db, "mat-exact", "Glue", 10, 10)

	svc := newMaterialService(db)

	items, total, err := svc.ListBelowMinimum(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("list below minimum: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("total = %d items = %d, want 1 each", total, len(items))
	}
	if items[0].ID != "mat-low" {
		t.Errorf("item = %q, want mat-low", items[0].ID)
	}
	if !items[0].BelowMinimum {
		t.Error("low item must be flagged below minimum")
	}
}

func TestAddAndRemoveSupplier(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedSupplier(t, db, "sup-1", "Acier Maroc")
	testutil.SeedRawMaterial(t, db, "mat-1", "Steel", 50, 10)

	svc := newMaterialService(db)
	ctx := context.Background()

	material, err := svc.AddSupplier(ctx, "mat-1", "sup-1")
	if err != nil {
		t.Fatalf("add supplier: %v", err)
	}
	if len(material.Suppliers) != 1 {
		t.Fatalf("suppliers = %d, want 1", len(material.Suppliers))
	}

	material, err = svc.RemoveSupplier(ctx, "mat-1", "sup-1")
	if err != nil {
		t.Fatalf("remove supplier: %v", err)
	}
	if len(material.Suppliers) != 0 {
		t.Errorf("suppliers = %d, want 0", len(material.Suppliers))
	}
}

func TestUpdateRawMaterialReplacesSupplierSet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedSupplier(t, db, "sup-1", "Acier Maroc")
	testutil.SeedSupplier(t, db, "sup-2", "Metal Atlas")

	svc := newMaterialService(db)
	ctx := context.Background()

	material, err := svc.Create(ctx, &CreateRawMaterialRequest{
		Name:        "Steel",
		Stock:       50,
		StockMin:    10,
		SupplierIDs: []string{"sup-1"},
	})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	newSet := []string{"sup-2"}
	material, err = svc.Update(ctx, material.ID, &UpdateRawMaterialRequest{SupplierIDs: &newSet})
	if err != nil {
		t.Fatalf("update material: %v", err)
	}
	if len(material.Suppliers) != 1 || material.Suppliers[0].ID != "sup-2" {
		t.Errorf("suppliers = %+v, want only sup-2", material.Suppliers)
	}
}
