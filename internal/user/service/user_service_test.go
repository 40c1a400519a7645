package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ousama-oujaber/SupplyChainX/internal/testutil"
	"github.com/ousama-oujaber/SupplyChainX/internal/user/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/user/repository"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		FirstName: "Yassine",
		LastName:  "Benali",
		Email:     "yassine@supplychainx.test",
		Password:  "s3cret-pass",
		Role:      entity.RoleChefProduction,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if user.Password == "s3cret-pass" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if user.Role != entity.RoleChefProduction {
		t.Errorf("role = %q, want %q", user.Role, entity.RoleChefProduction)
	}
}

func TestCreateUserDefaultsRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		FirstName: "Sara",
		LastName:  "El Amrani",
		Email:     "sara@supplychainx.test",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != entity.RolePlanificateur {
		t.Errorf("role = %q, want %q", user.Role, entity.RolePlanificateur)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	req := &CreateUserRequest{
		FirstName: "Sara",
		LastName:  "El Amrani",
		Email:     "sara@supplychainx.test",
		Password:  "s3cret-pass",
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestCreateUserInvalidRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Create(context.Background(), &CreateUserRequest{
		FirstName: "Sara",
		LastName:  "El Amrani",
		Email:     "sara@supplychainx.test",
		Password:  "s3cret-pass",
		Role:      "INTERN",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Create(ctx, &CreateUserRequest{
		FirstName: "Sara",
		LastName:  "El Amrani",
		Email:     "sara@supplychainx.test",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	newPassword := "another-pass"
	updated, err := svc.Update(ctx, user.ID, &UpdateUserRequest{Password: &newPassword})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)); err != nil {
		t.Errorf("hash does not match new password: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Create(ctx, &CreateUserRequest{
		FirstName: "Sara",
		LastName:  "El Amrani",
		Email:     "sara@supplychainx.test",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.Get(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("get after delete err = %v, want ErrUserNotFound", err)
	}
}
