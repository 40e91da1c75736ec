package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

func TestEmployeeService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewEmployeeService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Username: "alice",
		Password: "pass123",
		Role:     domain.RoleEmployee,
		Mobile:   "9876543210",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("hash must be stripped from the returned user")
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc := NewEmployeeService(newStubUserRepo(), zerolog.Nop())

	cases := []ports.CreateEmployeeInput{
		{Password: "p", Role: domain.RoleEmployee},
		{Username: "a", Role: domain.RoleEmployee},
		{Username: "a", Password: "p"},
		{Username: "a", Password: "p", Role: "superuser"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %+v, got %v", in, err)
		}
	}
}

func TestEmployeeService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "old", domain.RoleEmployee, "")
	svc := NewEmployeeService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Username: "alice",
		Password: "pass",
		Role:     domain.RoleEmployee,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestEmployeeService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "original", domain.RoleEmployee, "")
	before := repo.users["alice"].PasswordHash

	svc := NewEmployeeService(repo, zerolog.Nop())
	_, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID:       "alice",
		Username: "alice",
		Role:     domain.RoleEmployee,
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if repo.users["alice"].PasswordHash != before {
		t.Fatalf("empty password must leave the stored hash untouched")
	}
	if repo.users["alice"].Email != "alice@example.com" {
		t.Fatalf("other fields must update")
	}
}

func TestEmployeeService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "original", domain.RoleEmployee, "")
	before := repo.users["alice"].PasswordHash

	svc := NewEmployeeService(repo, zerolog.Nop())
	_, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID:       "alice",
		Username: "alice",
		Password: "rotated",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	after := repo.users["alice"].PasswordHash
	if after == before {
		t.Fatalf("password change must rotate the hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(after), []byte("rotated")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestEmployeeService_List_StripsHashes(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "pass", domain.RoleEmployee, "")
	repo.add("boss", "pass", domain.RoleAdmin, "123")

	svc := NewEmployeeService(repo, zerolog.Nop())
	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Fatalf("hash leaked for %s", u.Username)
		}
	}
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	svc := NewEmployeeService(newStubUserRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
