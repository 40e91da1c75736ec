package ports

import (
	"context"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to provision a staff account.
type CreateEmployeeInput struct {
	Username string
	Password string
	Email    string
	Role     string
	Mobile   string
}

// UpdateEmployeeInput mutates an existing staff account. An empty Password
// leaves the stored hash untouched.
type UpdateEmployeeInput struct {
	ID       string
	Username string
	Password string
	Email    string
	Role     string
	Mobile   string
}

// EmployeeService manages staff records. All operations are admin-only;
// the transport layer enforces that via RBAC middleware.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, in CreateEmployeeInput) (*domain.User, error)
	Update(ctx context.Context, in UpdateEmployeeInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
