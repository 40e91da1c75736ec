package ports

import (
	"context"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// UserRepository defines persistence for staff records.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindAdmin returns the administrator record whose mobile number is the
	// OTP delivery address. Looked up at dispatch time, never cached.
	FindAdmin(ctx context.Context) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}
