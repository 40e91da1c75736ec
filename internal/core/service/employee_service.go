package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

// EmployeeService provisions and maintains staff accounts. Password hashes
// never leave this layer; List strips them before returning.
type EmployeeService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewEmployeeService(users ports.UserRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{users: users, log: log}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}

func (s *EmployeeService) Create(ctx context.Context, in ports.CreateEmployeeInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleEmployee {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Role:         in.Role,
		Mobile:       in.Mobile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("staff account created")
	created.PasswordHash = ""
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, in ports.UpdateEmployeeInput) (*domain.User, error) {
	if in.ID == "" || in.Username == "" || in.Role == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleEmployee {
		return nil, domain.ErrInvalidCredentials
	}

	user := &domain.User{
		ID:        in.ID,
		Username:  in.Username,
		Email:     in.Email,
		Role:      in.Role,
		Mobile:    in.Mobile,
		UpdatedAt: time.Now().UTC(),
	}
	// An empty password leaves the stored hash untouched.
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("staff account deleted")
	return nil
}
