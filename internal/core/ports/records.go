package ports

import (
	"context"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// CenterRepository persists collection centers.
type CenterRepository interface {
	List(ctx context.Context) ([]*domain.Center, error)
	Create(ctx context.Context, c *domain.Center) (*domain.Center, error)
	Update(ctx context.Context, c *domain.Center) (*domain.Center, error)
	Delete(ctx context.Context, id string) error
}

// CollectionRepository persists daily collection entries.
type CollectionRepository interface {
	List(ctx context.Context) ([]*domain.Collection, error)
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Delete(ctx context.Context, id string) error
}

// SaleRepository persists sales.
type SaleRepository interface {
	List(ctx context.Context) ([]*domain.Sale, error)
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

// AccountRepository persists ledger accounts.
type AccountRepository interface {
	List(ctx context.Context) ([]*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

// BankAccountRepository persists center payout bank accounts, keyed by code.
type BankAccountRepository interface {
	List(ctx context.Context) ([]*domain.CenterBankAccount, error)
	Create(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error)
	Update(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error)
	Delete(ctx context.Context, code int) error
}

// RegistryService exposes back-office CRUD over the record repositories.
// The records carry no invariants beyond required-field checks, so the
// service is a thin validation and logging layer.
type RegistryService interface {
	ListCenters(ctx context.Context) ([]*domain.Center, error)
	CreateCenter(ctx context.Context, c *domain.Center) (*domain.Center, error)
	UpdateCenter(ctx context.Context, c *domain.Center) (*domain.Center, error)
	DeleteCenter(ctx context.Context, id string) error

	ListCollections(ctx context.Context) ([]*domain.Collection, error)
	CreateCollection(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	UpdateCollection(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, id string) error

	ListSales(ctx context.Context) ([]*domain.Sale, error)
	CreateSale(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	UpdateSale(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, a *domain.Account) (*domain.Account, error)
	UpdateAccount(ctx context.Context, a *domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error

	ListBankAccounts(ctx context.Context) ([]*domain.CenterBankAccount, error)
	CreateBankAccount(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error)
	UpdateBankAccount(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error)
	DeleteBankAccount(ctx context.Context, code int) error
}
