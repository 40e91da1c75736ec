package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

// ErrMissingFields is returned when a record lacks its required fields.
var ErrMissingFields = errors.New("missing required fields")

// RegistryService is the CRUD layer over the back-office repositories. The
// records have no derived invariants, so this is a thin required-field check
// plus logging in front of persistence.
type RegistryService struct {
	centers      ports.CenterRepository
	collections  ports.CollectionRepository
	sales        ports.SaleRepository
	customers    ports.CustomerRepository
	accounts     ports.AccountRepository
	bankAccounts ports.BankAccountRepository
	log          zerolog.Logger
}

func NewRegistryService(
	centers ports.CenterRepository,
	collections ports.CollectionRepository,
	sales ports.SaleRepository,
	customers ports.CustomerRepository,
	accounts ports.AccountRepository,
	bankAccounts ports.BankAccountRepository,
	log zerolog.Logger,
) *RegistryService {
	return &RegistryService{
		centers:      centers,
		collections:  collections,
		sales:        sales,
		customers:    customers,
		accounts:     accounts,
		bankAccounts: bankAccounts,
		log:          log,
	}
}

// --- Centers ---

func (s *RegistryService) ListCenters(ctx context.Context) ([]*domain.Center, error) {
	return s.centers.List(ctx)
}

func (s *RegistryService) CreateCenter(ctx context.Context, c *domain.Center) (*domain.Center, error) {
	if c.Name == "" || c.Location == "" {
		return nil, ErrMissingFields
	}
	created, err := s.centers.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("center_id", created.ID).Str("name", created.Name).Msg("center created")
	return created, nil
}

func (s *RegistryService) UpdateCenter(ctx context.Context, c *domain.Center) (*domain.Center, error) {
	if c.Name == "" || c.Location == "" {
		return nil, ErrMissingFields
	}
	return s.centers.Update(ctx, c)
}

func (s *RegistryService) DeleteCenter(ctx context.Context, id string) error {
	return s.centers.Delete(ctx, id)
}

// --- Collections ---

func (s *RegistryService) ListCollections(ctx context.Context) ([]*domain.Collection, error) {
	return s.collections.List(ctx)
}

func (s *RegistryService) CreateCollection(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	if c.Date == "" || c.CenterID == "" {
		return nil, ErrMissingFields
	}
	return s.collections.Create(ctx, c)
}

func (s *RegistryService) UpdateCollection(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	if c.Date == "" || c.CenterID == "" {
		return nil, ErrMissingFields
	}
	return s.collections.Update(ctx, c)
}

func (s *RegistryService) DeleteCollection(ctx context.Context, id string) error {
	return s.collections.Delete(ctx, id)
}

// --- Sales ---

func (s *RegistryService) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	return s.sales.List(ctx)
}

func (s *RegistryService) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if sale.Item == "" || sale.Date == "" || sale.Quantity <= 0 {
		return nil, ErrMissingFields
	}
	created, err := s.sales.Create(ctx, sale)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("sale_id", created.ID).Str("item", created.Item).Int("quantity", created.Quantity).Msg("sale recorded")
	return created, nil
}

func (s *RegistryService) UpdateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if sale.Item == "" || sale.Date == "" || sale.Quantity <= 0 {
		return nil, ErrMissingFields
	}
	return s.sales.Update(ctx, sale)
}

func (s *RegistryService) DeleteSale(ctx context.Context, id string) error {
	return s.sales.Delete(ctx, id)
}

// --- Customers ---

func (s *RegistryService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *RegistryService) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, ErrMissingFields
	}
	return s.customers.Create(ctx, c)
}

func (s *RegistryService) UpdateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, ErrMissingFields
	}
	return s.customers.Update(ctx, c)
}

func (s *RegistryService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

// --- Accounts ---

func (s *RegistryService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

func (s *RegistryService) CreateAccount(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if a.Name == "" {
		return nil, ErrMissingFields
	}
	return s.accounts.Create(ctx, a)
}

func (s *RegistryService) UpdateAccount(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if a.Name == "" {
		return nil, ErrMissingFields
	}
	return s.accounts.Update(ctx, a)
}

func (s *RegistryService) DeleteAccount(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}

// --- Center bank accounts ---

func (s *RegistryService) ListBankAccounts(ctx context.Context) ([]*domain.CenterBankAccount, error) {
	return s.bankAccounts.List(ctx)
}

func (s *RegistryService) CreateBankAccount(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error) {
	if a.BankAccNumber == "" || a.Name == "" || a.IFSC == "" {
		return nil, ErrMissingFields
	}
	return s.bankAccounts.Create(ctx, a)
}

func (s *RegistryService) UpdateBankAccount(ctx context.Context, a *domain.CenterBankAccount) (*domain.CenterBankAccount, error) {
	if a.BankAccNumber == "" || a.Name == "" || a.IFSC == "" {
		return nil, ErrMissingFields
	}
	return s.bankAccounts.Update(ctx, a)
}

func (s *RegistryService) DeleteBankAccount(ctx context.Context, code int) error {
	return s.bankAccounts.Delete(ctx, code)
}
