package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/pkg/auth"
	"github.com/andrevlb/sushi-api/pkg/trm"

	"github.com/google/uuid"
)

type CustomerRepo interface {
	ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (entities.Customer, error)
	FindCustomersByName(ctx context.Context, name string) ([]entities.Customer, error)
	InsertCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, c entities.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type AddressInput struct {
	Number       string
	Street       string
	Neighborhood string
}

type CustomerInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	Addresses []AddressInput
}

type CustomerService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CustomerRepo
}

func NewCustomerService(logger *slog.Logger, txManager trm.Manager, repo CustomerRepo) *CustomerService {
	return &CustomerService{
		logger:    logger.With(slog.String("service", "customer")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *CustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error) {
	return s.repo.ListCustomers(ctx, limit, offset)
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *CustomerService) GetCustomerByEmail(ctx context.Context, email string) (entities.Customer, error) {
	return s.repo.GetCustomerByEmail(ctx, email)
}

func (s *CustomerService) FindCustomersByName(ctx context.Context, name string) ([]entities.Customer, error) {
	customers, err := s.repo.FindCustomersByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, entities.ErrCustomerNotFound
	}
	return customers, nil
}

// CreateCustomer rejects a taken email with ErrEmailTaken and writes the
// customer with phone and addresses in one transaction.
func (s *CustomerService) CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return entities.Customer{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := entities.Customer{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        entities.Phone{Number: in.Phone},
		Addresses:    toAddresses(in.Addresses),
	}

	var saved entities.Customer
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.InsertCustomer(ctx, customer)
		return err
	})
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info("customer created", slog.String("customer_id", saved.ID.String()))
	return saved, nil
}

// ReplaceCustomer fully overwrites the customer, its phone and address set.
func (s *CustomerService) ReplaceCustomer(ctx context.Context, id uuid.UUID, in CustomerInput) error {
	existing, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	hash := existing.PasswordHash
	if in.Password != "" {
		hash, err = auth.HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	customer := entities.Customer{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        entities.Phone{Number: in.Phone},
		Addresses:    toAddresses(in.Addresses),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateCustomer(ctx, customer)
	})
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetCustomerByID(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteCustomer(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.GetCustomerByEmail(ctx, email)
	if err == nil {
		return entities.ErrEmailTaken
	}
	if !errors.Is(err, entities.ErrCustomerNotFound) {
		return err
	}
	return nil
}

func toAddresses(in []AddressInput) []entities.Address {
	if len(in) == 0 {
		return nil
	}
	addresses := make([]entities.Address, 0, len(in))
	for _, a := range in {
		addresses = append(addresses, entities.Address{
			Number:       a.Number,
			Street:       a.Street,
			Neighborhood: a.Neighborhood,
		})
	}
	return addresses
}
