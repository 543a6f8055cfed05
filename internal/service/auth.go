package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/pkg/auth"
	"github.com/andrevlb/sushi-api/pkg/trm"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	Generate(subject, role string) (string, time.Time, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by every register/login operation.
type AuthResult struct {
	Name      string
	Token     string
	ExpiresAt time.Time
}

// AuthService registers and authenticates customers (role USER) and
// employees (role ADMIN).
type AuthService struct {
	logger    *slog.Logger
	txManager trm.Manager
	customers CustomerRepo
	employees EmployeeRepo
	tokens    TokenIssuer
}

func NewAuthService(logger *slog.Logger, txManager trm.Manager, customers CustomerRepo, employees EmployeeRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{
		logger:    logger.With(slog.String("service", "auth")),
		txManager: txManager,
		customers: customers,
		employees: employees,
		tokens:    tokens,
	}
}

func (s *AuthService) RegisterCustomer(ctx context.Context, in RegisterInput) (AuthResult, error) {
	_, err := s.customers.GetCustomerByEmail(ctx, in.Email)
	if err == nil {
		return AuthResult{}, entities.ErrEmailTaken
	}
	if !errors.Is(err, entities.ErrCustomerNotFound) {
		return AuthResult{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := entities.Customer{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.customers.InsertCustomer(ctx, customer)
		return err
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to register customer: %w", err)
	}

	s.logger.Info("customer registered", slog.String("customer_id", customer.ID.String()))
	return s.issue(customer.Name, customer.Email, auth.RoleUser)
}

func (s *AuthService) LoginCustomer(ctx context.Context, in LoginInput) (AuthResult, error) {
	customer, err := s.customers.GetCustomerByEmail(ctx, in.Email)
	if err != nil {
		return AuthResult{}, err
	}
	if !auth.CheckPassword(customer.PasswordHash, in.Password) {
		return AuthResult{}, entities.ErrInvalidCredentials
	}
	return s.issue(customer.Name, customer.Email, auth.RoleUser)
}

func (s *AuthService) RegisterEmployee(ctx context.Context, in RegisterInput) (AuthResult, error) {
	_, err := s.employees.GetEmployeeByEmail(ctx, in.Email)
	if err == nil {
		return AuthResult{}, entities.ErrEmailTaken
	}
	if !errors.Is(err, entities.ErrEmployeeNotFound) {
		return AuthResult{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := entities.Employee{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.employees.InsertEmployee(ctx, employee)
		return err
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to register employee: %w", err)
	}

	s.logger.Info("employee registered", slog.String("employee_id", employee.ID.String()))
	return s.issue(employee.Name, employee.Email, auth.RoleAdmin)
}

func (s *AuthService) LoginEmployee(ctx context.Context, in LoginInput) (AuthResult, error) {
	employee, err := s.employees.GetEmployeeByEmail(ctx, in.Email)
	if err != nil {
		return AuthResult{}, err
	}
	if !auth.CheckPassword(employee.PasswordHash, in.Password) {
		return AuthResult{}, entities.ErrInvalidCredentials
	}
	return s.issue(employee.Name, employee.Email, auth.RoleAdmin)
}

func (s *AuthService) issue(name, email, role string) (AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(email, role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return AuthResult{Name: name, Token: token, ExpiresAt: expiresAt}, nil
}
