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

type EmployeeRepo interface {
	ListEmployees(ctx context.Context, limit, offset int) ([]entities.Employee, error)
	GetEmployeeByID(ctx context.Context, id uuid.UUID) (entities.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (entities.Employee, error)
	InsertEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error)
	UpdateEmployee(ctx context.Context, e entities.Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type EmployeeInput struct {
	Name     string
	Email    string
	Password string
}

type EmployeeService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      EmployeeRepo
}

func NewEmployeeService(logger *slog.Logger, txManager trm.Manager, repo EmployeeRepo) *EmployeeService {
	return &EmployeeService{
		logger:    logger.With(slog.String("service", "employee")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *EmployeeService) ListEmployees(ctx context.Context, limit, offset int) ([]entities.Employee, error) {
	return s.repo.ListEmployees(ctx, limit, offset)
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id uuid.UUID) (entities.Employee, error) {
	return s.repo.GetEmployeeByID(ctx, id)
}

func (s *EmployeeService) GetEmployeeByEmail(ctx context.Context, email string) (entities.Employee, error) {
	return s.repo.GetEmployeeByEmail(ctx, email)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, in EmployeeInput) (entities.Employee, error) {
	_, err := s.repo.GetEmployeeByEmail(ctx, in.Email)
	if err == nil {
		return entities.Employee{}, entities.ErrEmailTaken
	}
	if !errors.Is(err, entities.ErrEmployeeNotFound) {
		return entities.Employee{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return entities.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := entities.Employee{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}

	var saved entities.Employee
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.InsertEmployee(ctx, employee)
		return err
	})
	if err != nil {
		return entities.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	s.logger.Info("employee created", slog.String("employee_id", saved.ID.String()))
	return saved, nil
}

func (s *EmployeeService) ReplaceEmployee(ctx context.Context, id uuid.UUID, in EmployeeInput) error {
	existing, err := s.repo.GetEmployeeByID(ctx, id)
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

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateEmployee(ctx, entities.Employee{
			ID:           id,
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: hash,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetEmployeeByID(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteEmployee(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
