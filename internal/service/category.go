package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/pkg/trm"
)

type CategoryRepo interface {
	ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (entities.Category, error)
	FindCategoriesByName(ctx context.Context, name string) ([]entities.Category, error)
	InsertCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	UpdateCategory(ctx context.Context, c entities.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryInput struct {
	Name        string
	Description string
}

type CategoryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CategoryRepo
}

func NewCategoryService(logger *slog.Logger, txManager trm.Manager, repo CategoryRepo) *CategoryService {
	return &CategoryService{
		logger:    logger.With(slog.String("service", "category")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error) {
	return s.repo.ListCategories(ctx, limit, offset)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (entities.Category, error) {
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *CategoryService) FindCategoriesByName(ctx context.Context, name string) ([]entities.Category, error) {
	categories, err := s.repo.FindCategoriesByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, entities.ErrCategoryNotFound
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CategoryInput) (entities.Category, error) {
	existing, err := s.repo.FindCategoriesByName(ctx, in.Name)
	if err != nil {
		return entities.Category{}, err
	}
	if len(existing) > 0 {
		return entities.Category{}, entities.ErrCategoryExists
	}

	var saved entities.Category
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.InsertCategory(ctx, entities.Category{Name: in.Name, Description: in.Description})
		return err
	})
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to save category: %w", err)
	}

	s.logger.Info("category created", slog.Int64("category_id", saved.ID), slog.String("name", saved.Name))
	return saved, nil
}

func (s *CategoryService) ReplaceCategory(ctx context.Context, id int64, in CategoryInput) error {
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateCategory(ctx, entities.Category{ID: id, Name: in.Name, Description: in.Description})
	})
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteCategory(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
