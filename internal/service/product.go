package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/pkg/trm"

	"github.com/shopspring/decimal"
)

type ProductRepo interface {
	ListProducts(ctx context.Context, limit, offset int) ([]entities.Product, error)
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
	FindProductsByName(ctx context.Context, name string) ([]entities.Product, error)
	InsertProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type CategoryStore interface {
	GetCategoryByID(ctx context.Context, id int64) (entities.Category, error)
}

type ProductCache interface {
	Get(id int64) (entities.Product, bool)
	Set(id int64, p entities.Product)
	Remove(id int64)
}

type ProductInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	PortionQuantity int
	PortionUnit     string
	URLImage        string
	CategoryIDs     []int64
}

type ProductService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	repo       ProductRepo
	categories CategoryStore
	cache      ProductCache
}

func NewProductService(logger *slog.Logger, txManager trm.Manager, repo ProductRepo, categories CategoryStore, cache ProductCache) *ProductService {
	return &ProductService{
		logger:     logger.With(slog.String("service", "product")),
		txManager:  txManager,
		repo:       repo,
		categories: categories,
		cache:      cache,
	}
}

func (s *ProductService) ListProducts(ctx context.Context, limit, offset int) ([]entities.Product, error) {
	return s.repo.ListProducts(ctx, limit, offset)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (entities.Product, error) {
	if s.cache != nil {
		if product, ok := s.cache.Get(id); ok {
			return product, nil
		}
	}
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if s.cache != nil {
		s.cache.Set(id, product)
	}
	return product, nil
}

func (s *ProductService) FindProductsByName(ctx context.Context, name string) ([]entities.Product, error) {
	products, err := s.repo.FindProductsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, entities.ErrProductNotFound
	}
	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (entities.Product, error) {
	existing, err := s.repo.FindProductsByName(ctx, in.Name)
	if err != nil {
		return entities.Product{}, err
	}
	if len(existing) > 0 {
		return entities.Product{}, entities.ErrProductExists
	}

	product, err := s.buildProduct(ctx, in)
	if err != nil {
		return entities.Product{}, err
	}

	var saved entities.Product
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.InsertProduct(ctx, product)
		return err
	})
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info("product created", slog.Int64("product_id", saved.ID), slog.String("name", saved.Name))
	return saved, nil
}

func (s *ProductService) ReplaceProduct(ctx context.Context, id int64, in ProductInput) error {
	if _, err := s.repo.GetProductByID(ctx, id); err != nil {
		return err
	}

	product, err := s.buildProduct(ctx, in)
	if err != nil {
		return err
	}
	product.ID = id

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateProduct(ctx, product)
	})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(id, product)
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.repo.GetProductByID(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteProduct(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if s.cache != nil {
		s.cache.Remove(id)
	}
	return nil
}

// buildProduct maps the input and resolves every referenced category.
func (s *ProductService) buildProduct(ctx context.Context, in ProductInput) (entities.Product, error) {
	categoryIDs := make([]int64, 0, len(in.CategoryIDs))
	for _, id := range in.CategoryIDs {
		category, err := s.categories.GetCategoryByID(ctx, id)
		if err != nil {
			return entities.Product{}, fmt.Errorf("failed to resolve category: %w", err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	return entities.Product{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		PortionQuantity: in.PortionQuantity,
		PortionUnit:     in.PortionUnit,
		URLImage:        in.URLImage,
		CategoryIDs:     categoryIDs,
	}, nil
}
