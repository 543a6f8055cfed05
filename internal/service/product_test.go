package service_test

import (
	"context"
	"testing"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/service"
	mocks "github.com/andrevlb/sushi-api/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetProductByID(t *testing.T) {
	product := entities.Product{ID: 1, Name: "Salmon Nigiri", Price: decimal.RequireFromString("8.99")}

	t.Run("cache hit skips the repo", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockProductCache(t)

		cache.EXPECT().Get(int64(1)).Return(product, true)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), cache)

		got, err := svc.GetProductByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockProductCache(t)

		cache.EXPECT().Get(int64(1)).Return(entities.Product{}, false)
		repo.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(product, nil)
		cache.EXPECT().Set(int64(1), product)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), cache)

		got, err := svc.GetProductByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("nil cache is allowed", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		repo.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(product, nil)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), nil)

		got, err := svc.GetProductByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})
}

func TestProductService_FindProductsByName(t *testing.T) {
	t.Run("no matches maps to not found", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		repo.EXPECT().FindProductsByName(mock.Anything, "wasabi").Return(nil, nil)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), nil)

		_, err := svc.FindProductsByName(context.Background(), "wasabi")
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestProductService_CreateProduct(t *testing.T) {
	in := service.ProductInput{
		Name:            "Salmon Nigiri",
		Description:     "Two pieces",
		Price:           decimal.RequireFromString("8.99"),
		PortionQuantity: 2,
		PortionUnit:     "pieces",
		URLImage:        "https://cdn.example.com/nigiri.png",
		CategoryIDs:     []int64{3},
	}

	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		categories := mocks.NewMockCategoryStore(t)

		repo.EXPECT().FindProductsByName(mock.Anything, "Salmon Nigiri").Return(nil, nil)
		categories.EXPECT().GetCategoryByID(mock.Anything, int64(3)).
			Return(entities.Category{ID: 3, Name: "Nigiri"}, nil)
		repo.EXPECT().InsertProduct(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
				p.ID = 1
				return p, nil
			})

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo, categories, nil)

		created, err := svc.CreateProduct(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, []int64{3}, created.CategoryIDs)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		repo.EXPECT().FindProductsByName(mock.Anything, "Salmon Nigiri").
			Return([]entities.Product{{ID: 1}}, nil)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), nil)

		_, err := svc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrProductExists)
	})

	t.Run("unknown category aborts", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		categories := mocks.NewMockCategoryStore(t)

		repo.EXPECT().FindProductsByName(mock.Anything, "Salmon Nigiri").Return(nil, nil)
		categories.EXPECT().GetCategoryByID(mock.Anything, int64(3)).
			Return(entities.Category{}, entities.ErrCategoryNotFound)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo, categories, nil)

		_, err := svc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("evicts the cache", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockProductCache(t)

		repo.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(entities.Product{ID: 1}, nil)
		repo.EXPECT().DeleteProduct(mock.Anything, int64(1)).Return(nil)
		cache.EXPECT().Remove(int64(1))

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), cache)

		assert.NoError(t, svc.DeleteProduct(context.Background(), 1))
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		repo.EXPECT().GetProductByID(mock.Anything, int64(404)).
			Return(entities.Product{}, entities.ErrProductNotFound)

		svc := service.NewProductService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCategoryStore(t), nil)

		assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 404), entities.ErrProductNotFound)
	})
}
