package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andrevlb/sushi-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var productColumns = []string{"id", "name", "description", "price", "portion_quantity", "portion_unit", "url_image"}

type ProductRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *ProductRepo) ListProducts(ctx context.Context, limit, offset int) ([]entities.Product, error) {
	b := r.qb.Select(productColumns...).From("products").OrderBy("id")
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args := b.MustSql()

	var rows []productRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	return r.withCategories(ctx, rows)
}

func (r *ProductRepo) GetProductByID(ctx context.Context, id int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row productRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	categoryIDs, err := r.categoryIDs(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	return productToEntity(row, categoryIDs), nil
}

func (r *ProductRepo) FindProductsByName(ctx context.Context, name string) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.ILike{"name": "%" + name + "%"}).
		OrderBy("id").
		MustSql()

	var rows []productRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find products by name: %w", err)
	}
	return r.withCategories(ctx, rows)
}

func (r *ProductRepo) InsertProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns("name", "description", "price", "portion_quantity", "portion_unit", "url_image").
		Values(p.Name, p.Description, p.Price, p.PortionQuantity, p.PortionUnit, p.URLImage).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &p.ID, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	if err := r.replaceCategoryLinks(ctx, p.ID, p.CategoryIDs); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price", p.Price).
		Set("portion_quantity", p.PortionQuantity).
		Set("portion_unit", p.PortionUnit).
		Set("url_image", p.URLImage).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return r.replaceCategoryLinks(ctx, p.ID, p.CategoryIDs)
}

func (r *ProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("category_product").Where(sq.Eq{"product_id": id}).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete product category links: %w", err)
	}

	query, args = r.qb.Delete("products").Where(sq.Eq{"id": id}).MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) replaceCategoryLinks(ctx context.Context, productID int64, categoryIDs []int64) error {
	query, args := r.qb.Delete("category_product").Where(sq.Eq{"product_id": productID}).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear product category links: %w", err)
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	b := r.qb.Insert("category_product").Columns("product_id", "category_id")
	for _, id := range categoryIDs {
		b = b.Values(productID, id)
	}
	query, args = b.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product category links: %w", err)
	}
	return nil
}

func (r *ProductRepo) categoryIDs(ctx context.Context, productID int64) ([]int64, error) {
	query, args := r.qb.Select("category_id").
		From("category_product").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("category_id").
		MustSql()

	var ids []int64
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product categories: %w", err)
	}
	return ids, nil
}

type categoryLinkRow struct {
	ProductID  int64 `db:"product_id"`
	CategoryID int64 `db:"category_id"`
}

func (r *ProductRepo) withCategories(ctx context.Context, rows []productRow) ([]entities.Product, error) {
	if len(rows) == 0 {
		return []entities.Product{}, nil
	}

	ids := make([]int64, len(rows))
	for i, p := range rows {
		ids[i] = p.ID
	}

	query, args := r.qb.Select("product_id", "category_id").
		From("category_product").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("category_id").
		MustSql()

	var links []categoryLinkRow
	if err := r.selectContext(ctx, &links, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product categories: %w", err)
	}
	byProduct := make(map[int64][]int64, len(rows))
	for _, l := range links {
		byProduct[l.ProductID] = append(byProduct[l.ProductID], l.CategoryID)
	}

	result := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		result = append(result, productToEntity(p, byProduct[p.ID]))
	}
	return result, nil
}
