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

var categoryColumns = []string{"id", "name", "description"}

type CategoryRepo struct {
	postgresRepo
}

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo {
	return &CategoryRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *CategoryRepo) ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error) {
	b := r.qb.Select(categoryColumns...).From("categories").OrderBy("id")
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args := b.MustSql()

	var rows []categoryRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	result := make([]entities.Category, 0, len(rows))
	for _, c := range rows {
		result = append(result, categoryToEntity(c))
	}
	return result, nil
}

func (r *CategoryRepo) GetCategoryByID(ctx context.Context, id int64) (entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row categoryRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return categoryToEntity(row), nil
}

func (r *CategoryRepo) FindCategoriesByName(ctx context.Context, name string) ([]entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.ILike{"name": "%" + name + "%"}).
		OrderBy("id").
		MustSql()

	var rows []categoryRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find categories by name: %w", err)
	}

	result := make([]entities.Category, 0, len(rows))
	for _, c := range rows {
		result = append(result, categoryToEntity(c))
	}
	return result, nil
}

func (r *CategoryRepo) InsertCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	query, args := r.qb.Insert("categories").
		Columns("name", "description").
		Values(c.Name, c.Description).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &c.ID, query, args...); err != nil {
		return entities.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) UpdateCategory(ctx context.Context, c entities.Category) error {
	query, args := r.qb.Update("categories").
		Set("name", c.Name).
		Set("description", c.Description).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) DeleteCategory(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("category_product").Where(sq.Eq{"category_id": id}).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete category links: %w", err)
	}

	query, args = r.qb.Delete("categories").Where(sq.Eq{"id": id}).MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrCategoryNotFound
	}
	return nil
}
