package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andrevlb/sushi-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var employeeColumns = []string{"id", "name", "email", "password"}

type EmployeeRepo struct {
	postgresRepo
}

func NewEmployeeRepo(db *sqlx.DB) *EmployeeRepo {
	return &EmployeeRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *EmployeeRepo) ListEmployees(ctx context.Context, limit, offset int) ([]entities.Employee, error) {
	b := r.qb.Select(employeeColumns...).From("employees").OrderBy("name")
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args := b.MustSql()

	var rows []employeeRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select employees: %w", err)
	}

	result := make([]entities.Employee, 0, len(rows))
	for _, e := range rows {
		result = append(result, employeeToEntity(e))
	}
	return result, nil
}

func (r *EmployeeRepo) GetEmployeeByID(ctx context.Context, id uuid.UUID) (entities.Employee, error) {
	return r.getEmployee(ctx, sq.Eq{"id": id})
}

func (r *EmployeeRepo) GetEmployeeByEmail(ctx context.Context, email string) (entities.Employee, error) {
	return r.getEmployee(ctx, sq.Eq{"email": email})
}

func (r *EmployeeRepo) getEmployee(ctx context.Context, pred sq.Eq) (entities.Employee, error) {
	query, args := r.qb.Select(employeeColumns...).
		From("employees").
		Where(pred).
		MustSql()

	var row employeeRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Employee{}, entities.ErrEmployeeNotFound
	}
	if err != nil {
		return entities.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employeeToEntity(row), nil
}

func (r *EmployeeRepo) InsertEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	query, args := r.qb.Insert("employees").
		Columns(employeeColumns...).
		Values(e.ID, e.Name, e.Email, e.PasswordHash).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) UpdateEmployee(ctx context.Context, e entities.Employee) error {
	query, args := r.qb.Update("employees").
		Set("name", e.Name).
		Set("email", e.Email).
		Set("password", e.PasswordHash).
		Where(sq.Eq{"id": e.ID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	query, args := r.qb.Delete("employees").Where(sq.Eq{"id": id}).MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrEmployeeNotFound
	}
	return nil
}
