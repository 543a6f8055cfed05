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

var customerColumns = []string{"id", "name", "email", "password"}

type CustomerRepo struct {
	postgresRepo
}

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo {
	return &CustomerRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *CustomerRepo) ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error) {
	b := r.qb.Select(customerColumns...).From("customers").OrderBy("name")
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args := b.MustSql()

	var rows []customerRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}

	result := make([]entities.Customer, 0, len(rows))
	for _, c := range rows {
		customer, err := r.hydrate(ctx, c)
		if err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, nil
}

func (r *CustomerRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error) {
	return r.getCustomer(ctx, sq.Eq{"id": id})
}

func (r *CustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (entities.Customer, error) {
	return r.getCustomer(ctx, sq.Eq{"email": email})
}

func (r *CustomerRepo) getCustomer(ctx context.Context, pred sq.Eq) (entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where(pred).
		MustSql()

	var row customerRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return r.hydrate(ctx, row)
}

func (r *CustomerRepo) FindCustomersByName(ctx context.Context, name string) ([]entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where(sq.ILike{"name": "%" + name + "%"}).
		OrderBy("name").
		MustSql()

	var rows []customerRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find customers by name: %w", err)
	}

	result := make([]entities.Customer, 0, len(rows))
	for _, c := range rows {
		customer, err := r.hydrate(ctx, c)
		if err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, nil
}

// GetAddressByID resolves a delivery address regardless of its owner;
// the order workflow only needs existence and identity.
func (r *CustomerRepo) GetAddressByID(ctx context.Context, id int64) (entities.Address, error) {
	query, args := r.qb.Select("id", "customer_id", "number", "street", "neighborhood").
		From("addresses").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row addressRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return addressToEntity(row), nil
}

// InsertCustomer writes the customer with phone and addresses.
// Atomicity is the caller's transaction.
func (r *CustomerRepo) InsertCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	query, args := r.qb.Insert("customers").
		Columns(customerColumns...).
		Values(c.ID, c.Name, c.Email, c.PasswordHash).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}

	if c.Phone.Number != "" {
		if err := r.upsertPhone(ctx, c.ID, c.Phone.Number); err != nil {
			return entities.Customer{}, err
		}
	}
	if err := r.insertAddresses(ctx, &c); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

// UpdateCustomer overwrites the customer row, phone and the whole address set.
func (r *CustomerRepo) UpdateCustomer(ctx context.Context, c entities.Customer) error {
	query, args := r.qb.Update("customers").
		Set("name", c.Name).
		Set("email", c.Email).
		Set("password", c.PasswordHash).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if err := r.upsertPhone(ctx, c.ID, c.Phone.Number); err != nil {
		return err
	}

	query, args = r.qb.Delete("addresses").Where(sq.Eq{"customer_id": c.ID}).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete addresses: %w", err)
	}
	return r.insertAddresses(ctx, &c)
}

func (r *CustomerRepo) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	for _, table := range []string{"phones", "addresses"} {
		query, args := r.qb.Delete(table).Where(sq.Eq{"customer_id": id}).MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete customer %s: %w", table, err)
		}
	}

	query, args := r.qb.Delete("customers").Where(sq.Eq{"id": id}).MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepo) hydrate(ctx context.Context, row customerRow) (entities.Customer, error) {
	query, args := r.qb.Select("id", "customer_id", "number").
		From("phones").
		Where(sq.Eq{"customer_id": row.ID}).
		MustSql()

	var phone phoneRow
	err := r.getContext(ctx, &phone, query, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, fmt.Errorf("failed to get phone: %w", err)
	}

	query, args = r.qb.Select("id", "customer_id", "number", "street", "neighborhood").
		From("addresses").
		Where(sq.Eq{"customer_id": row.ID}).
		OrderBy("id").
		MustSql()

	var addresses []addressRow
	if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to select addresses: %w", err)
	}

	return customerToEntity(row, phone, addresses), nil
}

func (r *CustomerRepo) upsertPhone(ctx context.Context, customerID uuid.UUID, number string) error {
	query, args := r.qb.Insert("phones").
		Columns("customer_id", "number").
		Values(customerID, number).
		Suffix("ON CONFLICT (customer_id) DO UPDATE SET number = EXCLUDED.number").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert phone: %w", err)
	}
	return nil
}

func (r *CustomerRepo) insertAddresses(ctx context.Context, c *entities.Customer) error {
	for i := range c.Addresses {
		a := &c.Addresses[i]
		query, args := r.qb.Insert("addresses").
			Columns("customer_id", "number", "street", "neighborhood").
			Values(c.ID, a.Number, a.Street, a.Neighborhood).
			Suffix("RETURNING id").
			MustSql()
		if err := r.getContext(ctx, &a.ID, query, args...); err != nil {
			return fmt.Errorf("failed to insert address: %w", err)
		}
	}
	return nil
}
