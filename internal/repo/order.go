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

var orderColumns = []string{"id", "customer_id", "delivery_address_id", "order_date", "total_amount"}

var orderItemColumns = []string{"id", "order_id", "product_id", "quantity", "unit_price", "total_price"}

type OrderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{postgresRepo: newPostgresRepo(db)}
}

// ListOrders returns orders with their items, newest first.
// limit <= 0 disables pagination.
func (r *OrderRepo) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	b := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("order_date DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args := b.MustSql()

	var orders []orderRow
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []orderItemRow
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsByOrder := make(map[int64][]orderItemRow, len(ids))
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, orderToEntity(o, itemsByOrder[o.ID]))
	}
	return result, nil
}

func (r *OrderRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order orderRow
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("id").
		MustSql()

	var items []orderItemRow
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to select order items: %w", err)
	}

	return orderToEntity(order, items), nil
}

func (r *OrderRepo) GetOrderItem(ctx context.Context, id int64) (entities.OrderItem, error) {
	query, args := r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"id": id}).
		MustSql()

	var item orderItemRow
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderItem{}, entities.ErrOrderItemNotFound
	}
	if err != nil {
		return entities.OrderItem{}, fmt.Errorf("failed to get order item: %w", err)
	}
	return orderItemToEntity(item), nil
}

// InsertOrder writes the order row and all item rows and returns the stored
// aggregate with assigned ids. Atomicity is the caller's transaction.
func (r *OrderRepo) InsertOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("customer_id", "delivery_address_id", "order_date", "total_amount").
		Values(order.CustomerID, order.DeliveryAddressID, order.OrderDate, order.TotalAmount).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &order.ID, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if err := r.insertItem(ctx, &order.Items[i]); err != nil {
			return entities.Order{}, err
		}
	}
	return order, nil
}

// UpdateOrder overwrites the order row and replaces its item collection:
// stored items absent from order.Items are deleted, items with an id are
// updated, items without one are inserted.
func (r *OrderRepo) UpdateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("delivery_address_id", order.DeliveryAddressID).
		Set("total_amount", order.TotalAmount).
		Where(sq.Eq{"id": order.ID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	keep := make([]int64, 0, len(order.Items))
	for _, it := range order.Items {
		if it.ID != 0 {
			keep = append(keep, it.ID)
		}
	}
	del := r.qb.Delete("order_items").Where(sq.Eq{"order_id": order.ID})
	if len(keep) > 0 {
		del = del.Where(sq.NotEq{"id": keep})
	}
	query, args = del.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to delete removed order items: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if item.ID == 0 {
			if err := r.insertItem(ctx, item); err != nil {
				return entities.Order{}, err
			}
			continue
		}
		query, args = r.qb.Update("order_items").
			Set("product_id", item.ProductID).
			Set("quantity", item.Quantity).
			Set("unit_price", item.UnitPrice).
			Set("total_price", item.TotalPrice).
			Where(sq.Eq{"id": item.ID, "order_id": order.ID}).
			MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to update order item: %w", err)
		}
	}
	return order, nil
}

func (r *OrderRepo) insertItem(ctx context.Context, item *entities.OrderItem) error {
	query, args := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price", "total_price").
		Values(item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &item.ID, query, args...); err != nil {
		return fmt.Errorf("failed to insert order item: %w", err)
	}
	return nil
}

func (r *OrderRepo) DeleteOrder(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("order_items").Where(sq.Eq{"order_id": id}).MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	query, args = r.qb.Delete("orders").Where(sq.Eq{"id": id}).MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
