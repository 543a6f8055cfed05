package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/events"
	"github.com/andrevlb/sushi-api/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderItem(ctx context.Context, id int64) (entities.OrderItem, error)

	// The write methods persist the whole aggregate (order row plus item
	// rows); callers wrap them in a single transaction.
	InsertOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type CustomerStore interface {
	GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error)
}

type AddressStore interface {
	GetAddressByID(ctx context.Context, id int64) (entities.Address, error)
}

type ProductStore interface {
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event events.OrderEvent) error
}

type OrderLineInput struct {
	// ItemID is zero for new lines; on replace a non-zero id mutates the
	// stored item in place.
	ItemID    int64
	ProductID int64
	Quantity  int
}

type CreateOrderInput struct {
	CustomerID        uuid.UUID
	DeliveryAddressID int64
	Items             []OrderLineInput
}

type ReplaceOrderInput struct {
	OrderID           int64
	DeliveryAddressID int64
	Items             []OrderLineInput
}

// OrderService is the sole authority over Order aggregates: it resolves
// every foreign reference before anything is written, snapshots product
// prices into items and computes totals server-side.
type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	customers CustomerStore
	addresses AddressStore
	products  ProductStore
	publisher EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	customers CustomerStore,
	addresses AddressStore,
	products ProductStore,
	publisher EventPublisher,
) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		customers: customers,
		addresses: addresses,
		products:  products,
		publisher: publisher,
	}
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx, limit, offset)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

// CreateOrder resolves customer, address and every product, builds the
// aggregate with snapshotted prices and persists it atomically. Nothing is
// written when any reference fails to resolve.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	customer, err := s.customers.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve customer: %w", err)
	}
	address, err := s.addresses.GetAddressByID(ctx, in.DeliveryAddressID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve address: %w", err)
	}

	order := entities.Order{
		CustomerID:        customer.ID,
		DeliveryAddressID: address.ID,
		OrderDate:         time.Now().UTC(),
		Items:             make([]entities.OrderItem, 0, len(in.Items)),
	}
	for _, line := range in.Items {
		product, err := s.products.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to resolve product: %w", err)
		}
		var item entities.OrderItem
		item.Reprice(product, line.Quantity)
		order.Items = append(order.Items, item)
	}
	order.CalculateTotal()

	var saved entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.InsertOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("order created",
		slog.Int64("order_id", saved.ID),
		slog.String("customer_id", saved.CustomerID.String()),
		slog.Int("items", len(saved.Items)),
	)
	s.publish(ctx, events.OrderCreated, saved)
	return saved, nil
}

// ReplaceOrder applies full-replace semantics: the submitted lines become
// the complete item set. Lines carrying an item id mutate the stored item
// in place; lines without one are always new, even when they duplicate an
// existing line. Every line is re-snapshotted from its product.
func (s *OrderService) ReplaceOrder(ctx context.Context, in ReplaceOrderInput) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, in.OrderID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve order: %w", err)
	}
	address, err := s.addresses.GetAddressByID(ctx, in.DeliveryAddressID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve address: %w", err)
	}
	order.DeliveryAddressID = address.ID

	items := make([]entities.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		product, err := s.products.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to resolve product: %w", err)
		}

		var item entities.OrderItem
		if line.ItemID != 0 {
			item, err = s.repo.GetOrderItem(ctx, line.ItemID)
			if err != nil {
				return entities.Order{}, fmt.Errorf("failed to resolve order item: %w", err)
			}
		}
		item.OrderID = order.ID
		item.Reprice(product, line.Quantity)
		items = append(items, item)
	}
	order.Items = items
	order.CalculateTotal()

	var saved entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.UpdateOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("order replaced",
		slog.Int64("order_id", saved.ID),
		slog.Int("items", len(saved.Items)),
	)
	s.publish(ctx, events.OrderUpdated, saved)
	return saved, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to resolve order: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteOrder(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info("order deleted", slog.Int64("order_id", id))
	s.publish(ctx, events.OrderDeleted, order)
	return nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order entities.Order) {
	if s.publisher == nil {
		return
	}
	event := events.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", eventType),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
