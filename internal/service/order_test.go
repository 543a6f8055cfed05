package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/service"
	mocks "github.com/andrevlb/sushi-api/internal/service/mocks"
	txMocks "github.com/andrevlb/sushi-api/pkg/trm/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	t.Helper()
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).
		Maybe()
	return tx
}

func TestOrderService_CreateOrder(t *testing.T) {
	customerID := uuid.New()

	customer := entities.Customer{ID: customerID, Name: "Ana"}
	address := entities.Address{ID: 10, Street: "Rua A"}
	nigiri := entities.Product{ID: 1, Name: "Salmon Nigiri", Price: decimal.RequireFromString("8.99")}
	roll := entities.Product{ID: 2, Name: "Philadelphia Roll", Price: decimal.RequireFromString("24.50")}

	type Mocks struct {
		repo      *mocks.MockOrderRepo
		customers *mocks.MockCustomerStore
		addresses *mocks.MockAddressStore
		products  *mocks.MockProductStore
		publisher *mocks.MockEventPublisher
	}

	testCases := []struct {
		name         string
		in           service.CreateOrderInput
		mockBehavior func(m Mocks)
		check        func(t *testing.T, order entities.Order)
		wantErr      error
	}{
		{
			name: "OK",
			in: service.CreateOrderInput{
				CustomerID:        customerID,
				DeliveryAddressID: 10,
				Items: []service.OrderLineInput{
					{ProductID: 1, Quantity: 2},
					{ProductID: 2, Quantity: 1},
				},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().GetCustomerByID(mock.Anything, customerID).Return(customer, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(10)).Return(address, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(nigiri, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(2)).Return(roll, nil)
				m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, order entities.Order) (entities.Order, error) {
						order.ID = 42
						return order, nil
					})
				m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				assert.Equal(t, int64(42), order.ID)
				require.Len(t, order.Items, 2)
				assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("8.99")))
				assert.True(t, order.Items[0].TotalPrice.Equal(decimal.RequireFromString("17.98")))
				assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("42.48")))
			},
		},
		{
			name: "unknown customer aborts before any write",
			in: service.CreateOrderInput{
				CustomerID:        customerID,
				DeliveryAddressID: 10,
				Items:             []service.OrderLineInput{{ProductID: 1, Quantity: 1}},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().GetCustomerByID(mock.Anything, customerID).
					Return(entities.Customer{}, entities.ErrCustomerNotFound)
			},
			wantErr: entities.ErrCustomerNotFound,
		},
		{
			name: "unknown address aborts before any write",
			in: service.CreateOrderInput{
				CustomerID:        customerID,
				DeliveryAddressID: 99,
				Items:             []service.OrderLineInput{{ProductID: 1, Quantity: 1}},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().GetCustomerByID(mock.Anything, customerID).Return(customer, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(99)).
					Return(entities.Address{}, entities.ErrAddressNotFound)
			},
			wantErr: entities.ErrAddressNotFound,
		},
		{
			name: "unknown product aborts before any write",
			in: service.CreateOrderInput{
				CustomerID:        customerID,
				DeliveryAddressID: 10,
				Items: []service.OrderLineInput{
					{ProductID: 1, Quantity: 1},
					{ProductID: 777, Quantity: 1},
				},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().GetCustomerByID(mock.Anything, customerID).Return(customer, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(10)).Return(address, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(nigiri, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(777)).
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "insert failure is surfaced",
			in: service.CreateOrderInput{
				CustomerID:        customerID,
				DeliveryAddressID: 10,
				Items:             []service.OrderLineInput{{ProductID: 1, Quantity: 1}},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().GetCustomerByID(mock.Anything, customerID).Return(customer, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(10)).Return(address, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(nigiri, nil)
				m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				repo:      mocks.NewMockOrderRepo(t),
				customers: mocks.NewMockCustomerStore(t),
				addresses: mocks.NewMockAddressStore(t),
				products:  mocks.NewMockProductStore(t),
				publisher: mocks.NewMockEventPublisher(t),
			}
			tc.mockBehavior(m)

			svc := service.NewOrderService(newTestLogger(), passthroughTx(t),
				m.repo, m.customers, m.addresses, m.products, m.publisher)

			order, err := svc.CreateOrder(context.Background(), tc.in)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}

func TestOrderService_ReplaceOrder(t *testing.T) {
	customerID := uuid.New()

	address := entities.Address{ID: 10}
	nigiri := entities.Product{ID: 1, Price: decimal.RequireFromString("8.99")}
	roll := entities.Product{ID: 2, Price: decimal.RequireFromString("24.50")}

	existing := entities.Order{
		ID:                42,
		CustomerID:        customerID,
		DeliveryAddressID: 5,
		Items: []entities.OrderItem{
			{ID: 100, OrderID: 42, ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("7.00")},
		},
	}

	type Mocks struct {
		repo      *mocks.MockOrderRepo
		addresses *mocks.MockAddressStore
		products  *mocks.MockProductStore
		publisher *mocks.MockEventPublisher
	}

	testCases := []struct {
		name         string
		in           service.ReplaceOrderInput
		mockBehavior func(m Mocks)
		check        func(t *testing.T, order entities.Order)
		wantErr      error
	}{
		{
			name: "kept line is repriced in place, new line gets no id",
			in: service.ReplaceOrderInput{
				OrderID:           42,
				DeliveryAddressID: 10,
				Items: []service.OrderLineInput{
					{ItemID: 100, ProductID: 1, Quantity: 3},
					{ProductID: 2, Quantity: 1},
				},
			},
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(existing, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(10)).Return(address, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(nigiri, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(2)).Return(roll, nil)
				m.repo.EXPECT().GetOrderItem(mock.Anything, int64(100)).Return(existing.Items[0], nil)
				m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, order entities.Order) (entities.Order, error) {
						return order, nil
					})
				m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				require.Len(t, order.Items, 2)
				assert.Equal(t, int64(100), order.Items[0].ID)
				assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("8.99")),
					"kept line re-snapshots the current product price")
				assert.Zero(t, order.Items[1].ID)
				assert.Equal(t, int64(10), order.DeliveryAddressID)
				assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("51.47")))
			},
		},
		{
			name: "empty item set clears the order",
			in: service.ReplaceOrderInput{
				OrderID:           42,
				DeliveryAddressID: 10,
				Items:             nil,
			},
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(existing, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(10)).Return(address, nil)
				m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, order entities.Order) (entities.Order, error) {
						return order, nil
					})
				m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, order entities.Order) {
				assert.Empty(t, order.Items)
				assert.True(t, order.TotalAmount.IsZero())
			},
		},
		{
			name: "unknown order",
			in:   service.ReplaceOrderInput{OrderID: 404, DeliveryAddressID: 10},
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "unknown item id",
			in: service.ReplaceOrderInput{
				OrderID:           42,
				DeliveryAddressID: 10,
				Items:             []service.OrderLineInput{{ItemID: 999, ProductID: 1, Quantity: 1}},
			},
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(existing, nil)
				m.addresses.EXPECT().GetAddressByID(mock.Anything, int64(10)).Return(address, nil)
				m.products.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(nigiri, nil)
				m.repo.EXPECT().GetOrderItem(mock.Anything, int64(999)).
					Return(entities.OrderItem{}, entities.ErrOrderItemNotFound)
			},
			wantErr: entities.ErrOrderItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				repo:      mocks.NewMockOrderRepo(t),
				addresses: mocks.NewMockAddressStore(t),
				products:  mocks.NewMockProductStore(t),
				publisher: mocks.NewMockEventPublisher(t),
			}
			tc.mockBehavior(m)

			svc := service.NewOrderService(newTestLogger(), passthroughTx(t),
				m.repo, mocks.NewMockCustomerStore(t), m.addresses, m.products, m.publisher)

			order, err := svc.ReplaceOrder(context.Background(), tc.in)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		publisher := mocks.NewMockEventPublisher(t)

		repo.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(entities.Order{ID: 42}, nil)
		repo.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCustomerStore(t), mocks.NewMockAddressStore(t), mocks.NewMockProductStore(t), publisher)

		assert.NoError(t, svc.DeleteOrder(context.Background(), 42))
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)

		repo.EXPECT().GetOrderByID(mock.Anything, int64(404)).
			Return(entities.Order{}, entities.ErrOrderNotFound)

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCustomerStore(t), mocks.NewMockAddressStore(t), mocks.NewMockProductStore(t), nil)

		assert.ErrorIs(t, svc.DeleteOrder(context.Background(), 404), entities.ErrOrderNotFound)
	})

	t.Run("publish failure does not fail the operation", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		publisher := mocks.NewMockEventPublisher(t)

		repo.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(entities.Order{ID: 42}, nil)
		repo.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil)
		publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("kafka down"))

		svc := service.NewOrderService(newTestLogger(), passthroughTx(t), repo,
			mocks.NewMockCustomerStore(t), mocks.NewMockAddressStore(t), mocks.NewMockProductStore(t), publisher)

		assert.NoError(t, svc.DeleteOrder(context.Background(), 42))
	})
}
