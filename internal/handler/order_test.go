package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/handler"
	"github.com/andrevlb/sushi-api/internal/handler/mocks"
	"github.com/andrevlb/sushi-api/internal/middleware"
	"github.com/andrevlb/sushi-api/internal/service"
	"github.com/andrevlb/sushi-api/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderTestEnv struct {
	svc    *mocks.MockOrderService
	router chi.Router
	tokens *auth.TokenManager
}

func newOrderTestEnv(t *testing.T) orderTestEnv {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handler.NewOrderHandler(logger, svc, middleware.NewGuard(tokens))
	router := chi.NewRouter()
	router.Route("/api", h.Init)

	return orderTestEnv{svc: svc, router: router, tokens: tokens}
}

func (e orderTestEnv) request(t *testing.T, method, target, role string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if role != "" {
		token, _, err := e.tokens.Generate("test@example.com", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_Create(t *testing.T) {
	customerID := uuid.New()

	t.Run("201 with server-computed pricing", func(t *testing.T) {
		env := newOrderTestEnv(t)

		saved := entities.Order{
			ID:                42,
			CustomerID:        customerID,
			DeliveryAddressID: 10,
			TotalAmount:       decimal.RequireFromString("17.98"),
			Items: []entities.OrderItem{{
				ID: 100, OrderID: 42, ProductID: 1, Quantity: 2,
				UnitPrice:  decimal.RequireFromString("8.99"),
				TotalPrice: decimal.RequireFromString("17.98"),
			}},
		}
		env.svc.EXPECT().
			CreateOrder(mock.Anything, service.CreateOrderInput{
				CustomerID:        customerID,
				DeliveryAddressID: 10,
				Items:             []service.OrderLineInput{{ProductID: 1, Quantity: 2}},
			}).
			Return(saved, nil)

		body := map[string]any{
			"customer_id":         customerID,
			"delivery_address_id": 10,
			"items":               []map[string]any{{"product_id": 1, "quantity": 2}},
		}
		rec := env.request(t, http.MethodPost, "/api/orders", auth.RoleUser, body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(42), got.ID)
		assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("17.98")))
	})

	t.Run("400 on non positive quantity", func(t *testing.T) {
		env := newOrderTestEnv(t)

		body := map[string]any{
			"customer_id":         customerID,
			"delivery_address_id": 10,
			"items":               []map[string]any{{"product_id": 1, "quantity": 0}},
		}
		rec := env.request(t, http.MethodPost, "/api/orders", auth.RoleUser, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("404 when a reference does not resolve", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrProductNotFound)

		body := map[string]any{
			"customer_id":         customerID,
			"delivery_address_id": 10,
			"items":               []map[string]any{{"product_id": 777, "quantity": 1}},
		}
		rec := env.request(t, http.MethodPost, "/api/orders", auth.RoleUser, body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("401 without token", func(t *testing.T) {
		env := newOrderTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/orders", "", map[string]any{})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrderHandler_Replace(t *testing.T) {
	t.Run("200 and empty item set is accepted", func(t *testing.T) {
		env := newOrderTestEnv(t)

		env.svc.EXPECT().
			ReplaceOrder(mock.Anything, service.ReplaceOrderInput{
				OrderID:           42,
				DeliveryAddressID: 10,
				Items:             []service.OrderLineInput{},
			}).
			Return(entities.Order{ID: 42, DeliveryAddressID: 10}, nil)

		body := map[string]any{"id": 42, "delivery_address_id": 10, "items": []any{}}
		rec := env.request(t, http.MethodPut, "/api/orders", auth.RoleAdmin, body)

		require.Equal(t, http.StatusOK, rec.Code)
		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Empty(t, got.Items)
		assert.True(t, got.TotalAmount.IsZero())
	})

	t.Run("403 for USER role", func(t *testing.T) {
		env := newOrderTestEnv(t)

		body := map[string]any{"id": 42, "delivery_address_id": 10, "items": []any{}}
		rec := env.request(t, http.MethodPut, "/api/orders", auth.RoleUser, body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("404 for unknown order", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().ReplaceOrder(mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNotFound)

		body := map[string]any{"id": 404, "delivery_address_id": 10, "items": []any{}}
		rec := env.request(t, http.MethodPut, "/api/orders", auth.RoleAdmin, body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	t.Run("200", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().GetOrderByID(mock.Anything, int64(42)).
			Return(entities.Order{ID: 42}, nil)

		rec := env.request(t, http.MethodGet, "/api/orders/42", auth.RoleUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("404", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().GetOrderByID(mock.Anything, int64(404)).
			Return(entities.Order{}, entities.ErrOrderNotFound)

		rec := env.request(t, http.MethodGet, "/api/orders/404", auth.RoleUser, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("400 on malformed id", func(t *testing.T) {
		env := newOrderTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/orders/abc", auth.RoleUser, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		env := newOrderTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/orders", auth.RoleUser, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("paging params are forwarded", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().ListOrders(mock.Anything, 10, 20).Return([]entities.Order{}, nil)

		rec := env.request(t, http.MethodGet, "/api/orders?limit=10&offset=20", auth.RoleAdmin, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unpaged list", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().ListOrders(mock.Anything, 0, 0).Return([]entities.Order{}, nil)

		rec := env.request(t, http.MethodGet, "/api/orders/list", auth.RoleAdmin, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	t.Run("204", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil)

		rec := env.request(t, http.MethodDelete, "/api/orders/42", auth.RoleUser, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("404", func(t *testing.T) {
		env := newOrderTestEnv(t)
		env.svc.EXPECT().DeleteOrder(mock.Anything, int64(404)).
			Return(entities.ErrOrderNotFound)

		rec := env.request(t, http.MethodDelete, "/api/orders/404", auth.RoleUser, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
