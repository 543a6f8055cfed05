package handler_test

import (
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
	"github.com/andrevlb/sushi-api/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerTestEnv struct {
	svc    *mocks.MockCustomerService
	router chi.Router
	tokens *auth.TokenManager
}

func newCustomerTestEnv(t *testing.T) customerTestEnv {
	t.Helper()

	svc := mocks.NewMockCustomerService(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handler.NewCustomerHandler(logger, svc, middleware.NewGuard(tokens))
	router := chi.NewRouter()
	router.Route("/api", h.Init)

	return customerTestEnv{svc: svc, router: router, tokens: tokens}
}

func (e customerTestEnv) get(t *testing.T, target, role string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if role != "" {
		token, _, err := e.tokens.Generate("test@example.com", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCustomerHandler_GetByID(t *testing.T) {
	id := uuid.New()

	t.Run("admin only", func(t *testing.T) {
		env := newCustomerTestEnv(t)

		rec := env.get(t, "/api/customers/"+id.String(), auth.RoleUser)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("200 for admin", func(t *testing.T) {
		env := newCustomerTestEnv(t)
		env.svc.EXPECT().GetCustomerByID(mock.Anything, id).
			Return(entities.Customer{ID: id, Name: "Ana", Email: "ana@example.com"}, nil)

		rec := env.get(t, "/api/customers/"+id.String(), auth.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ana@example.com")
	})

	t.Run("404", func(t *testing.T) {
		env := newCustomerTestEnv(t)
		env.svc.EXPECT().GetCustomerByID(mock.Anything, id).
			Return(entities.Customer{}, entities.ErrCustomerNotFound)

		rec := env.get(t, "/api/customers/"+id.String(), auth.RoleAdmin)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	t.Run("unpaged list", func(t *testing.T) {
		env := newCustomerTestEnv(t)
		env.svc.EXPECT().ListCustomers(mock.Anything, 0, 0).
			Return([]entities.Customer{{ID: uuid.New(), Name: "Ana"}}, nil)

		rec := env.get(t, "/api/customers/list", auth.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ana")
	})

	t.Run("unpaged list is admin only", func(t *testing.T) {
		env := newCustomerTestEnv(t)

		rec := env.get(t, "/api/customers/list", auth.RoleUser)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("paging params are forwarded", func(t *testing.T) {
		env := newCustomerTestEnv(t)
		env.svc.EXPECT().ListCustomers(mock.Anything, 5, 10).Return([]entities.Customer{}, nil)

		rec := env.get(t, "/api/customers?limit=5&offset=10", auth.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
