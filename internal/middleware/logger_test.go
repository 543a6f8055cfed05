package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrevlb/sushi-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := chi.NewRouter()
	router.Use(middleware.Logger(logger))
	router.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("hello"))
	})

	t.Run("logs route pattern and response size", func(t *testing.T) {
		buf.Reset()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/7", nil))

		out := buf.String()
		assert.Contains(t, out, "route=/orders/{id}")
		assert.Contains(t, out, "path=/orders/7")
		assert.Contains(t, out, "status=418")
		assert.Contains(t, out, "bytes=5")
	})

	t.Run("unrouted requests share one label", func(t *testing.T) {
		buf.Reset()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Contains(t, buf.String(), "route=unmatched")
	})
}
