// Package handler exposes the REST surface of the API. Each resource has
// its own handler type that registers routes on a chi router and guards
// them by role.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// respondError maps domain sentinel errors onto HTTP statuses. Everything
// unrecognized is logged and answered with a bare 500.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrOrderItemNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrCategoryNotFound),
		errors.Is(err, entities.ErrCustomerNotFound),
		errors.Is(err, entities.ErrAddressNotFound),
		errors.Is(err, entities.ErrEmployeeNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrProductExists),
		errors.Is(err, entities.ErrCategoryExists),
		errors.Is(err, entities.ErrEmailTaken):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidCredentials):
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
	default:
		logger.Error("request failed", "error", err)
		utils.WriteError(w, "internal error", http.StatusInternalServerError)
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// pageParams reads limit/offset query parameters; both default to zero,
// which the repos treat as "no paging".
func pageParams(r *http.Request) (limit, offset int) {
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
