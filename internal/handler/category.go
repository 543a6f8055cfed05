package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/middleware"
	"github.com/andrevlb/sushi-api/internal/service"
	"github.com/andrevlb/sushi-api/pkg/auth"
	"github.com/andrevlb/sushi-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CategoryService interface {
	ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (entities.Category, error)
	FindCategoriesByName(ctx context.Context, name string) ([]entities.Category, error)
	CreateCategory(ctx context.Context, in service.CategoryInput) (entities.Category, error)
	ReplaceCategory(ctx context.Context, id int64, in service.CategoryInput) error
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CategoryService
	guard    middleware.Guard
}

func NewCategoryHandler(logger *slog.Logger, svc CategoryService, guard middleware.Guard) *CategoryHandler {
	return &CategoryHandler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		svc:      svc,
		guard:    guard,
	}
}

func (h *CategoryHandler) Init(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		user := r.With(h.guard.RequireRole(auth.RoleUser, auth.RoleAdmin))
		admin := r.With(h.guard.RequireRole(auth.RoleAdmin))

		user.Get("/", h.list)
		user.Get("/list", h.listAll)
		user.Get("/{id}", h.getByID)
		user.Get("/find/by-name", h.findByName)
		admin.Post("/", h.create)
		admin.Put("/{id}", h.replace)
		admin.Delete("/{id}", h.delete)
	})
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	categories, err := h.svc.ListCategories(r.Context(), limit, offset)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoriesEntityToJSON(categories), http.StatusOK)
}

func (h *CategoryHandler) listAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context(), 0, 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoriesEntityToJSON(categories), http.StatusOK)
}

func (h *CategoryHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	category, err := h.svc.GetCategoryByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoryEntityToJSON(category), http.StatusOK)
}

func (h *CategoryHandler) findByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteError(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	categories, err := h.svc.FindCategoriesByName(r.Context(), name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoriesEntityToJSON(categories), http.StatusOK)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoryEntityToJSON(category), http.StatusCreated)
}

func (h *CategoryHandler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	var req CategoryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err = h.svc.ReplaceCategory(r.Context(), id, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
