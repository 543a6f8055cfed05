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

type ProductService interface {
	ListProducts(ctx context.Context, limit, offset int) ([]entities.Product, error)
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
	FindProductsByName(ctx context.Context, name string) ([]entities.Product, error)
	CreateProduct(ctx context.Context, in service.ProductInput) (entities.Product, error)
	ReplaceProduct(ctx context.Context, id int64, in service.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
	guard    middleware.Guard
}

func NewProductHandler(logger *slog.Logger, svc ProductService, guard middleware.Guard) *ProductHandler {
	return &ProductHandler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		svc:      svc,
		guard:    guard,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
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

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	products, err := h.svc.ListProducts(r.Context(), limit, offset)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

func (h *ProductHandler) listAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context(), 0, 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

func (h *ProductHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.svc.GetProductByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *ProductHandler) findByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteError(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	products, err := h.svc.FindProductsByName(r.Context(), name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), req.ToInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

func (h *ProductHandler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.ReplaceProduct(r.Context(), id, req.ToInput()); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
