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

type OrderService interface {
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	ReplaceOrder(ctx context.Context, in service.ReplaceOrderInput) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	guard    middleware.Guard
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, guard middleware.Guard) *OrderHandler {
	return &OrderHandler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		svc:      svc,
		guard:    guard,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		user := r.With(h.guard.RequireRole(auth.RoleUser, auth.RoleAdmin))
		admin := r.With(h.guard.RequireRole(auth.RoleAdmin))

		admin.Get("/", h.list)
		admin.Get("/list", h.listAll)
		user.Get("/{id}", h.getByID)
		user.Post("/", h.create)
		admin.Put("/", h.replace)
		user.Delete("/{id}", h.delete)
	})
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	orders, err := h.svc.ListOrders(r.Context(), limit, offset)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

func (h *OrderHandler) listAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context(), 0, 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

func (h *OrderHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrderByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), req.ToInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *OrderHandler) replace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.ReplaceOrder(r.Context(), req.ToInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
