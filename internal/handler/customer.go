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
	"github.com/google/uuid"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (entities.Customer, error)
	FindCustomersByName(ctx context.Context, name string) ([]entities.Customer, error)
	CreateCustomer(ctx context.Context, in service.CustomerInput) (entities.Customer, error)
	ReplaceCustomer(ctx context.Context, id uuid.UUID, in service.CustomerInput) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type CustomerHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CustomerService
	guard    middleware.Guard
}

func NewCustomerHandler(logger *slog.Logger, svc CustomerService, guard middleware.Guard) *CustomerHandler {
	return &CustomerHandler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		svc:      svc,
		guard:    guard,
	}
}

func (h *CustomerHandler) Init(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		user := r.With(h.guard.RequireRole(auth.RoleUser, auth.RoleAdmin))
		admin := r.With(h.guard.RequireRole(auth.RoleAdmin))

		admin.Get("/", h.list)
		admin.Get("/list", h.listAll)
		admin.Get("/{id}", h.getByID)
		admin.Get("/find/by-name", h.findByName)
		admin.Get("/find/by-email", h.getByEmail)
		user.Post("/", h.create)
		user.Put("/{id}", h.replace)
		user.Delete("/{id}", h.delete)
	})
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	customers, err := h.svc.ListCustomers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomersEntityToJSON(customers), http.StatusOK)
}

func (h *CustomerHandler) listAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context(), 0, 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomersEntityToJSON(customers), http.StatusOK)
}

func (h *CustomerHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := h.svc.GetCustomerByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

func (h *CustomerHandler) findByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteError(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	customers, err := h.svc.FindCustomersByName(r.Context(), name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomersEntityToJSON(customers), http.StatusOK)
}

func (h *CustomerHandler) getByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteError(w, "email query parameter is required", http.StatusBadRequest)
		return
	}

	customer, err := h.svc.GetCustomerByEmail(r.Context(), email)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

func (h *CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer, err := h.svc.CreateCustomer(r.Context(), req.ToInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusCreated)
}

func (h *CustomerHandler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var req CustomerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.StructExcept(req, "Password"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.ReplaceCustomer(r.Context(), id, req.ToInput()); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
