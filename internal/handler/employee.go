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

type EmployeeService interface {
	ListEmployees(ctx context.Context, limit, offset int) ([]entities.Employee, error)
	GetEmployeeByID(ctx context.Context, id uuid.UUID) (entities.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (entities.Employee, error)
	CreateEmployee(ctx context.Context, in service.EmployeeInput) (entities.Employee, error)
	ReplaceEmployee(ctx context.Context, id uuid.UUID, in service.EmployeeInput) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

// EmployeeHandler serves the staff directory; everything here is admin only.
type EmployeeHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      EmployeeService
	guard    middleware.Guard
}

func NewEmployeeHandler(logger *slog.Logger, svc EmployeeService, guard middleware.Guard) *EmployeeHandler {
	return &EmployeeHandler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		svc:      svc,
		guard:    guard,
	}
}

func (h *EmployeeHandler) Init(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(h.guard.RequireRole(auth.RoleAdmin))

		r.Get("/", h.list)
		r.Get("/list", h.listAll)
		r.Get("/{id}", h.getByID)
		r.Get("/find/by-email", h.getByEmail)
		r.Post("/", h.create)
		r.Put("/{id}", h.replace)
		r.Delete("/{id}", h.delete)
	})
}

func (h *EmployeeHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	employees, err := h.svc.ListEmployees(r.Context(), limit, offset)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, EmployeesEntityToJSON(employees), http.StatusOK)
}

func (h *EmployeeHandler) listAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.ListEmployees(r.Context(), 0, 0)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, EmployeesEntityToJSON(employees), http.StatusOK)
}

func (h *EmployeeHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	employee, err := h.svc.GetEmployeeByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, EmployeeEntityToJSON(employee), http.StatusOK)
}

func (h *EmployeeHandler) getByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteError(w, "email query parameter is required", http.StatusBadRequest)
		return
	}

	employee, err := h.svc.GetEmployeeByEmail(r.Context(), email)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, EmployeeEntityToJSON(employee), http.StatusOK)
}

func (h *EmployeeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	employee, err := h.svc.CreateEmployee(r.Context(), service.EmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, EmployeeEntityToJSON(employee), http.StatusCreated)
}

func (h *EmployeeHandler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	var req EmployeeRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.StructExcept(req, "Password"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err = h.svc.ReplaceEmployee(r.Context(), id, service.EmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
