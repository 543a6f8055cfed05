package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/service"
	"github.com/andrevlb/sushi-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	RegisterCustomer(ctx context.Context, in service.RegisterInput) (service.AuthResult, error)
	LoginCustomer(ctx context.Context, in service.LoginInput) (service.AuthResult, error)
	RegisterEmployee(ctx context.Context, in service.RegisterInput) (service.AuthResult, error)
	LoginEmployee(ctx context.Context, in service.LoginInput) (service.AuthResult, error)
}

// AuthHandler registers and signs in customers and employees. All routes
// are public; login failures never reveal whether the account exists.
type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
}

func NewAuthHandler(logger *slog.Logger, svc AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		svc:      svc,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/customers/register", h.registerCustomer)
		r.Post("/customers/login", h.loginCustomer)
		r.Post("/employees/register", h.registerEmployee)
		r.Post("/employees/login", h.loginEmployee)
	})
}

func (h *AuthHandler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.svc.RegisterCustomer)
}

func (h *AuthHandler) loginCustomer(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.svc.LoginCustomer)
}

func (h *AuthHandler) registerEmployee(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.svc.RegisterEmployee)
}

func (h *AuthHandler) loginEmployee(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.svc.LoginEmployee)
}

func (h *AuthHandler) register(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, service.RegisterInput) (service.AuthResult, error),
) {
	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := fn(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, AuthResultToJSON(result), http.StatusCreated)
}

func (h *AuthHandler) login(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, service.LoginInput) (service.AuthResult, error),
) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := fn(r.Context(), service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		// Unknown account and wrong password look the same to the caller.
		if errors.Is(err, entities.ErrCustomerNotFound) || errors.Is(err, entities.ErrEmployeeNotFound) {
			err = entities.ErrInvalidCredentials
		}
		respondError(w, h.logger, err)
		return
	}
	utils.WriteJSON(w, AuthResultToJSON(result), http.StatusOK)
}
