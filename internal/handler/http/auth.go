package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/siriwatk/employee-directory-go/internal/domain/auth"
	"github.com/siriwatk/employee-directory-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Register implements AuthHandler.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format.")
		return
	}

	employeeInfo, err := h.authService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register error", "error", err)
		response.HandleError(w, err, "Registration failed. Please try again later.")
		return
	}

	slog.Info("Employee registered", "id", employeeInfo.ID)
	response.Created(w, auth.AuthResponse{
		Message:  "Registration complete.",
		Employee: employeeInfo,
	})
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format.")
		return
	}

	employeeInfo, err := h.authService.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login error", "error", err)
		response.HandleError(w, err, "Login failed. Please try again later.")
		return
	}

	response.OK(w, auth.AuthResponse{
		Message:  "Login successful.",
		Employee: employeeInfo,
	})
}
