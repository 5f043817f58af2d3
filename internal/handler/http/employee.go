package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/siriwatk/employee-directory-go/internal/domain/employee"
	"github.com/siriwatk/employee-directory-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// GetProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user id.")
		return
	}

	profile, err := h.employeeService.GetProfile(r.Context(), id)
	if err != nil {
		slog.Error("GetProfile error", "error", err, "id", id)
		response.HandleError(w, err, "Unable to fetch user info.")
		return
	}

	response.OK(w, profile)
}

// UpdateProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user id.")
		return
	}

	var req employee.UpdateCompanyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format.")
		return
	}

	if err := h.employeeService.UpdateProfile(r.Context(), id, req); err != nil {
		slog.Error("UpdateProfile error", "error", err, "id", id)
		response.HandleError(w, err, "Unable to update user info.")
		return
	}

	response.OK(w, map[string]string{"message": "User info updated."})
}
