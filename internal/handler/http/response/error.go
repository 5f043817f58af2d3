package response

import (
	"errors"
	"net/http"

	"github.com/siriwatk/employee-directory-go/internal/domain/auth"
	"github.com/siriwatk/employee-directory-go/internal/domain/employee"
	"github.com/siriwatk/employee-directory-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unrecognized errors are
// internal faults and only surface the generic fallback message; the detail
// is logged by the caller.
func HandleError(w http.ResponseWriter, err error, fallback string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, auth.ErrEmployeeExists):
		Conflict(w, "Username or email already exists.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password.")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "User not found.")
	default:
		InternalServerError(w, fallback)
	}
}
