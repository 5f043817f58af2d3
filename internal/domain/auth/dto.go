package auth

import "github.com/siriwatk/employee-directory-go/internal/pkg/validator"

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	// Optional profile fields, stored as NULL when blank
	Phone      string `json:"phone"`
	Department string `json:"department"`
	JobTitle   string `json:"jobTitle"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"username", r.Username},
		{"password", r.Password},
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	// Length is only checked once all required fields are present; a
	// missing-field report always takes precedence.
	if len(errs) == 0 && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeInfo is the public view of an employee returned by the auth
// endpoints. The password hash never leaves the service layer.
type EmployeeInfo struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthResponse struct {
	Message  string       `json:"message"`
	Employee EmployeeInfo `json:"employee"`
}
