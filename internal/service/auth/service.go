package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/siriwatk/employee-directory-go/internal/domain/auth"
	"github.com/siriwatk/employee-directory-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.Repository
	bcryptCost   int
}

func NewAuthService(employeeRepo employee.Repository, bcryptCost int) auth.Service {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		bcryptCost:   bcryptCost,
	}
}

// Register implements auth.Service.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.EmployeeInfo, error) {
	if err := req.Validate(); err != nil {
		return auth.EmployeeInfo{}, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	exists, err := a.employeeRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return auth.EmployeeInfo{}, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if exists {
		return auth.EmployeeInfo{}, auth.ErrEmployeeExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return auth.EmployeeInfo{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.NewEmployee{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Phone:        toNullable(req.Phone),
		Department:   toNullable(req.Department),
		JobTitle:     toNullable(req.JobTitle),
		Address1:     toNullable(req.Address1),
		Address2:     toNullable(req.Address2),
		City:         toNullable(req.City),
		State:        toNullable(req.State),
		PostalCode:   toNullable(req.PostalCode),
	}

	created, err := a.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		// The existence pre-check races with concurrent registrations; the
		// store's uniqueness constraint is the authoritative conflict signal.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.EmployeeInfo{}, auth.ErrEmployeeExists
		}
		return auth.EmployeeInfo{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return auth.EmployeeInfo{
		ID:        created.ID,
		Username:  created.Username,
		FirstName: created.FirstName,
		LastName:  created.LastName,
	}, nil
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.EmployeeInfo, error) {
	if err := req.Validate(); err != nil {
		return auth.EmployeeInfo{}, err
	}

	emp, err := a.employeeRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same error as a password mismatch so callers cannot probe
			// which usernames exist.
			return auth.EmployeeInfo{}, auth.ErrInvalidCredentials
		}
		return auth.EmployeeInfo{}, fmt.Errorf("failed to get employee by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.EmployeeInfo{}, auth.ErrInvalidCredentials
	}

	return auth.EmployeeInfo{
		ID:        emp.ID,
		Username:  emp.Username,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
	}, nil
}

func toNullable(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
