package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/siriwatk/employee-directory-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// GetProfile implements employee.Service.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, id int64) (employee.CompanyProfileResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.CompanyProfileResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.CompanyProfileResponse{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	companyName := deref(emp.CompanyName)
	if companyName == "" {
		companyName = strings.TrimSpace(emp.FirstName + " " + emp.LastName)
	}

	return employee.CompanyProfileResponse{
		ID:            emp.ID,
		CompanyName:   companyName,
		TaxID:         deref(emp.TaxID),
		AddressNumber: deref(emp.AddressNumber),
		Moo:           deref(emp.Moo),
		Village:       deref(emp.Village),
		Soi:           deref(emp.Soi),
		Road:          deref(emp.Road),
		// Records created before the structured address columns existed
		// only carry the legacy city/state values.
		SubDistrict: coalesce(emp.SubDistrict, emp.City),
		District:    coalesce(emp.District, emp.State),
		Province:    deref(emp.Province),
		PostalCode:  deref(emp.PostalCode),
	}, nil
}

// UpdateProfile implements employee.Service.
//
// Every targeted column is overwritten on every call: blank or omitted
// fields are cleared, not left untouched.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, id int64, req employee.UpdateCompanyProfileRequest) error {
	update := employee.ProfileUpdate{
		CompanyName:   toNullable(req.CompanyName),
		TaxID:         toNullable(req.TaxID),
		AddressNumber: toNullable(req.AddressNumber),
		Moo:           toNullable(req.Moo),
		Village:       toNullable(req.Village),
		Soi:           toNullable(req.Soi),
		Road:          toNullable(req.Road),
		SubDistrict:   toNullable(req.SubDistrict),
		District:      toNullable(req.District),
		Province:      toNullable(req.Province),
		PostalCode:    toNullable(req.PostalCode),
	}

	if err := s.employeeRepo.UpdateProfile(ctx, id, update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee profile: %w", err)
	}

	return nil
}

func toNullable(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func coalesce(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
