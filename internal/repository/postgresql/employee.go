package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/siriwatk/employee-directory-go/internal/domain/employee"
	"github.com/siriwatk/employee-directory-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.NewEmployee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			username, password_hash, first_name, last_name, email, phone,
			department, job_title, address1, address2, city, state, postal_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, username, first_name, last_name, email, created_at, updated_at
	`

	var created employee.Employee
	err := r.db.QueryRow(ctx, query,
		newEmployee.Username,
		newEmployee.PasswordHash,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Department,
		newEmployee.JobTitle,
		newEmployee.Address1,
		newEmployee.Address2,
		newEmployee.City,
		newEmployee.State,
		newEmployee.PostalCode,
	).Scan(
		&created.ID,
		&created.Username,
		&created.FirstName,
		&created.LastName,
		&created.Email,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// ExistsByUsernameOrEmail implements employee.Repository.
func (r *employeeRepositoryImpl) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE username = $1 OR email = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, username, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetByUsername implements employee.Repository.
func (r *employeeRepositoryImpl) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	query := `
		SELECT id, username, password_hash, first_name, last_name, email
		FROM employees
		WHERE username = $1
	`

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, username).Scan(
		&emp.ID,
		&emp.Username,
		&emp.PasswordHash,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	query := `
		SELECT id, username, first_name, last_name, email, phone, department,
			   job_title, address1, address2, city, state, postal_code,
			   company_name, tax_id, address_number, moo, village, soi, road,
			   sub_district, district, province, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Username,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.Department,
		&emp.JobTitle,
		&emp.Address1,
		&emp.Address2,
		&emp.City,
		&emp.State,
		&emp.PostalCode,
		&emp.CompanyName,
		&emp.TaxID,
		&emp.AddressNumber,
		&emp.Moo,
		&emp.Village,
		&emp.Soi,
		&emp.Road,
		&emp.SubDistrict,
		&emp.District,
		&emp.Province,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// UpdateProfile implements employee.Repository.
func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, id int64, update employee.ProfileUpdate) error {
	query := `
		UPDATE employees
		SET company_name = $1,
			tax_id = $2,
			address_number = $3,
			moo = $4,
			village = $5,
			soi = $6,
			road = $7,
			sub_district = $8,
			district = $9,
			province = $10,
			postal_code = $11,
			updated_at = NOW()
		WHERE id = $12
	`

	tag, err := r.db.Exec(ctx, query,
		update.CompanyName,
		update.TaxID,
		update.AddressNumber,
		update.Moo,
		update.Village,
		update.Soi,
		update.Road,
		update.SubDistrict,
		update.District,
		update.Province,
		update.PostalCode,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
