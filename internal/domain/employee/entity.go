package employee

import "time"

// Employee is the single persisted entity: a login record plus optional
// profile and company-address fields. Nullable columns map to pointers.
type Employee struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string

	Phone      *string
	Department *string
	JobTitle   *string

	// Legacy address columns, kept for records created before the
	// structured company-address fields existed
	Address1   *string
	Address2   *string
	City       *string
	State      *string
	PostalCode *string

	CompanyName   *string
	TaxID         *string
	AddressNumber *string
	Moo           *string
	Village       *string
	Soi           *string
	Road          *string
	SubDistrict   *string
	District      *string
	Province      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEmployee carries the column values for a registration insert.
type NewEmployee struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Department   *string
	JobTitle     *string
	Address1     *string
	Address2     *string
	City         *string
	State        *string
	PostalCode   *string
}

// ProfileUpdate carries the company-address column values for a profile
// update. Every column is written on every update; nil clears the column.
type ProfileUpdate struct {
	CompanyName   *string
	TaxID         *string
	AddressNumber *string
	Moo           *string
	Village       *string
	Soi           *string
	Road          *string
	SubDistrict   *string
	District      *string
	Province      *string
	PostalCode    *string
}
