package employee

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/siriwatk/employee-directory-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
	seq       int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.NewEmployee) (employee.Employee, error) {
	r.seq++
	created := employee.Employee{
		ID:        r.seq,
		Username:  newEmployee.Username,
		FirstName: newEmployee.FirstName,
		LastName:  newEmployee.LastName,
		Email:     newEmployee.Email,
		City:      newEmployee.City,
		State:     newEmployee.State,
	}
	r.employees[created.ID] = created
	return created, nil
}

func (r *fakeEmployeeRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	return false, nil
}

func (r *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (employee.Employee, error) {
	return employee.Employee{}, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (r *fakeEmployeeRepo) UpdateProfile(_ context.Context, id int64, update employee.ProfileUpdate) error {
	e, ok := r.employees[id]
	if !ok {
		return pgx.ErrNoRows
	}
	e.CompanyName = update.CompanyName
	e.TaxID = update.TaxID
	e.AddressNumber = update.AddressNumber
	e.Moo = update.Moo
	e.Village = update.Village
	e.Soi = update.Soi
	e.Road = update.Road
	e.SubDistrict = update.SubDistrict
	e.District = update.District
	e.Province = update.Province
	e.PostalCode = update.PostalCode
	r.employees[id] = e
	return nil
}

func (r *fakeEmployeeRepo) seed(e employee.Employee) int64 {
	r.seq++
	e.ID = r.seq
	r.employees[e.ID] = e
	return e.ID
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_GetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.GetProfile(ctx, 42)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_GetProfile_CompanyNameFallsBackToFullName(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	id := repo.seed(employee.Employee{FirstName: "Jane", LastName: "Doe"})
	svc := NewEmployeeService(repo)

	profile, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.CompanyName)
	assert.Equal(t, "", profile.TaxID)
	assert.Equal(t, "", profile.SubDistrict)
	assert.Equal(t, "", profile.District)
}

func TestEmployeeService_GetProfile_LegacyCityStateFallback(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	// A record from before the structured address columns existed
	id := repo.seed(employee.Employee{
		FirstName: "Jane",
		LastName:  "Doe",
		City:      strPtr("Bang Rak"),
		State:     strPtr("Bangkok"),
	})
	svc := NewEmployeeService(repo)

	profile, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Bang Rak", profile.SubDistrict)
	assert.Equal(t, "Bangkok", profile.District)
}

func TestEmployeeService_GetProfile_StructuredFieldsWinOverLegacy(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	id := repo.seed(employee.Employee{
		FirstName:   "Jane",
		LastName:    "Doe",
		City:        strPtr("Bang Rak"),
		State:       strPtr("Bangkok"),
		SubDistrict: strPtr("Suthep"),
		District:    strPtr("Mueang Chiang Mai"),
	})
	svc := NewEmployeeService(repo)

	profile, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Suthep", profile.SubDistrict)
	assert.Equal(t, "Mueang Chiang Mai", profile.District)
}

func TestEmployeeService_UpdateProfile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	id := repo.seed(employee.Employee{FirstName: "Jane", LastName: "Doe"})
	svc := NewEmployeeService(repo)

	req := employee.UpdateCompanyProfileRequest{
		CompanyName:   "Acme Co",
		TaxID:         "1234567890123",
		AddressNumber: "99/1",
		Moo:           "4",
		Village:       "Baan Suan",
		Soi:           "Sukhumvit 11",
		Road:          "Sukhumvit",
		SubDistrict:   "Khlong Toei Nuea",
		District:      "Watthana",
		Province:      "Bangkok",
		PostalCode:    "10110",
	}
	require.NoError(t, svc.UpdateProfile(ctx, id, req))

	profile, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, employee.CompanyProfileResponse{
		ID:            id,
		CompanyName:   "Acme Co",
		TaxID:         "1234567890123",
		AddressNumber: "99/1",
		Moo:           "4",
		Village:       "Baan Suan",
		Soi:           "Sukhumvit 11",
		Road:          "Sukhumvit",
		SubDistrict:   "Khlong Toei Nuea",
		District:      "Watthana",
		Province:      "Bangkok",
		PostalCode:    "10110",
	}, profile)
}

func TestEmployeeService_UpdateProfile_OmittedFieldsAreCleared(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	id := repo.seed(employee.Employee{FirstName: "Jane", LastName: "Doe"})
	svc := NewEmployeeService(repo)

	require.NoError(t, svc.UpdateProfile(ctx, id, employee.UpdateCompanyProfileRequest{
		CompanyName: "Acme Co",
		TaxID:       "1234567890123",
		Province:    "Bangkok",
	}))

	// A second update without taxId or province overwrites them
	require.NoError(t, svc.UpdateProfile(ctx, id, employee.UpdateCompanyProfileRequest{
		CompanyName: "Acme Co",
	}))

	profile, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", profile.CompanyName)
	assert.Equal(t, "", profile.TaxID)
	assert.Equal(t, "", profile.Province)
}

func TestEmployeeService_UpdateProfile_TrimsAndNullsBlankValues(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	id := repo.seed(employee.Employee{FirstName: "Jane", LastName: "Doe"})
	svc := NewEmployeeService(repo)

	require.NoError(t, svc.UpdateProfile(ctx, id, employee.UpdateCompanyProfileRequest{
		CompanyName: "  Acme Co  ",
		TaxID:       "   ",
	}))

	stored := repo.employees[id]
	require.NotNil(t, stored.CompanyName)
	assert.Equal(t, "Acme Co", *stored.CompanyName)
	assert.Nil(t, stored.TaxID)
}

func TestEmployeeService_UpdateProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	err := svc.UpdateProfile(ctx, 42, employee.UpdateCompanyProfileRequest{CompanyName: "Acme Co"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
