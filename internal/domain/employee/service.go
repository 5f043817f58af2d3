package employee

import "context"

type Service interface {
	GetProfile(ctx context.Context, id int64) (CompanyProfileResponse, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateCompanyProfileRequest) error
}
