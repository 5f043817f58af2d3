package employee

import "context"

type Repository interface {
	Create(ctx context.Context, newEmployee NewEmployee) (Employee, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error
}
