package auth

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (EmployeeInfo, error)
	Login(ctx context.Context, req LoginRequest) (EmployeeInfo, error)
}
