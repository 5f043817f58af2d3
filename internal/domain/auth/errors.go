package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmployeeExists     = errors.New("username or email already exists")
)
