package auth

import "errors"

var (
	ErrInvalidCredentials          = errors.New("invalid credentials")
	ErrAccountNotApproved          = errors.New("account pending approval, please contact admin")
	ErrAdminRegistrationNotAllowed = errors.New("admin accounts cannot be created through registration")
	ErrInvalidRole                 = errors.New("role must be Employee or Manager")
	ErrInvalidToken                = errors.New("invalid or missing token")
	ErrTokenRevoked                = errors.New("token has been revoked")
)
