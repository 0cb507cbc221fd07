package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("not the owner of this resource")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrInvalidResetToken  = errors.New("reset token invalid or expired")
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
)
