package services

import "errors"

var (
	ErrEmailRegistered         = errors.New("email ID is already registered")
	ErrUserNotFound            = errors.New("user does not exist")
	ErrInvalidCredentials      = errors.New("invalid email and password")
	ErrNameAndPasswordRequired = errors.New("name and password are required")
	ErrInvalidOTP              = errors.New("invalid or expired OTP")
	ErrResetUnavailable        = errors.New("password reset is unavailable")

	ErrBookNotFound = errors.New("book not found")

	ErrQuantityExceedsStock = errors.New("entered quantity is more than available")
	ErrAlreadyInCart        = errors.New("book is already in the cart")
	ErrCartItemNotFound     = errors.New("book not found in the cart")

	ErrEmptyReview = errors.New("review text cannot be empty")
)
