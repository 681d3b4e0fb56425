package domain

import "errors"

var (
	ErrInvalidProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity out of range")
	ErrMissingName     = errors.New("customer name is required")
	ErrInvalidMobile   = errors.New("mobile number must be exactly 10 digits")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCorruptLog      = errors.New("order log is corrupt")
	ErrPersistence     = errors.New("failed to persist order log")
	ErrMalformedItems  = errors.New("order items are malformed")
)
