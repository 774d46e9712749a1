package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when text cannot be read as a monetary amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies
	ErrMismatchedCurrencies = errors.New("mismatched currencies")
)
