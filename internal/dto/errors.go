package dto

import "errors"

var (
	// ErrUserNotFound is returned on the issuance path when the telegram ID
	// is unknown. Lookup-or-create never returns it.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuotaExceeded is returned when a user has exhausted their signal
	// allotment. It is a client error, not a server fault.
	ErrQuotaExceeded = errors.New("signal limit reached")

	// ErrInvalidPlan is returned when a plan name is outside the closed set
	// of recognized tiers.
	ErrInvalidPlan = errors.New("invalid plan")
)
