package entity

import "errors"

// Standard domain errors
var (
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrBadAuthFormat     = errors.New("invalid Authorization header format, use: Bearer <token>")
	ErrInvalidToken      = errors.New("invalid or expired token")

	ErrInvalidRequest    = errors.New("invalid request parameters")
	ErrInvalidPeriod     = errors.New("period must be YYYY-MM or YYYY-MM:YYYY-MM")
	ErrInvalidIdentifier = errors.New("cpf must contain exactly 11 digits")
	ErrUsageDisabled     = errors.New("usage metering is not enabled")
	ErrInternalServer    = errors.New("internal server error")
)

// IsAuthError reports whether err came out of the auth gate.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingAuthHeader) ||
		errors.Is(err, ErrBadAuthFormat) ||
		errors.Is(err, ErrInvalidToken)
}
