package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking
// infrastructure details.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrOTPExpired      = errors.New("passcode expired")
	ErrOTPMismatch     = errors.New("passcode mismatch")
	ErrUnverified      = errors.New("passcode not verified")
	ErrMalformedHandle = errors.New("malformed account handle")
	ErrUpstream        = errors.New("upstream failure")
)
