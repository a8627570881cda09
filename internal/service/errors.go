package service

import "errors"

// Sentinel errors returned by services and translated to HTTP statuses by
// the server error handler.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUpstream           = errors.New("upstream AI service failed")
)

// wrapErr keeps the sentinel in the chain while adding detail.
func wrapErr(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return errors.Join(sentinel, errors.New(detail))
}
