// filepath: internal/services/service_errors.go
package services

import "errors"

var (
	// ErrValidation marks errors caused by bad caller input. Handlers map
	// it to a 400 response.
	ErrValidation = errors.New("validation failed")

	// ErrLastAdmin is returned when an operation would remove or demote
	// the only remaining administrator account.
	ErrLastAdmin = errors.New("cannot remove the last administrator")
)
