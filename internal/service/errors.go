package service

import (
	"errors"
	"fmt"
)

// Service errors that callers check with errors.Is. The API layer maps them
// to HTTP status codes.
var (
	// ErrNotOwned indicates a resource belongs to a different account than
	// the one making the request. Maps to 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrEmptyUpdate indicates an edit request that changes nothing.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrOwnsFacilities indicates a partner that still owns live hospitals
	// cannot leave the partner role. Maps to 409 Conflict.
	ErrOwnsFacilities = errors.New("user still owns live hospitals")
)

// ServiceError wraps an unexpected failure with the service and operation
// that produced it.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}
