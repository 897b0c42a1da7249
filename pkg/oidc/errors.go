package oidc

import (
	"errors"
	"fmt"
)

// ProviderError is returned when the provider responds with a non-success
// status code, or calls back with an "error" query parameter. The flow is
// aborted; authorization codes are single-use, so the exchange is never
// retried with the same code.
type ProviderError struct {
	// Status is the HTTP status code of the provider's response. It is zero
	// when the error came from a callback parameter instead of a response.
	Status int
	// Code is the provider-supplied "error" value.
	Code string
	// Description is the provider-supplied "error_description" value.
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("provider error: %s", e.Code)
	}
	return fmt.Sprintf("provider error: %s: %s", e.Code, e.Description)
}

// SecurityError is returned when the state, nonce or signature check fails.
// It always aborts the flow and is never recovered from. The message visible
// to callers stays generic; the specific check that failed goes to the logs
// only.
type SecurityError struct {
	// reason names the failed check. It is deliberately unexported; callers
	// must not branch on it or leak it to users.
	reason string
}

func (e *SecurityError) Error() string {
	return "authentication request could not be validated"
}

// StorageError is returned when the session store fails to persist or delete
// a pending value. Surfaced as-is, not retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("session storage failed during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// TransportError is returned when the HTTP transport fails before a response
// was obtained. Surfaced as-is, not retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsSecurityError reports whether err is (or wraps) a SecurityError.
func IsSecurityError(err error) bool {
	var target *SecurityError
	return errors.As(err, &target)
}

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}
