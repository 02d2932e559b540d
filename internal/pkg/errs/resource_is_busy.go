package errs

import (
	"errors"
	"fmt"
	"time"
)

// ErrResourceIsBusy is the sentinel for lock acquisitions that timed out.
// Nothing has been mutated when this error is returned.
var ErrResourceIsBusy = errors.New("resource is busy")

// ResourceIsBusyError reports that the writer lock on Resource was not acquired within Timeout.
type ResourceIsBusyError struct {
	Resource string
	Timeout  time.Duration
	Cause    error
}

// NewResourceIsBusyError creates a ResourceIsBusyError without an underlying cause.
func NewResourceIsBusyError(resource string, timeout time.Duration) *ResourceIsBusyError {
	return &ResourceIsBusyError{
		Resource: resource,
		Timeout:  timeout,
	}
}

// NewResourceIsBusyErrorWithCause creates a ResourceIsBusyError wrapping cause.
func NewResourceIsBusyErrorWithCause(resource string, timeout time.Duration, cause error) *ResourceIsBusyError {
	return &ResourceIsBusyError{
		Resource: resource,
		Timeout:  timeout,
		Cause:    cause,
	}
}

func (e *ResourceIsBusyError) Error() string {
	msg := fmt.Sprintf("%s: %s (waited %s)", ErrResourceIsBusy, e.Resource, e.Timeout)
	return withCause(msg, e.Cause)
}

func (e *ResourceIsBusyError) Unwrap() error {
	return ErrResourceIsBusy
}
