package errs

import (
	"errors"
	"fmt"
)

// ErrStorageFailed is the sentinel for failures raised by the underlying storage engine.
var ErrStorageFailed = errors.New("storage failed")

// StorageFailedError reports a failed storage engine Operation.
type StorageFailedError struct {
	Operation string
	Cause     error
}

// NewStorageFailedError creates a StorageFailedError wrapping cause.
func NewStorageFailedError(operation string, cause error) *StorageFailedError {
	return &StorageFailedError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StorageFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStorageFailed, e.Operation), e.Cause)
}

// Unwrap exposes both the sentinel and the engine error to errors.Is / errors.As.
func (e *StorageFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorageFailed}
	}
	return []error{ErrStorageFailed, e.Cause}
}
