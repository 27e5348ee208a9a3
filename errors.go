package inodefs

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DriverError is an error with a fixed root cause that can be refined with a
// message or combined with another error while still matching the root cause
// via [errors.Is].
type DriverError interface {
	error
	WithMessage(message string) DriverError
	Wrap(err error) DriverError
}

type baseError string

const rootError = baseError("")

var ErrDanglingEntry = rootError.WithMessage("Directory entry refers to no inode")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrIsADirectory = rootError.WithMessage("Is a directory")
var ErrMissingBlock = rootError.WithMessage("Block pointer refers to no block")
var ErrNotADirectory = rootError.WithMessage("Not a directory")
var ErrNotFound = rootError.WithMessage("No such file or directory")
var ErrSizeMismatch = rootError.WithMessage("Recorded size exceeds stored data")
var ErrSparsePointers = rootError.WithMessage("Direct pointers are not contiguous")
var ErrUnallocatedID = rootError.WithMessage("Identifier was never allocated")

func (e baseError) Error() string {
	return string(e)
}

func (e baseError) WithMessage(message string) DriverError {
	return customError{
		message:       message,
		originalError: e,
	}
}

func (e baseError) Wrap(err error) DriverError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customError) Error() string {
	return e.message
}

func (e customError) WithMessage(message string) DriverError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customError) Wrap(err error) DriverError {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customError) Unwrap() error {
	return e.originalError
}
