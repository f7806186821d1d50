package listpager

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any query is executed when the
	// page request or the filter cannot be served.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedFilter is returned when a filter variant is not accepted
	// by the entity scope. It matches ErrInvalidArgument via errors.Is.
	ErrUnsupportedFilter = fmt.Errorf("%w: unsupported filter", ErrInvalidArgument)

	// ErrPersistence wraps failures of the underlying query execution.
	ErrPersistence = errors.New("persistence failure")
)

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
