package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrInvalidPageIndex = errors.New("page index must be a positive integer")
	ErrInvalidPageSize  = fmt.Errorf("page size must be between 1 and %d", MaxPageSize)
)

// DataAccessError reports a failed query, scan or connection acquisition.
type DataAccessError struct {
	Op          string
	Err         error
	unavailable bool
}

func NewDataAccessError(op string, err error, unavailable bool) *DataAccessError {
	return &DataAccessError{
		Op:          op,
		Err:         err,
		unavailable: unavailable,
	}
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Unavailable reports whether the store could not be reached at all, as
// opposed to a query that reached it and failed.
func (e *DataAccessError) Unavailable() bool {
	return e.unavailable
}

// IsValidationError reports whether err was raised before any query ran
// because the request itself was malformed.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPageIndex) || errors.Is(err, ErrInvalidPageSize)
}
