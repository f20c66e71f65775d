package progress

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound is returned by a Store when no row matches. It is not a failure.
	ErrRecordNotFound = errors.New("progress record not found")
	// ErrDayTaken is returned by Store.Insert when the (user, day) pair already has a record.
	ErrDayTaken = errors.New("progress record for this day already exists")

	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")
)

// PersistenceError wraps any data store failure surfaced by the Reconciler.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func persistenceErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
