package rop

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is reported when a value handed between steps does not have
// the type the receiving step was declared with.
var ErrTypeMismatch = errors.New("rop: type mismatch between steps")

// PanicError is the step failure produced when a transform panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsPanic reports whether err carries a recovered panic and returns its value.
func IsPanic(err error) (any, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe.Value, true
	}
	return nil, false
}

// Cast converts a type-erased value back to T. A nil value becomes the zero T
// so interface and pointer stages round-trip.
func Cast[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %v", ErrTypeMismatch, v, reflect.TypeFor[T]())
	}
	return t, nil
}
