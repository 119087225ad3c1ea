package options

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFound is returned when no value is stored under a name.
	ErrNotFound = errors.New("option not found")
	// ErrTypeMismatch is returned when the stored type is not the requested one.
	ErrTypeMismatch = errors.New("option type mismatch")
)

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

func typeMismatch[T any](name string, got reflect.Type) error {
	return fmt.Errorf("%w: %q wanted %v, got %v", ErrTypeMismatch, name, reflect.TypeFor[T](), got)
}
