package maxslog

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrOutOfRange is returned for notification indices outside [0, Len).
	ErrOutOfRange = errors.New("maxslog: index out of range")
	// ErrNoTarget is reported when file logging is activated without a path.
	ErrNoTarget = errors.New("maxslog: no log target given")
	// ErrBadSuffix is reported when the target does not carry the log suffix.
	ErrBadSuffix = errors.New("maxslog: log target has the wrong suffix")
	// ErrUnsupportedValue is returned by Inspect for value kinds it cannot read.
	ErrUnsupportedValue = errors.New("maxslog: unsupported value kind")
	// ErrNotMissing is returned by Inspect for values that carry no missing
	// marker, such as a known enumeration member.
	ErrNotMissing = errors.New("maxslog: value is not missing")
	// ErrNoLogger is returned by RequireLogger when the context carries none.
	ErrNoLogger = errors.New("maxslog: no logger in context")
)

// RangeError describes an out-of-range lookup. It matches ErrOutOfRange.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("maxslog: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
