// Package btferrs defines the closed error taxonomy shared by every layer
// of the BTF parser: I/O failures, malformed input, unsupported
// operations, and the two "reference miss" cases (a dangling type id or
// string offset that the data claims exists but does not).
package btferrs

import (
	"errors"
	"fmt"
)

// ErrFormat indicates the BTF data is structurally invalid: a bad magic,
// an unsupported version, a type section that doesn't end where the
// header says it should, and similar framing problems.
var ErrFormat = errors.New("invalid BTF format")

// ErrOpNotSupported indicates a semantically disallowed call, such as
// building a split BTF whose base is itself a split, or constructing a
// Mmap backend from an in-memory byte slice.
var ErrOpNotSupported = errors.New("operation not supported")

// ErrInvalidType classifies InvalidTypeError for errors.Is checks.
var ErrInvalidType = errors.New("invalid type id")

// ErrInvalidString classifies InvalidStringError for errors.Is checks.
var ErrInvalidString = errors.New("invalid string offset")

// IOError wraps an underlying I/O failure encountered while reading BTF
// data from a file or stream.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %s", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps err as an IOError, or returns nil if err is nil.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Err: err}
}

// Formatf builds an ErrFormat-classified error with a formatted message.
func Formatf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}

// OpNotSupportedf builds an ErrOpNotSupported-classified error with a
// formatted message.
func OpNotSupportedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOpNotSupported)
}

// InvalidTypeError reports that no type exists for the given id, even
// though something in the BTF data referenced it.
type InvalidTypeError struct {
	ID uint32
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("no type with id %d", e.ID)
}

func (e *InvalidTypeError) Unwrap() error {
	return ErrInvalidType
}

// InvalidStringError reports that no string exists at the given offset,
// even though something in the BTF data referenced it.
type InvalidStringError struct {
	Offset uint32
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("no string at offset %d", e.Offset)
}

func (e *InvalidStringError) Unwrap() error {
	return ErrInvalidString
}
