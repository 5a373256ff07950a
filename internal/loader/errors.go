package loader

import (
	"errors"
	"fmt"
)

// Shape errors wrapped by InputError. Use errors.Is to tell them apart.
var (
	// ErrNotArray is returned when the top-level JSON value is not an array.
	ErrNotArray = errors.New("top-level value must be a JSON array")

	// ErrNotObject is returned when an element of the array is not an object.
	ErrNotObject = errors.New("array element must be a JSON object")

	// ErrFieldType is returned when a known field holds a value of the wrong
	// JSON type, for example a string revenue.
	ErrFieldType = errors.New("field has the wrong type")
)

// InputError reports a fatal problem with the input document.
// It is never recovered internally: the CLI prints it and exits non-zero.
type InputError struct {
	// Path is the input file path. It is empty when the document was
	// decoded from a stream with Decode.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return fmt.Sprintf("invalid input %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InputError) Unwrap() error {
	return e.Err
}
