package valueobject

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is matched by every error this package returns.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports input that cannot be used to build or
// serialize a value object.
type InvalidArgumentError struct {
	Type   string
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid argument for %q: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("missing parameter %q for %q: %s", e.Field, e.Type, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsMissingField reports whether err is a required-field error.
func IsMissingField(err error) bool {
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		return false
	}
	return invalid.Field != ""
}

func missingField(typeName, field string) error {
	return &InvalidArgumentError{
		Type:   typeName,
		Field:  field,
		Reason: "the value cannot be nil",
	}
}

func unsupportedInput(typeName string, input any) error {
	return &InvalidArgumentError{
		Type:   typeName,
		Reason: fmt.Sprintf("unsupported input type %T", input),
	}
}
