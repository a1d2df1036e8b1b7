package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation. The message lists the
	// offending fields by their JSON names.
	ErrInvalidInput = errors.New("invalid input")
)
