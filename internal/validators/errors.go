package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDeviceID     = errors.New("no device ID was given")
	ErrEmptyScanID       = errors.New("no scan ID was given")
	ErrTooLong           = errors.New("value is too long")
	ErrNegativeTimestamp = errors.New("capture timestamp is negative")
	ErrEmptyConfidence   = errors.New("confidence is empty")
)
