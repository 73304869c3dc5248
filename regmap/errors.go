package regmap

import (
	"errors"
	"fmt"
)

// ErrClockIndex is returned when a clock or MultiSynth index is out of range
// for the register being addressed.
var ErrClockIndex = errors.New("clock index out of range")

// FieldError reports a code that cannot be placed into its register field.
type FieldError struct {
	// Field is the datasheet name of the field
	Field string

	// Value is the rejected raw value
	Value uint32
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s value 0x%02X", e.Field, e.Value)
}

// DividerError reports a PLL or MultiSynth divider outside the range the
// hardware can encode.
type DividerError struct {
	// Stage is "PLL", "MultiSynth" or "MS6/7"
	Stage string

	// Divider is the rejected divider
	Divider Divider

	// Reason describes the violated limit
	Reason string
}

func (e *DividerError) Error() string {
	return fmt.Sprintf("invalid %s divider %s: %s", e.Stage, e.Divider, e.Reason)
}

// IsFieldError returns true if the error is a FieldError.
func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

// IsDividerError returns true if the error is a DividerError.
func IsDividerError(err error) bool {
	var de *DividerError
	return errors.As(err, &de)
}
