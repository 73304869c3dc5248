package si5351

import (
	"errors"
	"fmt"
)

// Configuration errors. They are wrapped in an *OutputError when they concern
// a single output.
var (
	// ErrDivBy4 indicates a divide-by-4 setting the hardware does not support
	ErrDivBy4 = errors.New("invalid divide-by-4 configuration")

	// ErrNoDivider indicates an output divider setting without a MultiSynth divider
	ErrNoDivider = errors.New("MultiSynth divider required")

	// ErrPhaseOffset indicates a phase offset on an output without CLKx_PHOFF
	ErrPhaseOffset = errors.New("phase offset is only available on CLK0-CLK5")

	// ErrMissingRegister indicates a register image lacks a register needed to decode it
	ErrMissingRegister = errors.New("missing register")
)

// OutputError reports a problem with the configuration of one clock output.
type OutputError struct {
	// Clock is the output index, 0..7
	Clock int

	// Err is the underlying error
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("CLK%d: %v", e.Clock, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// IsOutputError returns true if the error is an OutputError.
func IsOutputError(err error) bool {
	var oe *OutputError
	return errors.As(err, &oe)
}
