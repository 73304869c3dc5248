package field

import (
	"errors"
	"fmt"
)

// Lookup errors.
var (
	// ErrUnknownGroup is returned when no field group has the requested name
	ErrUnknownGroup = errors.New("unknown field group")

	// ErrUnknownCode is returned when a group has no code with the requested name
	ErrUnknownCode = errors.New("unknown code")
)

// RatioError reports an output divider ratio that no RDiv code can express.
type RatioError struct {
	// Ratio is the requested divide ratio
	Ratio float64
}

func (e *RatioError) Error() string {
	return fmt.Sprintf("unsupported output divider ratio %g: must be a power of two from 1 to %d",
		e.Ratio, MaxRDivRatio)
}

// IsRatioError returns true if the error is a RatioError.
func IsRatioError(err error) bool {
	var re *RatioError
	return errors.As(err, &re)
}
