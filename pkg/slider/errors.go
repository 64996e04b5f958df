package slider

import (
	"errors"
	"fmt"
)

// ErrZeroSpan indicates a slider range with min == max, which cannot be
// mapped to pixels.
var ErrZeroSpan = errors.New("slider range has zero span")

// ErrInvertedRange indicates that min > max was passed to the random value
// picker, which needs a non-negative span.
var ErrInvertedRange = errors.New("slider range is inverted")

// Swipe failures originate in the gesture subsystem of the browser
// automation engine. The positioner never produces them itself, executors
// may return them and they pass through unchanged.
var (
	ErrSwipeFailed          = errors.New("swipe gesture failed")
	ErrSwipeConditionNotMet = errors.New("swipe condition not met")
)

// ParseError indicates that a range bound read from an attribute or
// supplied as a string is not a valid integer.
type ParseError struct {
	Field string
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %q is not a valid integer", e.Field, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
