package slider

import "fmt"

// Offset converts a logical slider value into the horizontal pixel delta
// that moves the thumb there from the left edge of the bar:
//
//	offset = width * (value - min) / (max - min)
//
// The division truncates toward zero, so a value that maps between two
// pixels lands on the one closer to the bar's origin. An inverted range
// (min > max) flips the direction of the result.
func Offset(width int, min int, max int, value int) (int, error) {
	if max == min {
		return 0, fmt.Errorf("cannot place value %d in [%d, %d]: %w", value, min, max, ErrZeroSpan)
	}
	return width * (value - min) / (max - min), nil
}
