// Package validation holds the rules every task span must satisfy.
//
// All functions are pure and total over their integer inputs: they never
// panic and never touch state, so the table, the codecs and the library can
// share them without coordination.
package validation

import "fmt"

// Unset marks a start or end period the user has not supplied yet.
const Unset = 0

// ValidateDuration checks that a project has at least one period.
func ValidateDuration(duration int) error {
	if duration < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}
	return nil
}

// ValidateSpan checks 1 <= start <= end <= duration.
// Range violations are reported before inversion.
func ValidateSpan(start, end, duration int) error {
	if start < 1 {
		return fmt.Errorf("%w: start %d is before period 1", ErrOutOfRange, start)
	}
	if end > duration {
		return fmt.Errorf("%w: end %d is after period %d", ErrOutOfRange, end, duration)
	}
	if start > end {
		return fmt.Errorf("%w: start %d, end %d", ErrInvertedSpan, start, end)
	}
	return nil
}

// ValidatePeriod checks a single edge against the project bounds.
func ValidatePeriod(period, duration int) error {
	if period < 1 || period > duration {
		return fmt.Errorf("%w: period %d is outside 1..%d", ErrOutOfRange, period, duration)
	}
	return nil
}

// ValidatePartial validates a span whose edges may still be Unset.
// A fully unset span is always valid; a half-set span only has its set edge
// checked against the bounds.
func ValidatePartial(start, end, duration int) error {
	switch {
	case start == Unset && end == Unset:
		return nil
	case end == Unset:
		return ValidatePeriod(start, duration)
	case start == Unset:
		return ValidatePeriod(end, duration)
	default:
		return ValidateSpan(start, end, duration)
	}
}
