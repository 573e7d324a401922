package huhforms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tramo/internal/validation"
)

// ValidateDuration returns a validator accepting whole numbers in
// 1..maxDuration. A zero maxDuration only enforces the lower bound.
func ValidateDuration(maxDuration int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number of periods")
		}
		if err := validation.ValidateDuration(n); err != nil {
			return errors.New("a project needs at least 1 period")
		}
		if maxDuration > 0 && n > maxDuration {
			return fmt.Errorf("at most %d periods", maxDuration)
		}
		return nil
	}
}

// ValidatePath rejects an empty file path
func ValidatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter a file path")
	}
	return nil
}
