package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration validates that a duration is positive
// (greater than zero).
//
// This is commonly used for timeout and interval validation where a
// non-zero, positive value is required.
//
// Example:
//
//	if err := ValidatePositiveDuration(timeout); err != nil {
//	    return fmt.Errorf("invalid timeout: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange validates that a duration is within a specified
// range. The duration must be >= min and <= max (inclusive).
//
// Example:
//
//	if err := ValidateDurationRange(interval, time.Minute, time.Hour); err != nil {
//	    return fmt.Errorf("invalid refresh interval: %w", err)
//	}
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}

	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}

	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}

	return nil
}
