// Package validate provides shared validation functions for command input.
package validate

import (
	"fmt"
	"strings"
	"time"
)

// Required validates that a value is non-empty after trimming whitespace.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// Email validates a minimal email shape. The backend does the real
// validation; this only catches obvious typos before a round trip.
func Email(value string) error {
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || !strings.Contains(value[at:], ".") {
		return fmt.Errorf("%q is not a valid email", value)
	}
	return nil
}

// Date validates an ISO date (2006-01-02), the backend's LocalDate format.
// Empty values pass; use Required for mandatory fields.
func Date(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%q is not a valid date (want YYYY-MM-DD)", value)
	}
	return nil
}

// TimeOfDay validates a reminder time (15:04 or 15:04:05).
func TimeOfDay(value string) error {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid time (want HH:MM or HH:MM:SS)", value)
}

// OTP validates a one-time passcode: six digits.
func OTP(value string) error {
	if len(value) != 6 {
		return fmt.Errorf("passcode must be 6 digits")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("passcode must be 6 digits")
		}
	}
	return nil
}
