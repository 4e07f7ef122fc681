// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
)

// ValidateDate checks a calendar date in YYYY-MM-DD form.
func ValidateDate(date string) bool {
	return dateRegex.MatchString(date)
}

// ValidateClock checks a 24h clock value, HH:MM with optional seconds.
func ValidateClock(t string) bool {
	return clockRegex.MatchString(t)
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits, or a local 0-prefixed number
	regex := `^(\+?[1-9]\d{1,14}|0\d{6,14})$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
