package validator

import (
	"regexp"
	"strings"
)

// Regex patterns shared by signup and registration validation.
var (
	// Email pattern - RFC 5322 simplified
	EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

	// Phone pattern: optional country code, then 10 digits
	PhonePattern = regexp.MustCompile(`^(\+\d{1,3})?\d{10}$`)

	// Password pattern: min 6 chars, letters/digits/common symbols
	PasswordPattern = regexp.MustCompile(`^[A-Za-z\d@#$%^&+=!\-]{6,}$`)
)

// IsValidEmail validates email format.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return EmailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPhone validates a phone number, tolerating spaces and hyphens.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	return PhonePattern.MatchString(cleaned)
}

// IsValidPassword requires at least 6 characters with a letter and a digit.
func IsValidPassword(password string) bool {
	if !PasswordPattern.MatchString(password) {
		return false
	}
	hasLetter := regexp.MustCompile(`[A-Za-z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`\d`).MatchString(password)
	return hasLetter && hasDigit
}
