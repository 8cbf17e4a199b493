// Package validation provides common format validation utilities.
package validation

import "regexp"

var (
	// emailPattern accepts the standard local@domain.tld shape without
	// attempting full RFC 5322 coverage.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern is deliberately permissive: digits plus common
	// punctuation, at least 10 characters total.
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,}$`)
)

// ValidEmail checks whether the value looks like an email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone checks whether the value looks like a phone number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
