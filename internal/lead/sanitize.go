package lead

import "strings"

// Sanitize returns a copy of the lead with angle brackets stripped and
// surrounding whitespace trimmed from every string field. Non-string fields
// pass through unchanged and the input is never mutated.
func Sanitize(l Lead) Lead {
	sanitized := l
	sanitized.FirstName = cleanString(l.FirstName)
	sanitized.LastName = cleanString(l.LastName)
	sanitized.Email = cleanString(l.Email)
	sanitized.Phone = cleanString(l.Phone)
	sanitized.Zip = cleanString(l.Zip)
	sanitized.Gender = cleanString(l.Gender)
	sanitized.HealthStatus = cleanString(l.HealthStatus)
	sanitized.Smoker = cleanString(l.Smoker)
	return sanitized
}

func cleanString(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}
