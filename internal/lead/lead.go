// Package lead defines the lead record submitted to the CRM along with its
// validation and sanitization rules. Validation and sanitization are pure
// functions; the delivery client applies both before any network attempt.
package lead

// Lead is a contact record plus the computed quote. Field names in the JSON
// form match the CRM's expected payload.
type Lead struct {
	FirstName               string  `json:"firstName"`
	LastName                string  `json:"lastName"`
	Email                   string  `json:"email"`
	Phone                   string  `json:"phone"`
	Age                     int     `json:"age"`
	Zip                     string  `json:"zip"`
	Gender                  string  `json:"gender"`
	HealthStatus            string  `json:"healthStatus"`
	Smoker                  string  `json:"smoker"`
	Coverage                float64 `json:"coverage"`
	Years                   int     `json:"years"`
	EstimatedMonthlyPremium string  `json:"estimatedMonthlyPremium"`

	// Submission metadata, stamped by the delivery client when unset.
	Timestamp   string `json:"timestamp,omitempty"`
	Source      string `json:"source,omitempty"`
	ReferenceID string `json:"referenceId,omitempty"`
}

// RedactedEmail masks the local part of the lead's email for logging,
// keeping the first character and the domain.
func (l Lead) RedactedEmail() string {
	at := -1
	for i, r := range l.Email {
		if r == '@' {
			at = i
			break
		}
	}
	if at <= 0 {
		return "***"
	}
	return l.Email[:1] + "***" + l.Email[at:]
}
