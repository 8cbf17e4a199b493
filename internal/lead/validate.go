package lead

import (
	"fmt"

	"github.com/healthcareamerican/lifequote/pkg/constants"
	"github.com/healthcareamerican/lifequote/pkg/validation"
)

// Result is the outcome of validating a lead. Errors holds every failed
// check in field-declaration order, stable across runs for the same input.
type Result struct {
	Valid  bool
	Errors []string
}

var validGenders = []string{"Male", "Female"}
var validHealthStatuses = []string{"Excellent", "Good", "Average", "Fair"}
var validSmokerValues = []string{"Yes", "No"}

// Validate runs every check against the lead and reports all failures in one
// pass; checks are independent and never short-circuit. Numeric zero counts
// as present for the required-field checks, and range checks only apply to
// values that were supplied.
func Validate(l Lead) Result {
	var errs []string

	required := []struct {
		name    string
		present bool
	}{
		{"firstName", l.FirstName != ""},
		{"lastName", l.LastName != ""},
		{"email", l.Email != ""},
		{"phone", l.Phone != ""},
		{"age", true},
		{"zip", l.Zip != ""},
		{"gender", l.Gender != ""},
		{"healthStatus", l.HealthStatus != ""},
		{"smoker", l.Smoker != ""},
		{"coverage", true},
		{"years", true},
		{"estimatedMonthlyPremium", l.EstimatedMonthlyPremium != ""},
	}
	for _, field := range required {
		if !field.present {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field.name))
		}
	}

	if l.Email != "" && !validation.ValidEmail(l.Email) {
		errs = append(errs, "Invalid email format")
	}

	if l.Phone != "" && !validation.ValidPhone(l.Phone) {
		errs = append(errs, "Invalid phone number format")
	}

	if l.Age != 0 && (l.Age < constants.MinLeadAge || l.Age > constants.MaxLeadAge) {
		errs = append(errs, fmt.Sprintf("Age must be between %d and %d", constants.MinLeadAge, constants.MaxLeadAge))
	}

	if l.Coverage != 0 && (l.Coverage < constants.MinLeadCoverage || l.Coverage > constants.MaxLeadCoverage) {
		errs = append(errs, "Coverage must be between $100k and $5M")
	}

	if l.Gender != "" && !contains(validGenders, l.Gender) {
		errs = append(errs, "Invalid gender value")
	}

	if l.HealthStatus != "" && !contains(validHealthStatuses, l.HealthStatus) {
		errs = append(errs, "Invalid health status value")
	}

	if l.Smoker != "" && !contains(validSmokerValues, l.Smoker) {
		errs = append(errs, "Invalid smoker value")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
