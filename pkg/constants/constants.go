// Package constants provides shared constants for the lifequote application.
package constants

import "time"

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Lead validation bounds. These are global absolute bounds applied before
// submission and are independent of any product's eligibility window.
const (
	// MinLeadAge is the minimum age accepted on a lead
	MinLeadAge = 18

	// MaxLeadAge is the maximum age accepted on a lead
	MaxLeadAge = 150

	// MinLeadCoverage is the minimum coverage amount accepted on a lead
	MinLeadCoverage = 100000

	// MaxLeadCoverage is the maximum coverage amount accepted on a lead
	MaxLeadCoverage = 5000000
)

// CRM client defaults
const (
	// DefaultCRMEndpoint is the default lead submission endpoint
	DefaultCRMEndpoint = "/api/leads"

	// DefaultCRMTimeout bounds each individual submission attempt
	DefaultCRMTimeout = 10 * time.Second

	// DefaultRetryAttempts is the maximum number of submission attempts
	DefaultRetryAttempts = 3

	// DefaultRetryDelay is the base delay for exponential backoff
	DefaultRetryDelay = 1 * time.Second

	// UserAgent identifies this client on outbound CRM requests
	UserAgent = "HealthcareAmericanQuoteTool/1.0"

	// LeadSource tags every submitted lead with its origin
	LeadSource = "web_quote_tool"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the quote API
	DefaultServerAddress = ":8080"
)
