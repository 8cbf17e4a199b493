package delivery

import (
	"fmt"
	"strings"
)

// Kind classifies a submission failure. The classification decides both
// whether a retry is permitted and which user-facing message applies.
type Kind int

// The failure classifications.
const (
	// KindUnknown is the terminal catch-all for unclassifiable failures.
	KindUnknown Kind = iota

	// KindValidation means the lead failed structural validation; no
	// network attempt is made.
	KindValidation

	// KindTimeout means an attempt exceeded its configured bound.
	KindTimeout

	// KindServerError covers CRM responses with status >= 500.
	KindServerError

	// KindRateLimited covers CRM 429 responses.
	KindRateLimited

	// KindClientError covers other 4xx rejections.
	KindClientError

	// KindTransport covers connectivity failures before any response.
	KindTransport
)

// String returns the stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindTimeout:
		return "TIMEOUT"
	case KindServerError:
		return "SERVER_ERROR"
	case KindRateLimited:
		return "RATE_LIMITED"
	case KindClientError:
		return "CLIENT_ERROR"
	case KindTransport:
		return "TRANSPORT_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Retryable reports whether a failure of this kind permits re-attempting the
// same request. Timeouts, transport failures, server errors, and rate limits
// are retryable; everything else is terminal.
func (k Kind) Retryable() bool {
	switch k {
	case KindTimeout, KindTransport, KindServerError, KindRateLimited:
		return true
	default:
		return false
	}
}

// Error is a classified submission failure.
type Error struct {
	Kind    Kind
	Message string

	// Details holds the ordered field-level messages for validation
	// failures.
	Details []string

	// Status and Body capture the CRM response for HTTP-level failures.
	Status int
	Body   string

	// Cause is the underlying transport error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Details, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage maps the failure onto a message safe to show an end user. Raw
// CRM response bodies are never exposed.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindValidation:
		return "Please complete all required fields and try again."
	case KindTimeout:
		return "The request timed out. Please check your connection and retry."
	default:
		return "We are experiencing technical difficulties. Please try again later."
	}
}

// classifyStatus maps a non-2xx CRM status code onto an error kind.
func classifyStatus(status int) Kind {
	switch {
	case status >= 500:
		return KindServerError
	case status == 429:
		return KindRateLimited
	case status >= 400:
		return KindClientError
	default:
		return KindUnknown
	}
}
