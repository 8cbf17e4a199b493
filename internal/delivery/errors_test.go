package delivery

import (
	"net/http"
	"strings"
	"testing"
)

func TestKindRetryable(t *testing.T) {
	tests := []struct {
		kind      Kind
		retryable bool
	}{
		{KindValidation, false},
		{KindTimeout, true},
		{KindServerError, true},
		{KindRateLimited, true},
		{KindClientError, false},
		{KindTransport, true},
		{KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Retryable(); got != tt.retryable {
				t.Errorf("%s.Retryable() = %v, expected %v", tt.kind, got, tt.retryable)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected Kind
	}{
		{http.StatusInternalServerError, KindServerError},
		{http.StatusBadGateway, KindServerError},
		{http.StatusServiceUnavailable, KindServerError},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadRequest, KindClientError},
		{http.StatusUnauthorized, KindClientError},
		{http.StatusNotFound, KindClientError},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			if got := classifyStatus(tt.status); got != tt.expected {
				t.Errorf("classifyStatus(%d) = %s, expected %s", tt.status, got, tt.expected)
			}
		})
	}
}

func TestErrorMessageIncludesValidationDetails(t *testing.T) {
	err := &Error{
		Kind:    KindValidation,
		Message: "lead validation failed",
		Details: []string{"Missing required field: email", "Invalid phone number format"},
	}

	msg := err.Error()
	if !strings.Contains(msg, "VALIDATION_ERROR") {
		t.Errorf("error string %q missing kind", msg)
	}
	if !strings.Contains(msg, "Missing required field: email") {
		t.Errorf("error string %q missing detail", msg)
	}
}

func TestUserMessages(t *testing.T) {
	tests := []struct {
		kind     Kind
		contains string
	}{
		{KindValidation, "required fields"},
		{KindTimeout, "connection"},
		{KindServerError, "technical difficulties"},
		{KindRateLimited, "technical difficulties"},
		{KindClientError, "technical difficulties"},
		{KindTransport, "technical difficulties"},
		{KindUnknown, "technical difficulties"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &Error{Kind: tt.kind, Body: "super secret provider payload"}
			msg := err.UserMessage()
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("UserMessage() = %q, expected to mention %q", msg, tt.contains)
			}
			if strings.Contains(msg, "super secret") {
				t.Error("UserMessage leaked the raw provider body")
			}
		})
	}
}
