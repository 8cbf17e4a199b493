package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/healthcareamerican/lifequote/internal/delivery"
)

func newTestHandler(t *testing.T, crmBehavior http.HandlerFunc) http.Handler {
	t.Helper()
	crm := httptest.NewServer(crmBehavior)
	t.Cleanup(crm.Close)

	client := delivery.NewClient(delivery.Config{
		Endpoint:      crm.URL,
		Timeout:       2 * time.Second,
		RetryAttempts: 1,
		RetryDelay:    time.Millisecond,
	}, zap.NewNop())

	return NewHandler(zap.NewNop(), client)
}

func TestHandleQuoteSuccess(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	body := `{"category":"TERM_LIFE","age":30,"coverage":100000,"years":10,"healthStatus":"Good","smokerStatus":"Non-smoker"}`
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp quoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Eligible {
		t.Error("expected eligible quote")
	}
	if resp.Premium != 16.00 {
		t.Errorf("premium = %v, expected 16.00", resp.Premium)
	}
	if resp.Formatted != "$16.00" {
		t.Errorf("formatted = %q, expected $16.00", resp.Formatted)
	}
}

func TestHandleQuoteIneligible(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	body := `{"category":"TERM_LIFE","age":90,"coverage":100000,"years":10,"healthStatus":"Good","smokerStatus":"Non-smoker"}`
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp quoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Eligible {
		t.Error("expected ineligible quote for age 90")
	}
	if resp.Premium != 0 {
		t.Errorf("premium = %v, expected 0", resp.Premium)
	}
}

func TestHandleQuoteBadRequest(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleQuoteMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rr.Code)
	}
}

func submitBody(t *testing.T) *bytes.Reader {
	t.Helper()
	payload := map[string]any{
		"firstName":               "Jane",
		"lastName":                "Doe",
		"email":                   "jane.doe@example.com",
		"phone":                   "(410) 555-0123",
		"age":                     35,
		"zip":                     "21201",
		"gender":                  "Female",
		"healthStatus":            "Good",
		"smoker":                  "No",
		"coverage":                250000,
		"years":                   20,
		"estimatedMonthlyPremium": "35.20",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal lead: %v", err)
	}
	return bytes.NewReader(body)
}

func TestHandleSubmitLeadSuccess(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"leadId":"lead-789"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/leads", submitBody(t))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp submitResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success response")
	}
	if string(resp.Data) != `{"leadId":"lead-789"}` {
		t.Errorf("data = %s, expected provider payload", resp.Data)
	}
}

func TestHandleSubmitLeadValidationError(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("CRM should not be called for an invalid lead")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{"firstName":"Jane"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	var resp submitResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected failure response")
	}
	if len(resp.Errors) == 0 {
		t.Error("expected field-level validation messages")
	}
}

func TestHandleSubmitLeadUpstreamFailure(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/leads", submitBody(t))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rr.Code)
	}

	var resp submitResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected failure response")
	}
	if strings.Contains(resp.Message, "500") {
		t.Errorf("message %q leaks upstream status detail", resp.Message)
	}
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.OK || !resp.CRM {
		t.Errorf("health = %+v, expected ok and crm reachable", resp)
	}
}
