// Package server exposes the quote and lead submission API consumed by the
// web front end.
package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/healthcareamerican/lifequote/internal/delivery"
	"github.com/healthcareamerican/lifequote/internal/lead"
	"github.com/healthcareamerican/lifequote/internal/pricing"
	"github.com/healthcareamerican/lifequote/internal/product"
	"github.com/healthcareamerican/lifequote/pkg/format"
)

type handler struct {
	logger *zap.Logger
	crm    *delivery.Client
}

// NewHandler constructs the HTTP handler that serves the quote and lead
// submission API.
func NewHandler(logger *zap.Logger, crm *delivery.Client) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{logger: logger, crm: crm}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/quote", h.handleQuote)
	mux.HandleFunc("/api/leads", h.handleSubmitLead)
	mux.HandleFunc("/api/health", h.handleHealth)

	return mux
}

type quoteRequest struct {
	Category     string  `json:"category"`
	Age          int     `json:"age"`
	Coverage     float64 `json:"coverage"`
	Years        int     `json:"years"`
	HealthStatus string  `json:"healthStatus"`
	SmokerStatus string  `json:"smokerStatus"`
}

type quoteResponse struct {
	Eligible  bool    `json:"eligible"`
	Premium   float64 `json:"premium"`
	Formatted string  `json:"formatted,omitempty"`
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := pricing.Quote(pricing.Applicant{
		Product:  product.Parse(req.Category),
		Age:      req.Age,
		Coverage: req.Coverage,
		Years:    req.Years,
		Health:   product.ParseHealthClass(req.HealthStatus),
		Tobacco:  product.ParseTobaccoStatus(req.SmokerStatus),
	})

	resp := quoteResponse{Eligible: result.Eligible, Premium: result.Premium}
	if result.Eligible {
		resp.Formatted = format.Currency(result.Premium)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type submitResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors,omitempty"`
}

func (h *handler) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var l lead.Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.crm.Submit(r.Context(), l)
	if err != nil {
		var submissionErr *delivery.Error
		if errors.As(err, &submissionErr) {
			h.writeJSON(w, statusForKind(submissionErr.Kind), submitResponse{
				Message: submissionErr.UserMessage(),
				Errors:  submissionErr.Details,
			})
			return
		}
		h.writeError(w, http.StatusInternalServerError, "submission failed")
		return
	}

	h.writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Data:    result.Data,
		Message: result.Message,
	})
}

type healthResponse struct {
	OK  bool `json:"ok"`
	CRM bool `json:"crm"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	crmOK := h.crm.HealthCheck(r.Context())
	h.writeJSON(w, http.StatusOK, healthResponse{OK: true, CRM: crmOK})
}

// statusForKind maps a submission failure classification onto an HTTP status
// for the front end. Raw CRM responses never pass through.
func statusForKind(kind delivery.Kind) int {
	switch kind {
	case delivery.KindValidation:
		return http.StatusBadRequest
	case delivery.KindTimeout:
		return http.StatusGatewayTimeout
	case delivery.KindRateLimited:
		return http.StatusServiceUnavailable
	case delivery.KindClientError:
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
