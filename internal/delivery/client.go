// Package delivery implements the CRM submission pipeline: validation,
// sanitization, and resilient transmission of a lead with bounded retries.
package delivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/healthcareamerican/lifequote/internal/lead"
	"github.com/healthcareamerican/lifequote/pkg/constants"
)

// HTTPDoer is the subset of http.Client the delivery client depends on.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the delivery client's immutable configuration. Zero values
// take the documented defaults at construction.
type Config struct {
	// Endpoint is the CRM lead submission URL. Default "/api/leads".
	Endpoint string

	// APIKey, when set, is attached as a bearer credential.
	APIKey string

	// Timeout bounds each individual attempt. Default 10s.
	Timeout time.Duration

	// RetryAttempts is the maximum number of attempts. Default 3.
	RetryAttempts int

	// RetryDelay is the base delay for exponential backoff. Default 1s.
	RetryDelay time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient HTTPDoer
}

// Result is a successful submission outcome. Data carries the CRM's raw
// JSON response payload.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message"`
}

// Client submits leads to the CRM. Its configuration is read-only after
// construction, so a single instance is safe for concurrent use; each
// Submit call is sequential end-to-end and never fans out.
type Client struct {
	endpoint      string
	apiKey        string
	timeout       time.Duration
	retryAttempts int
	retryDelay    time.Duration
	httpClient    HTTPDoer
	logger        *zap.Logger
}

// NewClient constructs a delivery client, applying defaults for any unset
// configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = constants.DefaultCRMEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.DefaultCRMTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = constants.DefaultRetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = constants.DefaultRetryDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{
		endpoint:      cfg.Endpoint,
		apiKey:        cfg.APIKey,
		timeout:       cfg.Timeout,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		httpClient:    cfg.HTTPClient,
		logger:        logger,
	}
}

// Submit validates, sanitizes, and transmits a lead to the CRM. Validation
// failures terminate immediately with no network attempt. Transmission
// failures classified as retryable are re-attempted up to the configured
// budget with exponential backoff; the last classified error is returned
// once the budget is exhausted or a terminal failure occurs.
func (c *Client) Submit(ctx context.Context, l lead.Lead) (*Result, error) {
	validation := lead.Validate(l)
	if !validation.Valid {
		submissionErr := &Error{
			Kind:    KindValidation,
			Message: "lead validation failed",
			Details: validation.Errors,
		}
		c.logger.Warn("lead validation failed",
			zap.String("op", "delivery.Submit"),
			zap.String("email", l.RedactedEmail()),
			zap.Strings("errors", validation.Errors),
		)
		return nil, submissionErr
	}

	sanitized := lead.Sanitize(l)
	if sanitized.Timestamp == "" {
		sanitized.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if sanitized.Source == "" {
		sanitized.Source = constants.LeadSource
	}
	if sanitized.ReferenceID == "" {
		sanitized.ReferenceID = uuid.NewString()
	}

	body, err := json.Marshal(sanitized)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "failed to encode lead", Cause: err}
	}

	c.logger.Info("submitting lead to CRM",
		zap.String("op", "delivery.Submit"),
		zap.String("email", sanitized.RedactedEmail()),
		zap.String("referenceId", sanitized.ReferenceID),
	)

	var lastErr *Error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		result, attemptErr := c.post(ctx, body)
		if attemptErr == nil {
			c.logger.Info("lead submitted to CRM",
				zap.String("op", "delivery.Submit"),
				zap.String("email", sanitized.RedactedEmail()),
				zap.String("referenceId", sanitized.ReferenceID),
				zap.Int("attempt", attempt),
			)
			return result, nil
		}

		lastErr = attemptErr
		if !attemptErr.Kind.Retryable() || attempt == c.retryAttempts {
			break
		}

		delay := c.retryDelay * (1 << (attempt - 1))
		c.logger.Warn("retrying lead submission",
			zap.String("op", "delivery.Submit"),
			zap.String("email", sanitized.RedactedEmail()),
			zap.String("referenceId", sanitized.ReferenceID),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", c.retryAttempts),
			zap.Duration("delay", delay),
			zap.String("kind", attemptErr.Kind.String()),
		)
		if err := sleep(ctx, delay); err != nil {
			lastErr = &Error{Kind: KindUnknown, Message: "submission canceled", Cause: err}
			break
		}
	}

	c.logger.Error("lead submission failed",
		zap.String("op", "delivery.Submit"),
		zap.String("email", sanitized.RedactedEmail()),
		zap.String("referenceId", sanitized.ReferenceID),
		zap.String("kind", lastErr.Kind.String()),
		zap.Error(lastErr),
	)
	return nil, lastErr
}

// post performs one bounded submission attempt.
func (c *Client) post(ctx context.Context, body []byte) (*Result, *Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() == context.DeadlineExceeded {
			return nil, &Error{Kind: KindTimeout, Message: "CRM request timeout", Cause: err}
		}
		return nil, &Error{Kind: KindTransport, Message: "CRM request failed", Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to read CRM response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Kind:    classifyStatus(resp.StatusCode),
			Message: fmt.Sprintf("CRM API returned %d", resp.StatusCode),
			Status:  resp.StatusCode,
			Body:    string(respBody),
		}
	}

	var data json.RawMessage
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, &Error{
			Kind:    KindUnknown,
			Message: "CRM response was not valid JSON",
			Status:  resp.StatusCode,
			Body:    string(respBody),
			Cause:   err,
		}
	}

	return &Result{Success: true, Data: data, Message: "Lead submitted successfully"}, nil
}

// HealthCheck probes the CRM endpoint with an OPTIONS request and reports
// whether it is reachable.
func (c *Client) HealthCheck(ctx context.Context) bool {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodOptions, c.endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("CRM health check failed",
			zap.String("op", "delivery.HealthCheck"),
			zap.Error(err),
		)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// sleep waits for the backoff delay or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
