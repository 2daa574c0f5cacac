package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/internal/infrastructure/ratelimit"
	"boardingpass-service/pkg/logger"
)

// FormSubmissionRepository posts travel forms, form-encoded, to a web app
// endpoint such as a Google Apps Script deployment
type FormSubmissionRepository struct {
	endpoint   string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     logger.Logger
}

// NewFormSubmissionRepository creates a new submission repository
func NewFormSubmissionRepository(endpoint string, timeout time.Duration, limiter *ratelimit.Limiter, logger logger.Logger) repository.SubmissionRepository {
	return &FormSubmissionRepository{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		logger:     logger,
	}
}

// Submit sends the form. Any non-2xx/3xx answer is an error.
func (r *FormSubmissionRepository) Submit(ctx context.Context, submission entity.FlightSubmission) error {
	if r.endpoint == "" {
		return repository.ErrSubmitEndpointNotConfigured
	}

	if err := r.limiter.Wait(ctx, ratelimit.UpstreamSubmit); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	form := url.Values{}
	for k, v := range submission.Values() {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	r.logger.Info("Submitting flight form",
		"flightNumber", submission.FlightNumber,
		"date", submission.Date)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("submission endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
