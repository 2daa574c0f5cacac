package repository

import (
	"context"
	"errors"

	"boardingpass-service/internal/domain/entity"
)

// ErrSubmitEndpointNotConfigured is returned when no submission endpoint is set
var ErrSubmitEndpointNotConfigured = errors.New("submission endpoint not configured")

// SubmissionRepository forwards a travel form to the collecting endpoint
type SubmissionRepository interface {
	Submit(ctx context.Context, submission entity.FlightSubmission) error
}
