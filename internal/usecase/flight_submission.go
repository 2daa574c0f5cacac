package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/metrics"
	"boardingpass-service/pkg/utils"
)

// ValidationError lists the required form fields that were left empty
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// FlightSubmissionService validates travel forms and forwards them
type FlightSubmissionService struct {
	submissionRepo   repository.SubmissionRepository
	flightRecordRepo repository.FlightRecordRepository
	metrics          *metrics.Metrics
	logger           logger.Logger
}

// NewFlightSubmissionService creates a new submission service
func NewFlightSubmissionService(
	submissionRepo repository.SubmissionRepository,
	flightRecordRepo repository.FlightRecordRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightSubmissionService {
	return &FlightSubmissionService{
		submissionRepo:   submissionRepo,
		flightRecordRepo: flightRecordRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Submit sanitizes, validates and forwards the form, then records it
func (s *FlightSubmissionService) Submit(ctx context.Context, submission entity.FlightSubmission) (*entity.FlightRecord, error) {
	submission = Sanitize(submission)

	if err := Validate(submission); err != nil {
		s.metrics.SubmissionsSent.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	if err := s.submissionRepo.Submit(ctx, submission); err != nil {
		s.logger.Error("Failed to submit flight", "bookingKey", submission.BookingKey(), "error", err)
		s.metrics.SubmissionsSent.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("failed to submit flight: %w", err)
	}

	record := &entity.FlightRecord{
		BookingKey:     submission.BookingKey(),
		PassengerName:  submission.PassengerName,
		Airline:        submission.Airline,
		FlightNumber:   submission.FlightNumber,
		From:           submission.From,
		To:             submission.To,
		Date:           submission.Date,
		Time:           submission.Time,
		BookingClass:   submission.BookingClass,
		Reason:         submission.Reason,
		CompanyPrivate: submission.CompanyPrivate,
		SubmittedAt:    time.Now(),
	}

	if s.flightRecordRepo != nil {
		if err := s.flightRecordRepo.Upsert(ctx, record); err != nil {
			s.logger.Error("Failed to store flight record", "bookingKey", record.BookingKey, "error", err)
			s.metrics.ErrorsCount.WithLabelValues("store_flight").Inc()
		}
	}

	s.metrics.SubmissionsSent.WithLabelValues(metrics.OutcomeSubmitted).Inc()
	s.logger.Info("Flight submitted", "bookingKey", record.BookingKey)
	return record, nil
}

// Sanitize trims every field and restricts airport codes and flight numbers
// to their legal characters
func Sanitize(s entity.FlightSubmission) entity.FlightSubmission {
	return entity.FlightSubmission{
		PassengerName:  strings.TrimSpace(s.PassengerName),
		Airline:        strings.TrimSpace(s.Airline),
		FlightNumber:   utils.SanitizeFlightNumber(s.FlightNumber),
		From:           utils.SanitizeIATA(s.From),
		To:             utils.SanitizeIATA(s.To),
		Date:           strings.TrimSpace(s.Date),
		Time:           strings.TrimSpace(s.Time),
		Reason:         strings.TrimSpace(s.Reason),
		AirplaneType:   strings.TrimSpace(s.AirplaneType),
		BookingClass:   strings.TrimSpace(s.BookingClass),
		MorePassengers: strings.TrimSpace(s.MorePassengers),
		Comment:        strings.TrimSpace(s.Comment),
		CompanyPrivate: strings.TrimSpace(s.CompanyPrivate),
	}
}

// Validate reports every required field that is empty
func Validate(s entity.FlightSubmission) error {
	required := []struct {
		name  string
		value string
	}{
		{"passengerName", s.PassengerName},
		{"airline", s.Airline},
		{"flightNumber", s.FlightNumber},
		{"from", s.From},
		{"to", s.To},
		{"date", s.Date},
		{"time", s.Time},
		{"bookingClass", s.BookingClass},
		{"reason", s.Reason},
		{"companyPrivate", s.CompanyPrivate},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
