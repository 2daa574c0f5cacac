package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/metrics"
)

// ErrUnsupportedFormat is returned when no handler accepts a payload's format
var ErrUnsupportedFormat = errors.New("unsupported barcode format")

// ScanOrchestrator routes decoded payloads to handlers and logs every scan
type ScanOrchestrator struct {
	router   PayloadRouter
	scanRepo repository.ScanRepository
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewScanOrchestrator creates a new scan orchestrator
func NewScanOrchestrator(
	router PayloadRouter,
	scanRepo repository.ScanRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ScanOrchestrator {
	return &ScanOrchestrator{
		router:   router,
		scanRepo: scanRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// ProcessScan handles a single payload
func (o *ScanOrchestrator) ProcessScan(ctx context.Context, payload entity.RawBarcodePayload) (*entity.ScanResult, error) {
	start := time.Now()
	defer func() {
		o.metrics.ScanProcessingTime.Observe(time.Since(start).Seconds())
	}()

	handler := o.router.GetHandler(payload.Format)
	if handler == nil {
		o.logger.Debug("No handler found for payload", "format", payload.Format)

		o.save(ctx, &entity.ScanRecord{
			Raw:     payload.Text,
			Format:  payload.Format,
			Status:  entity.ScanStatusSkipped,
			Handler: "none",
		})
		o.metrics.ScansProcessed.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, payload.Format)
	}

	result, err := handler.Process(ctx, payload)
	if err != nil {
		o.logger.Error("Handler failed to process payload",
			"handler", handler.Name(),
			"error", err)
		o.metrics.ErrorsCount.WithLabelValues("process_scan").Inc()
		return nil, fmt.Errorf("failed to process payload: %w", err)
	}

	status := entity.ScanStatusParsed
	outcome := metrics.OutcomeParsed
	if result.Record == nil {
		status = entity.ScanStatusUnreadable
		outcome = metrics.OutcomeUnreadable
	}

	o.save(ctx, &entity.ScanRecord{
		Raw:      payload.Text,
		Format:   payload.Format,
		Status:   status,
		Handler:  handler.Name(),
		Record:   result.Record,
		Warnings: result.Warnings,
	})
	o.metrics.ScansProcessed.WithLabelValues(outcome).Inc()

	o.logger.Info("Payload processed",
		"handler", handler.Name(),
		"status", status,
		"warnings", len(result.Warnings))

	return result, nil
}

// RecentScans returns the latest scan log entries
func (o *ScanOrchestrator) RecentScans(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	if o.scanRepo == nil {
		return []*entity.ScanRecord{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	records, err := o.scanRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load scans: %w", err)
	}
	return records, nil
}

// save logs the scan; storage failures never fail the scan itself
func (o *ScanOrchestrator) save(ctx context.Context, record *entity.ScanRecord) {
	if o.scanRepo == nil {
		return
	}
	record.ProcessedAt = time.Now()
	if err := o.scanRepo.Save(ctx, record); err != nil {
		o.logger.Error("Failed to save scan record", "status", record.Status, "error", err)
		o.metrics.ErrorsCount.WithLabelValues("save_scan").Inc()
	}
}
