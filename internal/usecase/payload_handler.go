package usecase

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// PayloadHandler defines the interface for decoded-barcode handlers
type PayloadHandler interface {
	// Name identifies the handler in logs and scan records
	Name() string

	// CanHandle determines if this handler accepts the given symbology
	CanHandle(format string) bool

	// Process turns the payload into form suggestions
	Process(ctx context.Context, payload entity.RawBarcodePayload) (*entity.ScanResult, error)
}

// PayloadRouter routes payloads to the appropriate handler based on format
type PayloadRouter interface {
	// Register registers a handler
	Register(handler PayloadHandler)

	// GetHandler returns the first handler accepting format, or nil
	GetHandler(format string) PayloadHandler
}
