package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// FlightRecordRepository defines the interface for flight record operations
type FlightRecordRepository interface {
	FindByBookingKey(ctx context.Context, bookingKey string) (*entity.FlightRecord, error)
	Upsert(ctx context.Context, record *entity.FlightRecord) error
}
