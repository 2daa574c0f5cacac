package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// ScanRepository stores the audit log of processed payloads
type ScanRepository interface {
	Save(ctx context.Context, record *entity.ScanRecord) error
	FindRecent(ctx context.Context, limit int) ([]*entity.ScanRecord, error)
}
