package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// AliasRepository resolves personal display names for known passengers
type AliasRepository interface {
	FindByRawName(ctx context.Context, rawName string) (*entity.PassengerAlias, error)
}
