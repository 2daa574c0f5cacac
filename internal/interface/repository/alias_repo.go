package repository

import (
	"context"
	"strings"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAliasRepository implements the AliasRepository interface
type GormAliasRepository struct {
	db *gorm.DB
}

// NewGormAliasRepository creates a new GORM alias repository
func NewGormAliasRepository(db *gorm.DB) repository.AliasRepository {
	return &GormAliasRepository{
		db: db,
	}
}

// PassengerAliases GORM model for database mapping
type PassengerAliases struct {
	ID        uint           `gorm:"primaryKey"`
	RawName   string         `gorm:"column:raw_name;unique"`
	Alias     string         `gorm:"column:alias"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (PassengerAliases) TableName() string {
	return "m_passenger_aliases"
}

// FindByRawName looks up the alias for an upper-cased LAST/FIRST name
func (r *GormAliasRepository) FindByRawName(ctx context.Context, rawName string) (*entity.PassengerAlias, error) {
	var alias PassengerAliases
	key := strings.ToUpper(strings.TrimSpace(rawName))
	result := r.db.WithContext(ctx).Where("raw_name = ?", key).First(&alias)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &entity.PassengerAlias{
		ID:      alias.ID,
		RawName: alias.RawName,
		Alias:   alias.Alias,
	}, nil
}
