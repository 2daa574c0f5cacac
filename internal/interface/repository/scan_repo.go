package repository

import (
	"context"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScanRepository implements ScanRepository
type MongoScanRepository struct {
	collection *mongo.Collection
}

// NewMongoScanRepository creates a new scan log repository
func NewMongoScanRepository(ctx context.Context, db *mongo.Database) (repository.ScanRepository, error) {
	collection := db.Collection("scan_logs")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"processedAt": -1}},
		{Keys: bson.M{"status": 1}},
	})
	if err != nil {
		return nil, err
	}

	return &MongoScanRepository{
		collection: collection,
	}, nil
}

// Save inserts a scan log entry
func (r *MongoScanRepository) Save(ctx context.Context, record *entity.ScanRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.ProcessedAt.IsZero() {
		record.ProcessedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindRecent returns the latest scan log entries, newest first
func (r *MongoScanRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"processedAt": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*entity.ScanRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
