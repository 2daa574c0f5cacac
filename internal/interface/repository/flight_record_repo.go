package repository

import (
	"context"
	"errors"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRecordRepository implements FlightRecordRepository
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(ctx context.Context, db *mongo.Database) (repository.FlightRecordRepository, error) {
	collection := db.Collection("flight_records")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"bookingKey": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.M{"passengerName": 1},
		},
	})
	if err != nil {
		return nil, err
	}

	return &MongoFlightRecordRepository{
		collection: collection,
	}, nil
}

// FindByBookingKey finds a flight record by booking key
func (r *MongoFlightRecordRepository) FindByBookingKey(ctx context.Context, bookingKey string) (*entity.FlightRecord, error) {
	var record entity.FlightRecord
	err := r.collection.FindOne(ctx, bson.M{"bookingKey": bookingKey}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert creates or updates a flight record keyed by its booking key
func (r *MongoFlightRecordRepository) Upsert(ctx context.Context, record *entity.FlightRecord) error {
	now := time.Now()
	record.UpdatedAt = now

	updateDoc := bson.M{
		"passengerName":  record.PassengerName,
		"airline":        record.Airline,
		"flightNumber":   record.FlightNumber,
		"from":           record.From,
		"to":             record.To,
		"date":           record.Date,
		"time":           record.Time,
		"bookingClass":   record.BookingClass,
		"reason":         record.Reason,
		"companyPrivate": record.CompanyPrivate,
		"submittedAt":    record.SubmittedAt,
		"updatedAt":      record.UpdatedAt,
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"bookingKey": record.BookingKey},
		bson.M{
			"$set":         updateDoc,
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	if result.UpsertedID != nil {
		if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
			record.ID = oid.Hex()
		}
		record.CreatedAt = now
	}

	return nil
}
