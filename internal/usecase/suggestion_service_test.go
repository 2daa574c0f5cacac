package usecase

import (
	"context"
	"errors"
	"testing"

	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/utils"

	"github.com/stretchr/testify/assert"
)

var previousFlights = [][]string{
	{"Timestamp", "Passenger Name", "Airline", "Reason for Travel", "Airplane Type", "Booking Class", "comment"},
	{"1/5/2024 10:00:00", "Jane Doe", "Austrian", "Conference", "A320", "Economy", ""},
	{"3/1/2024 09:00:00", "John Smith", "Lufthansa", "Customer visit", "A321", "Business", "window seat"},
	{"2/1/2024 08:00:00", "Jane Doe", "Swiss", "Training", "", "Economy", ""},
}

func TestSuggestionService_FieldSuggestions(t *testing.T) {
	s := NewSuggestionService(&fakeSheetRepo{values: previousFlights}, logger.NewNopLogger())

	t.Run("filtered by passenger", func(t *testing.T) {
		got := s.FieldSuggestions(context.Background(), "jane doe")
		assert.Equal(t, map[string]string{
			"reason":       "Training",
			"airplaneType": "A320",
			"bookingClass": "Economy",
			"airline":      "Swiss",
		}, got)
	})

	t.Run("any passenger", func(t *testing.T) {
		got := s.FieldSuggestions(context.Background(), "")
		assert.Equal(t, map[string]string{
			"reason":       "Customer visit",
			"airplaneType": "A321",
			"bookingClass": "Business",
			"airline":      "Lufthansa",
			"comment":      "window seat",
		}, got)
	})

	t.Run("unknown passenger", func(t *testing.T) {
		assert.Empty(t, s.FieldSuggestions(context.Background(), "Nobody"))
	})
}

func TestSuggestionService_LastFieldValue(t *testing.T) {
	s := NewSuggestionService(&fakeSheetRepo{values: previousFlights}, logger.NewNopLogger())

	assert.Equal(t, "Lufthansa", s.LastFieldValue(context.Background(), "airline", ""))
	assert.Equal(t, "Swiss", s.LastFieldValue(context.Background(), "airline", "Jane Doe"))
	assert.Equal(t, "Business", s.LastFieldValue(context.Background(), "bookingClass", ""))
	assert.Equal(t, "", s.LastFieldValue(context.Background(), "seat", ""))
}

func TestSuggestionService_UniqueFieldValues(t *testing.T) {
	s := NewSuggestionService(&fakeSheetRepo{values: previousFlights}, logger.NewNopLogger())

	assert.Equal(t, []string{"Lufthansa", "Swiss", "Austrian"}, s.UniqueFieldValues(context.Background(), "airline", 0))
	assert.Equal(t, []string{"Business", "Economy"}, s.UniqueFieldValues(context.Background(), "bookingClass", 0))
	assert.Equal(t, []string{"Lufthansa"}, s.UniqueFieldValues(context.Background(), "airline", 1))
	assert.Empty(t, s.UniqueFieldValues(context.Background(), "seat", 5))
}

func TestSuggestionService_FetchFailure(t *testing.T) {
	s := NewSuggestionService(&fakeSheetRepo{err: errors.New("quota exceeded")}, logger.NewNopLogger())

	assert.Empty(t, s.FieldSuggestions(context.Background(), "Jane Doe"))
	assert.Empty(t, s.UniqueFieldValues(context.Background(), "airline", 10))
	assert.Equal(t, "", s.LastFieldValue(context.Background(), "airline", ""))
}

func TestLastFieldValue_KeepsSheetOrderForUndatedRows(t *testing.T) {
	rows := utils.RowsToRecords([][]string{
		{"passengerName", "reason"},
		{"A", "first"},
		{"A", "second"},
	})

	assert.Equal(t, "first", lastFieldValue(rows, "reason", "a"))
}
