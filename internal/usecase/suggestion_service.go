package usecase

import (
	"context"
	"sort"
	"strings"

	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/utils"
)

const defaultUniqueLimit = 10

// suggestionColumns lists, per form field, the sheet columns that may hold
// its previous value, in priority order
var suggestionColumns = []struct {
	Field   string
	Columns []string
}{
	{Field: "reason", Columns: []string{"reason", "Reason for Travel", "Reason", "purpose"}},
	{Field: "airplaneType", Columns: []string{"airplaneType", "Airplane Type", "Aircraft Type", "aircraft", "plane"}},
	{Field: "bookingClass", Columns: []string{"bookingClass", "Booking Class", "Class", "cabin"}},
	{Field: "airline", Columns: []string{"airline", "carrier"}},
	{Field: "morePassengers", Columns: []string{"morePassengers", "More Passengers", "Additional Passengers", "Other Passengers", "Co-Passengers"}},
	{Field: "comment", Columns: []string{"comment", "comments", "notes", "remarks"}},
}

var (
	passengerColumns = []string{"passengerName", "Passenger Name", "name"}
	dateColumns      = []string{"date", "timestamp"}
)

// SuggestionService derives form defaults from previously submitted flights
type SuggestionService struct {
	sheetRepo repository.SheetRepository
	logger    logger.Logger
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(sheetRepo repository.SheetRepository, logger logger.Logger) *SuggestionService {
	return &SuggestionService{
		sheetRepo: sheetRepo,
		logger:    logger,
	}
}

// FieldSuggestions returns the most recent value of each suggestable field,
// restricted to the given passenger when one is set
func (s *SuggestionService) FieldSuggestions(ctx context.Context, passenger string) map[string]string {
	rows := s.loadRows(ctx)
	suggestions := make(map[string]string)

	for _, entry := range suggestionColumns {
		for _, column := range entry.Columns {
			if value := lastFieldValue(rows, column, passenger); value != "" {
				suggestions[entry.Field] = value
				break
			}
		}
	}
	return suggestions
}

// LastFieldValue returns the most recent non-blank value of field
func (s *SuggestionService) LastFieldValue(ctx context.Context, field, passenger string) string {
	return lastFieldValue(s.loadRows(ctx), field, passenger)
}

// UniqueFieldValues returns up to limit distinct values of field, most
// recent first
func (s *SuggestionService) UniqueFieldValues(ctx context.Context, field string, limit int) []string {
	if limit <= 0 {
		limit = defaultUniqueLimit
	}

	rows := s.loadRows(ctx)
	candidates := utils.FieldNameVariants(field)
	seen := make(map[string]bool)
	values := make([]string, 0, limit)

	for _, row := range rows {
		value := row.Get(candidates...)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
		if len(values) >= limit {
			break
		}
	}
	return values
}

// loadRows fetches the sheet and orders rows newest first. Fetch failures
// degrade to no rows.
func (s *SuggestionService) loadRows(ctx context.Context) []utils.Row {
	values, err := s.sheetRepo.FetchValues(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch previous flight entries", "error", err)
		return nil
	}

	rows := utils.RowsToRecords(values)
	sort.SliceStable(rows, func(i, j int) bool {
		ti := utils.ParseRowTime(rows[i].Get(dateColumns...))
		tj := utils.ParseRowTime(rows[j].Get(dateColumns...))
		return ti.After(tj)
	})
	return rows
}

func lastFieldValue(rows []utils.Row, field, passenger string) string {
	passenger = strings.TrimSpace(passenger)
	candidates := utils.FieldNameVariants(field)

	for _, row := range rows {
		if passenger != "" && !strings.EqualFold(row.Get(passengerColumns...), passenger) {
			continue
		}
		if value := row.Get(candidates...); value != "" {
			return value
		}
	}
	return ""
}
