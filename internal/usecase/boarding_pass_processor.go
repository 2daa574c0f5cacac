package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/bcbp"
	"boardingpass-service/pkg/logger"
)

// Scan warnings surfaced to the form
const (
	WarningUnreadable = "barcode is not a readable boarding pass"
	WarningNoDate     = "flight date could not be determined from the boarding pass"
)

// airline designators are tried at these prefix lengths, in order
var airlinePrefixLengths = []int{2, 3, 1}

// BoardingPassProcessor maps a decoded BCBP payload onto travel form fields
type BoardingPassProcessor struct {
	airlineRepo repository.AirlineRepository
	airportRepo repository.AirportRepository
	aliasRepo   repository.AliasRepository
	logger      logger.Logger
	clock       func() time.Time
}

// NewBoardingPassProcessor creates a processor. Any repository may be nil, in
// which case that enrichment step is skipped.
func NewBoardingPassProcessor(
	airlineRepo repository.AirlineRepository,
	airportRepo repository.AirportRepository,
	aliasRepo repository.AliasRepository,
	logger logger.Logger,
) *BoardingPassProcessor {
	return &BoardingPassProcessor{
		airlineRepo: airlineRepo,
		airportRepo: airportRepo,
		aliasRepo:   aliasRepo,
		logger:      logger,
		clock:       time.Now,
	}
}

// WithClock replaces the clock whose year resolves the julian flight date
func (p *BoardingPassProcessor) WithClock(clock func() time.Time) *BoardingPassProcessor {
	p.clock = clock
	return p
}

// Process parses the payload and builds the form suggestions. A payload that
// is not a boarding pass still yields a result, with a warning and no fields.
func (p *BoardingPassProcessor) Process(ctx context.Context, payload entity.RawBarcodePayload) *entity.ScanResult {
	result := &entity.ScanResult{
		Raw:    payload.Text,
		Format: payload.Format,
		Fields: make(map[string]entity.FieldValue),
	}

	record, ok := bcbp.Parse(payload.Text, p.clock().Year())
	if !ok {
		p.logger.Warn("Payload is not a boarding pass", "format", payload.Format, "length", len(payload.Text))
		result.Warnings = append(result.Warnings, WarningUnreadable)
		return result
	}
	result.Record = &record

	if !record.HasDate() {
		result.Warnings = append(result.Warnings, WarningNoDate)
	}

	barcodeFields := map[string]string{
		entity.FieldPassengerName: record.PassengerName,
		entity.FieldFrom:          record.From,
		entity.FieldTo:            record.To,
		entity.FieldFlightNumber:  record.FlightNumber,
		entity.FieldDate:          record.Date,
		entity.FieldBookingClass:  record.BookingClass,
	}
	for name, value := range barcodeFields {
		if strings.TrimSpace(value) == "" {
			continue
		}
		result.Fields[name] = entity.FieldValue{
			Value:      value,
			Confidence: entity.ConfidenceBarcode,
			Source:     entity.SourceBarcode,
		}
	}

	p.applyAlias(ctx, record.PassengerName, result)
	p.resolveAirline(ctx, record.FlightNumber, result)
	result.FromAirport = p.lookupAirport(ctx, record.From)
	result.ToAirport = p.lookupAirport(ctx, record.To)

	p.logger.Info("Boarding pass processed",
		"flightNumber", record.FlightNumber,
		"from", record.From,
		"to", record.To,
		"fields", len(result.Fields))

	return result
}

func (p *BoardingPassProcessor) applyAlias(ctx context.Context, name string, result *entity.ScanResult) {
	if p.aliasRepo == nil || name == "" {
		return
	}

	alias, err := p.aliasRepo.FindByRawName(ctx, strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		p.logLookupError("alias", name, err)
		return
	}
	if alias.Alias == "" {
		return
	}

	result.Fields[entity.FieldPassengerName] = entity.FieldValue{
		Value:      alias.Alias,
		Confidence: entity.ConfidencePersonalAlias,
		Source:     entity.SourcePersonalAlias,
	}
}

func (p *BoardingPassProcessor) resolveAirline(ctx context.Context, flightNumber string, result *entity.ScanResult) {
	fn := strings.ToUpper(flightNumber)
	if fn == "" {
		return
	}

	if p.airlineRepo != nil {
		tried := make(map[string]bool)
		for _, n := range airlinePrefixLengths {
			if n > len(fn) {
				continue
			}
			code := fn[:n]
			if tried[code] {
				continue
			}
			tried[code] = true

			airline, err := p.airlineRepo.GetByCode(ctx, code)
			if err != nil {
				p.logLookupError("airline", code, err)
				continue
			}
			result.Fields[entity.FieldAirline] = entity.FieldValue{
				Value:      airline.Name,
				Confidence: entity.ConfidenceBarcodeDerived,
				Source:     entity.SourceBarcodeDerived,
			}
			return
		}
	}

	code := fn
	if len(code) > 2 {
		code = code[:2]
	}
	result.Fields[entity.FieldAirline] = entity.FieldValue{
		Value:      code,
		Confidence: entity.ConfidenceBarcodeCode,
		Source:     entity.SourceBarcodeCode,
	}
}

func (p *BoardingPassProcessor) lookupAirport(ctx context.Context, code string) *entity.Airport {
	code = strings.TrimSpace(code)
	if p.airportRepo == nil || code == "" {
		return nil
	}

	airport, err := p.airportRepo.GetByAirportCode(ctx, code)
	if err != nil {
		p.logLookupError("airport", code, err)
		return nil
	}
	return airport
}

func (p *BoardingPassProcessor) logLookupError(kind, key string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		p.logger.Debug("No reference entry", "kind", kind, "key", key)
		return
	}
	p.logger.Warn("Reference lookup failed", "kind", kind, "key", key, "error", err)
}
