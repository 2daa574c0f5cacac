package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
)

var fixedClock = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }

// buildPass lays out a BCBP primary record plus a two character trailer
func buildPass(name, pnr, from, to, carrier, flight, julian, compartment, seat string) string {
	return fmt.Sprintf("%-1s%-1s%-20s%-1s%-7s%-3s%-3s%-3s%-5s%-3s%-1s%-4s%-5s%-1s%s",
		"M", "1", name, "E", pnr, from, to, carrier, flight, julian, compartment, seat, "0042", "1", ">5")
}

type fakeAirlineRepo struct {
	airlines map[string]string
	err      error
	calls    []string
}

func (r *fakeAirlineRepo) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	r.calls = append(r.calls, code)
	if r.err != nil {
		return nil, r.err
	}
	name, ok := r.airlines[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.Airline{Code: code, Name: name}, nil
}

type fakeAirportRepo struct {
	airports map[string]entity.Airport
}

func (r *fakeAirportRepo) GetByAirportCode(ctx context.Context, code string) (*entity.Airport, error) {
	a, ok := r.airports[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

type fakeAliasRepo struct {
	aliases map[string]string
	err     error
}

func (r *fakeAliasRepo) FindByRawName(ctx context.Context, rawName string) (*entity.PassengerAlias, error) {
	if r.err != nil {
		return nil, r.err
	}
	alias, ok := r.aliases[rawName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.PassengerAlias{RawName: rawName, Alias: alias}, nil
}

type fakeScanRepo struct {
	saved []*entity.ScanRecord
	err   error
}

func (r *fakeScanRepo) Save(ctx context.Context, record *entity.ScanRecord) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, record)
	return nil
}

func (r *fakeScanRepo) FindRecent(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	if limit > len(r.saved) {
		limit = len(r.saved)
	}
	return r.saved[:limit], nil
}

type fakeSheetRepo struct {
	values [][]string
	err    error
}

func (r *fakeSheetRepo) FetchValues(ctx context.Context) ([][]string, error) {
	return r.values, r.err
}

type fakeSubmissionRepo struct {
	submitted []entity.FlightSubmission
	err       error
}

func (r *fakeSubmissionRepo) Submit(ctx context.Context, submission entity.FlightSubmission) error {
	if r.err != nil {
		return r.err
	}
	r.submitted = append(r.submitted, submission)
	return nil
}

type fakeFlightRecordRepo struct {
	records map[string]*entity.FlightRecord
	err     error
}

func (r *fakeFlightRecordRepo) FindByBookingKey(ctx context.Context, bookingKey string) (*entity.FlightRecord, error) {
	rec, ok := r.records[bookingKey]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rec, nil
}

func (r *fakeFlightRecordRepo) Upsert(ctx context.Context, record *entity.FlightRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records[record.BookingKey] = record
	return nil
}

type stubRouter struct {
	handlers []PayloadHandler
}

func (r *stubRouter) Register(handler PayloadHandler) {
	r.handlers = append(r.handlers, handler)
}

func (r *stubRouter) GetHandler(format string) PayloadHandler {
	for _, h := range r.handlers {
		if h.CanHandle(format) {
			return h
		}
	}
	return nil
}

type processorHandler struct {
	processor *BoardingPassProcessor
	err       error
}

func (h *processorHandler) Name() string { return "test-bcbp" }

func (h *processorHandler) CanHandle(format string) bool {
	return format == "" || strings.EqualFold(format, "PDF_417")
}

func (h *processorHandler) Process(ctx context.Context, payload entity.RawBarcodePayload) (*entity.ScanResult, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.processor.Process(ctx, payload), nil
}
