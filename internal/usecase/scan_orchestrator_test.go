package usecase

import (
	"context"
	"errors"
	"testing"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrchestrator(handler PayloadHandler, scanRepo *fakeScanRepo) (*ScanOrchestrator, *metrics.Metrics) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	router := &stubRouter{}
	if handler != nil {
		router.Register(handler)
	}
	return NewScanOrchestrator(router, scanRepo, m, logger.NewNopLogger()), m
}

func TestScanOrchestrator_ProcessScan(t *testing.T) {
	processor := NewBoardingPassProcessor(nil, nil, nil, logger.NewNopLogger()).WithClock(fixedClock)
	scans := &fakeScanRepo{}
	o, m := newTestOrchestrator(&processorHandler{processor: processor}, scans)

	raw := buildPass("DOE/JOHN", "PNR1", "VIE", "LHR", "OS", "451", "032", "Y", "12A")
	result, err := o.ProcessScan(context.Background(), entity.RawBarcodePayload{Text: raw, Format: "PDF_417"})

	require.NoError(t, err)
	require.NotNil(t, result.Record)
	assert.Equal(t, "2024-02-01", result.Record.Date)

	require.Len(t, scans.saved, 1)
	saved := scans.saved[0]
	assert.Equal(t, entity.ScanStatusParsed, saved.Status)
	assert.Equal(t, "test-bcbp", saved.Handler)
	assert.Equal(t, raw, saved.Raw)
	assert.False(t, saved.ProcessedAt.IsZero())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansProcessed.WithLabelValues(metrics.OutcomeParsed)))
}

func TestScanOrchestrator_UnreadablePayload(t *testing.T) {
	processor := NewBoardingPassProcessor(nil, nil, nil, logger.NewNopLogger()).WithClock(fixedClock)
	scans := &fakeScanRepo{}
	o, m := newTestOrchestrator(&processorHandler{processor: processor}, scans)

	result, err := o.ProcessScan(context.Background(), entity.RawBarcodePayload{Text: "WIFI:S:guest;;"})

	require.NoError(t, err)
	assert.Nil(t, result.Record)
	assert.Equal(t, []string{WarningUnreadable}, result.Warnings)

	require.Len(t, scans.saved, 1)
	assert.Equal(t, entity.ScanStatusUnreadable, scans.saved[0].Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansProcessed.WithLabelValues(metrics.OutcomeUnreadable)))
}

func TestScanOrchestrator_UnsupportedFormat(t *testing.T) {
	scans := &fakeScanRepo{}
	o, m := newTestOrchestrator(nil, scans)

	result, err := o.ProcessScan(context.Background(), entity.RawBarcodePayload{Text: "12345", Format: "EAN_13"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	require.Len(t, scans.saved, 1)
	assert.Equal(t, entity.ScanStatusSkipped, scans.saved[0].Status)
	assert.Equal(t, "none", scans.saved[0].Handler)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansProcessed.WithLabelValues(metrics.OutcomeSkipped)))
}

func TestScanOrchestrator_HandlerError(t *testing.T) {
	scans := &fakeScanRepo{}
	o, m := newTestOrchestrator(&processorHandler{err: errors.New("boom")}, scans)

	result, err := o.ProcessScan(context.Background(), entity.RawBarcodePayload{Text: "x"})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Empty(t, scans.saved)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues("process_scan")))
}

func TestScanOrchestrator_StorageFailureIsNotFatal(t *testing.T) {
	processor := NewBoardingPassProcessor(nil, nil, nil, logger.NewNopLogger()).WithClock(fixedClock)
	scans := &fakeScanRepo{err: errors.New("mongo down")}
	o, m := newTestOrchestrator(&processorHandler{processor: processor}, scans)

	raw := buildPass("DOE/JOHN", "PNR1", "VIE", "LHR", "OS", "451", "032", "Y", "12A")
	result, err := o.ProcessScan(context.Background(), entity.RawBarcodePayload{Text: raw})

	require.NoError(t, err)
	assert.NotNil(t, result.Record)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues("save_scan")))
}

func TestScanOrchestrator_RecentScans(t *testing.T) {
	scans := &fakeScanRepo{saved: []*entity.ScanRecord{
		{Status: entity.ScanStatusParsed},
		{Status: entity.ScanStatusSkipped},
	}}
	o, _ := newTestOrchestrator(nil, scans)

	records, err := o.RecentScans(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = o.RecentScans(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	noRepo := NewScanOrchestrator(&stubRouter{}, nil, metrics.NewMetrics("test", prometheus.NewRegistry()), logger.NewNopLogger())
	records, err = noRepo.RecentScans(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
