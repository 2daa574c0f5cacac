package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan and submission outcomes
const (
	OutcomeParsed     = "parsed"
	OutcomeUnreadable = "unreadable"
	OutcomeSkipped    = "skipped"
	OutcomeSubmitted  = "submitted"
	OutcomeRejected   = "rejected"
	OutcomeFailed     = "failed"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ScansProcessed     *prometheus.CounterVec
	SubmissionsSent    *prometheus.CounterVec
	ScanProcessingTime prometheus.Histogram
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ScansProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_processed_total",
			Help:      "The total number of barcode payloads processed, by outcome",
		}, []string{"outcome"}),
		SubmissionsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_submissions_total",
			Help:      "The total number of flight form submissions, by outcome",
		}, []string{"outcome"}),
		ScanProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_processing_time_seconds",
			Help:      "Time taken to process a barcode payload",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
