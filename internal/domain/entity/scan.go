package entity

import (
	"time"

	"boardingpass-service/pkg/bcbp"
)

// Scan log status
const (
	ScanStatusParsed     = "PARSED"
	ScanStatusUnreadable = "UNREADABLE"
	ScanStatusSkipped    = "SKIPPED"
)

// Field sources and the confidence attached to each
const (
	SourceBarcode        = "barcode"
	SourcePersonalAlias  = "personal-alias"
	SourceBarcodeDerived = "barcode-derived"
	SourceBarcodeCode    = "barcode-code"

	ConfidenceBarcode        = 0.98
	ConfidencePersonalAlias  = 1.0
	ConfidenceBarcodeDerived = 0.95
	ConfidenceBarcodeCode    = 0.7
)

// Form field names filled from a scan
const (
	FieldPassengerName = "passengerName"
	FieldAirline       = "airline"
	FieldFlightNumber  = "flightNumber"
	FieldFrom          = "from"
	FieldTo            = "to"
	FieldDate          = "date"
	FieldBookingClass  = "bookingClass"
)

// RawBarcodePayload is the text an external barcode reader decoded, plus the
// symbology it reported
type RawBarcodePayload struct {
	Text   string `json:"text"`
	Format string `json:"format,omitempty"`
}

// FieldValue is a suggested form value with its provenance
type FieldValue struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// ScanResult is what a decoded payload contributes to the travel form
type ScanResult struct {
	Raw         string                `json:"raw"`
	Format      string                `json:"format,omitempty"`
	Record      *bcbp.Record          `json:"record"`
	Fields      map[string]FieldValue `json:"fields"`
	FromAirport *Airport              `json:"fromAirport,omitempty"`
	ToAirport   *Airport              `json:"toAirport,omitempty"`
	Warnings    []string              `json:"warnings,omitempty"`
}

// ScanRecord is the audit entry stored for every processed payload
type ScanRecord struct {
	ID          string       `bson:"_id,omitempty"`
	Raw         string       `bson:"raw"`
	Format      string       `bson:"format"`
	Status      string       `bson:"status"`
	Handler     string       `bson:"handler"`
	Record      *bcbp.Record `bson:"record,omitempty"`
	Warnings    []string     `bson:"warnings,omitempty"`
	ProcessedAt time.Time    `bson:"processedAt"`
}
