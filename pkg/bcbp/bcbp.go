// Package bcbp decodes the primary record of an IATA Bar Coded Boarding Pass.
package bcbp

import "strings"

// MinLength is the shortest payload Parse accepts.
const MinLength = 60

// SourceBarcode tags records produced by Parse.
const SourceBarcode = "barcode"

// Record holds the fields of a BCBP primary record
type Record struct {
	FormatCode       string `json:"formatCode" bson:"formatCode"`
	LegsEncoded      string `json:"legsEncoded" bson:"legsEncoded"`
	PassengerName    string `json:"passengerName" bson:"passengerName"`
	PNR              string `json:"pnr" bson:"pnr"`
	From             string `json:"from" bson:"from"`
	To               string `json:"to" bson:"to"`
	OperatingCarrier string `json:"operatingCarrier" bson:"operatingCarrier"`
	FlightNumber     string `json:"flightNumber" bson:"flightNumber"`
	Date             string `json:"date,omitempty" bson:"date,omitempty"`
	CompartmentCode  string `json:"compartmentCode" bson:"compartmentCode"`
	BookingClass     string `json:"bookingClass" bson:"bookingClass"`
	Seat             string `json:"seat" bson:"seat"`
	CheckInSequence  string `json:"checkInSeq" bson:"checkInSeq"`
	PassengerStatus  string `json:"passengerStatus" bson:"passengerStatus"`
	Source           string `json:"source" bson:"source"`
}

// HasDate reports whether the julian day resolved to a calendar date.
func (r Record) HasDate() bool {
	return r.Date != ""
}

// Parse decodes raw against the given reference year. It returns false when
// raw is too short to hold a primary record.
func Parse(raw string, year int) (Record, bool) {
	chars := []rune(raw)
	if len(chars) < MinLength {
		return Record{}, false
	}

	carrier := field(chars, 36, 39)
	flightNo := strings.TrimSpace(field(chars, 39, 44))
	compartment := field(chars, 47, 48)

	// Electronic ticket indicator at [22,23) is not carried.
	date, _ := JulianToDate(field(chars, 44, 47), year)

	return Record{
		FormatCode:       field(chars, 0, 1),
		LegsEncoded:      field(chars, 1, 2),
		PassengerName:    NormalizeName(field(chars, 2, 22)),
		PNR:              strings.TrimSpace(field(chars, 23, 30)),
		From:             field(chars, 30, 33),
		To:               field(chars, 33, 36),
		OperatingCarrier: carrier,
		FlightNumber:     stripSpaces(carrier + flightNo),
		Date:             date,
		CompartmentCode:  compartment,
		BookingClass:     compartment,
		Seat:             strings.TrimSpace(field(chars, 48, 52)),
		CheckInSequence:  strings.TrimSpace(field(chars, 52, 57)),
		PassengerStatus:  field(chars, 57, 58),
		Source:           SourceBarcode,
	}, true
}

// field returns chars[start:end] clamped to the input.
func field(chars []rune, start, end int) string {
	if start >= len(chars) || start >= end {
		return ""
	}
	if end > len(chars) {
		end = len(chars)
	}
	return string(chars[start:end])
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
