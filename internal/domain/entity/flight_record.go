// internal/domain/entity/flight_record.go
package entity

import (
	"fmt"
	"strings"
	"time"
)

// FlightSubmission is the travel form as posted by the user
type FlightSubmission struct {
	PassengerName  string `json:"passengerName" form:"passengerName"`
	Airline        string `json:"airline" form:"airline"`
	FlightNumber   string `json:"flightNumber" form:"flightNumber"`
	From           string `json:"from" form:"from"`
	To             string `json:"to" form:"to"`
	Date           string `json:"date" form:"date"`
	Time           string `json:"time" form:"time"`
	Reason         string `json:"reason" form:"reason"`
	AirplaneType   string `json:"airplaneType" form:"airplaneType"`
	BookingClass   string `json:"bookingClass" form:"bookingClass"`
	MorePassengers string `json:"morePassengers" form:"morePassengers"`
	Comment        string `json:"comment" form:"comment"`
	CompanyPrivate string `json:"companyPrivate" form:"companyPrivate"`
}

// Values returns the submission as form key/value pairs, skipping blanks
func (s FlightSubmission) Values() map[string]string {
	all := map[string]string{
		"passengerName":  s.PassengerName,
		"airline":        s.Airline,
		"flightNumber":   s.FlightNumber,
		"from":           s.From,
		"to":             s.To,
		"date":           s.Date,
		"time":           s.Time,
		"reason":         s.Reason,
		"airplaneType":   s.AirplaneType,
		"bookingClass":   s.BookingClass,
		"morePassengers": s.MorePassengers,
		"comment":        s.Comment,
		"companyPrivate": s.CompanyPrivate,
	}
	values := make(map[string]string, len(all))
	for k, v := range all {
		if v != "" {
			values[k] = v
		}
	}
	return values
}

// BookingKey identifies a submitted flight: {name}:{flightNumber}:{date}
func (s FlightSubmission) BookingKey() string {
	return fmt.Sprintf("%s:%s:%s", strings.ToUpper(s.PassengerName), s.FlightNumber, s.Date)
}

// FlightRecord is the stored copy of a submitted flight
type FlightRecord struct {
	ID             string    `bson:"_id,omitempty"`
	BookingKey     string    `bson:"bookingKey"` // {name}:{flightNumber}:{date} - unique index
	PassengerName  string    `bson:"passengerName"`
	Airline        string    `bson:"airline"`
	FlightNumber   string    `bson:"flightNumber"`
	From           string    `bson:"from"`
	To             string    `bson:"to"`
	Date           string    `bson:"date"`
	Time           string    `bson:"time"`
	BookingClass   string    `bson:"bookingClass"`
	Reason         string    `bson:"reason"`
	CompanyPrivate string    `bson:"companyPrivate"`
	SubmittedAt    time.Time `bson:"submittedAt"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}
