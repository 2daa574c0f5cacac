package entity

import (
	"time"
)

// Airline maps an IATA/ICAO designator to a display name
type Airline struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
