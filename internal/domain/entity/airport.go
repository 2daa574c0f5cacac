package entity

// Airport describes an airport known to the reference tables
type Airport struct {
	ID          uint   `json:"-"`
	AirportCode string `json:"code"`
	AirportName string `json:"name"`
	CityCode    string `json:"cityCode,omitempty"`
	CityName    string `json:"city,omitempty"`
	TzName      string `json:"timezone,omitempty"`
}
