package entity

// PassengerAlias maps a boarding pass name (LAST/FIRST, upper case) to the
// name the form should show instead
type PassengerAlias struct {
	ID      uint
	RawName string
	Alias   string
}
