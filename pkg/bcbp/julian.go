package bcbp

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// JulianToDate converts a day-of-year field into a YYYY-MM-DD date in year.
// The boarding pass carries no year, so the caller picks it. Days outside
// 1..366, day 366 of a non-leap year and non-numeric input yield false.
func JulianToDate(julian string, year int) (string, bool) {
	day, ok := leadingInt(julian)
	if !ok || day < 1 || day > 366 {
		return "", false
	}

	t := time.Date(year, time.January, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year {
		return "", false
	}
	return t.Format(dateLayout), true
}

// leadingInt parses the optional sign and digits at the start of s, ignoring
// surrounding whitespace and anything after the digits.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
