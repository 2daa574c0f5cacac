package utils

import (
	"regexp"
	"strings"
	"time"
)

// Row is one spreadsheet row keyed by its header cell
type Row map[string]string

// RowsToRecords turns a header-first grid into rows. Short rows are padded
// with empty values; cells beyond the header are dropped.
func RowsToRecords(values [][]string) []Row {
	if len(values) == 0 {
		return []Row{}
	}

	headers := values[0]
	rows := make([]Row, 0, len(values)-1)
	for _, cells := range values[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Get returns the first non-blank value among the candidate keys, tried in
// order. An exact key wins over a case-insensitive one.
func (r Row) Get(candidates ...string) string {
	for _, key := range candidates {
		if v := strings.TrimSpace(r[key]); v != "" {
			return v
		}
		for k, v := range r {
			if strings.EqualFold(k, key) {
				if v = strings.TrimSpace(v); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

var upperRune = regexp.MustCompile(`([A-Z])`)

// FieldNameVariants lists the spellings a form field may have as a sheet
// column: as given, lower case, split camel case and without spaces.
func FieldNameVariants(field string) []string {
	return []string{
		field,
		strings.ToLower(field),
		strings.TrimSpace(upperRune.ReplaceAllString(field, " $1")),
		strings.Join(strings.Fields(field), ""),
	}
}

var rowTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"2.1.2006 15:04:05",
	"2.1.2006",
}

// ParseRowTime parses the date formats Sheets commonly emits. Unparseable
// input yields the zero time.
func ParseRowTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range rowTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
