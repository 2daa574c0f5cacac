package bcbp

import "strings"

// NormalizeName cleans a LAST/FIRST [TITLE] passenger name: whitespace runs
// become one space and a dangling "/" left by an empty first name is dropped.
func NormalizeName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	return strings.TrimSpace(strings.TrimSuffix(collapsed, "/"))
}
