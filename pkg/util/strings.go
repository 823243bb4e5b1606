package util

import "strings"

// ContainsFold reports whether substr is within s after upper-casing both.
func ContainsFold(s string, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

// QuoteList renders values as ["a", "b"] for diagnostics.
func QuoteList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, `"`+value+`"`)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
