package utils

import (
	"strings"
)

// NormalizeId - Returns the course id trimmed and in upper case, which is the convention for ids stored in the catalog
func NormalizeId(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// TrimFields - Returns a new slice with every field trimmed from surrounding white space and with
// empty fields removed from the end
func TrimFields(fields []string) (trimmed []string) {
	trimmed = make([]string, len(fields))
	for i, f := range fields {
		trimmed[i] = strings.TrimSpace(f)
	}

	n := len(trimmed)
	for n > 0 && trimmed[n-1] == "" {
		n--
	}

	return trimmed[:n]
}
