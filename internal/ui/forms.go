package ui

import (
	"math"
	"strconv"
	"strings"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

// formFloat parses a rating field. A decimal comma is accepted. Blank or
// unparseable input yields 0, which validation reports as a missing value.
func formFloat(values map[string][]string, key string) float64 {
	v := strings.ReplaceAll(formString(values, key), ",", ".")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
