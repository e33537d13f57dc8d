package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SafeNumber coerces loosely typed cell values into a finite float64.
//
// The remote sheet engine may hand numbers back as strings, use a locale
// decimal comma, or blank a cell entirely, so every boundary where data
// re-enters the system runs through this helper. Unparseable input is 0,
// never an error.
func SafeNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		return parseLocale(n.String())
	case string:
		return parseLocale(n)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// SafeInt coerces like SafeNumber and truncates toward zero.
func SafeInt(v any) int {
	return int(SafeNumber(v))
}

func parseLocale(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(f)
	}
	// "15,50" style decimal comma. Only rewrite when there is no dot already,
	// otherwise the comma is a thousands separator we cannot disambiguate.
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			return finite(f)
		}
	}
	return 0
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
