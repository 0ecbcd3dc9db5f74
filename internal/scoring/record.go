package scoring

import (
	"math"
	"strconv"
	"strings"
)

// Record is one assessment snapshot as a flat mapping from item keys to raw
// values: small integers for score items, duration strings for time items.
// Historical imports are sparse, so lookups tolerate anything: missing keys,
// nil values and non-numeric junk all read as zero. A nil Record behaves
// like an empty one.
type Record map[string]any

// Num returns the numeric value under key, 0 when absent or unparseable.
func (r Record) Num(key string) float64 {
	n, _ := r.NumOK(key)
	return n
}

// NumOK reports whether key holds a usable numeric value.
func (r Record) NumOK(key string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return coerce(r[key])
}

// Str returns the string form of the value under key, "" when absent.
func (r Record) Str(key string) string {
	if r == nil {
		return ""
	}
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

// Duration parses the value under key as a duration in fractional minutes,
// 0 when absent or unparseable.
func (r Record) Duration(key string) float64 {
	return ParseDuration(r.Str(key))
}

// coerce converts a raw record value to a finite float64. Numeric strings
// are accepted because CSV imports deliver every cell as text.
func coerce(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
