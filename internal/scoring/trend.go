package scoring

// Trend classifies a current value against a comparison value (previous
// check or national average).
type Trend string

const (
	TrendImproved  Trend = "improved"
	TrendDeclined  Trend = "declined"
	TrendUnchanged Trend = "unchanged"
	// TrendNone marks an indeterminate comparison: either operand absent
	// or zero. Zero is ambiguous between "scored zero" and "no data", so
	// it never produces an arrow.
	TrendNone Trend = "none"
)

// CompareScores trends a score against a comparison score; higher is
// better.
func CompareScores(current, comparison float64) Trend {
	if current == 0 || comparison == 0 {
		return TrendNone
	}
	switch {
	case current > comparison:
		return TrendImproved
	case current < comparison:
		return TrendDeclined
	}
	return TrendUnchanged
}

// CompareDurations trends a duration against a comparison duration; lower
// (faster) is better.
func CompareDurations(current, comparison float64) Trend {
	if current == 0 || comparison == 0 {
		return TrendNone
	}
	switch {
	case current < comparison:
		return TrendImproved
	case current > comparison:
		return TrendDeclined
	}
	return TrendUnchanged
}
