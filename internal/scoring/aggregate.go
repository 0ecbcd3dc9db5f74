package scoring

import (
	"strconv"
	"strings"
)

// Selector addresses a subset of an item table by category. Two modes
// appear in practice: an exact category match and an inclusive numeric
// range over the leading numeric component of the item ID.
type Selector struct {
	exact      string
	start, end int
	ranged     bool
}

// ByCategory selects items whose category equals id.
func ByCategory(id string) Selector { return Selector{exact: id} }

// ByCategoryRange selects items whose leading category number falls in
// [start, end].
func ByCategoryRange(start, end int) Selector {
	return Selector{start: start, end: end, ranged: true}
}

// AllItems selects every item in a table.
func AllItems() Selector { return Selector{start: 0, end: 1 << 30, ranged: true} }

func (s Selector) matches(it Item) bool {
	if s.ranged {
		n := leadingNumber(it.ID)
		return n >= s.start && n <= s.end
	}
	return it.Category == s.exact
}

// leadingNumber extracts the numeric component before the first dash of an
// item ID ("14-2" → 14), 0 when absent.
func leadingNumber(id string) int {
	head, _, _ := strings.Cut(id, "-")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return n
}

// CategorySum accumulates the record's raw values for every item the
// selector matches. Missing keys and malformed values contribute 0; a nil
// record sums to 0.
func CategorySum(rec Record, items []Item, sel Selector) float64 {
	var sum float64
	for _, it := range items {
		if !sel.matches(it) {
			continue
		}
		sum += rec.Num(it.Key)
	}
	return sum
}

// TotalDuration is the record's measured total time in minutes. The raw
// time_29 field wins; the stored total_time aggregate covers records that
// only carried summary columns.
func TotalDuration(rec Record) float64 {
	if d := rec.Duration("time_29"); d > 0 {
		return d
	}
	return rec.Duration("total_time")
}

// DisciplineTotal produces the total score for a discipline. A stored
// aggregate field on the record wins when numeric, since upstream totals can
// include manual adjustments that plain summation cannot reproduce.
// Summation over the full item table is the fallback so a total is always
// producible from raw item data alone.
//
// Gradation totals are percentages of the raw item maximum; time totals are
// the point value of the duration rank; overall is care + one-color + time.
func DisciplineTotal(rec Record, d Discipline) float64 {
	if v, ok := rec.NumOK(d.totalKey()); ok {
		return v
	}
	switch d {
	case Gradation:
		raw := CategorySum(rec, gradationItems, AllItems())
		return raw / GradationRawMax * GradationMax
	case Time:
		return ScoreForTimeRank(ClassifyDuration(TotalDuration(rec)))
	case Overall:
		return DisciplineTotal(rec, Care) + DisciplineTotal(rec, OneColor) + DisciplineTotal(rec, Time)
	}
	return CategorySum(rec, Items(d), AllItems())
}

// ItemPercentage is the record's score for one item as a share of its
// allocation, clamped to [0,100]. Out-of-range raw values are clamped
// rather than rejected so bar geometry never overflows.
func ItemPercentage(rec Record, it Item) float64 {
	if it.Allocation <= 0 {
		return 0
	}
	return ClampScore(rec.Num(it.Key), it.Allocation) / float64(it.Allocation) * 100
}

// ClampScore bounds a raw value to [0, allocation].
func ClampScore(raw float64, allocation int) float64 {
	if raw < 0 {
		return 0
	}
	if max := float64(allocation); raw > max {
		return max
	}
	return raw
}
