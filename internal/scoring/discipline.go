// Package scoring is the pure computation core of the skill-check system:
// item-definition tables, score aggregation, rank classification, duration
// parsing and trend comparison. Every function in this package is a total,
// side-effect-free function of its inputs; malformed or missing data
// degrades to zero values and the "-" rank sentinel instead of errors.
package scoring

// Discipline identifies one scored skill area.
type Discipline string

const (
	Care      Discipline = "care"
	OneColor  Discipline = "one_color"
	Gradation Discipline = "gradation"
	Time      Discipline = "time"

	// Overall is the grand total across care, one-color and time. It is
	// not an item-bearing discipline; it exists for classification only.
	Overall Discipline = "overall"
)

// Declared point maxima per discipline. Gradation is consumed as a 0-100
// percentage; its raw item maximum is GradationRawMax.
const (
	CareMax      = 410
	OneColorMax  = 610
	GradationMax = 100
	TimeMax      = 300
	OverallMax   = CareMax + OneColorMax + TimeMax // 1320

	// GradationRawMax is the sum of gradation item allocations before
	// normalization to a percentage.
	GradationRawMax = 170
)

// Max returns the declared maximum total for a discipline, 0 for unknown.
func (d Discipline) Max() float64 {
	switch d {
	case Care:
		return CareMax
	case OneColor:
		return OneColorMax
	case Gradation:
		return GradationMax
	case Time:
		return TimeMax
	case Overall:
		return OverallMax
	}
	return 0
}

// totalKey is the record field that may carry an upstream-authoritative
// precomputed total for the discipline.
func (d Discipline) totalKey() string {
	switch d {
	case Care:
		return "care_score"
	case OneColor:
		return "color_score"
	case Gradation:
		return "art_score"
	case Time:
		return "time_score"
	case Overall:
		return "total_score"
	}
	return ""
}
