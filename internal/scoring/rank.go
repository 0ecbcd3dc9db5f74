package scoring

// Rank is the ordinal evaluation classification, B < A < AA < AAA.
// RankNone is the "no data" sentinel: absent scores classify to it instead
// of being conflated with a true B.
type Rank string

const (
	RankNone Rank = "-"
	RankB    Rank = "B"
	RankA    Rank = "A"
	RankAA   Rank = "AA"
	RankAAA  Rank = "AAA"
)

// Order gives the rank's position for comparisons: B=0 .. AAA=3, -1 for
// the sentinel.
func (r Rank) Order() int {
	switch r {
	case RankB:
		return 0
	case RankA:
		return 1
	case RankAA:
		return 2
	case RankAAA:
		return 3
	}
	return -1
}

type threshold struct {
	min  float64
	rank Rank
}

// Inclusive lower bounds, evaluated highest first; anything below the last
// bound is B. The time table is the coherent scheme: time scores are the
// fixed point values of the duration ranks (300/225/150/75), so the bounds
// are those values themselves.
var rankThresholds = map[Discipline][]threshold{
	Care:      {{349, RankAAA}, {298, RankAA}, {246, RankA}},
	OneColor:  {{519, RankAAA}, {443, RankAA}, {367, RankA}},
	Gradation: {{90, RankAAA}, {80, RankAA}, {70, RankA}},
	Overall:   {{1123, RankAAA}, {958, RankAA}, {793, RankA}},
	Time:      {{timeScoreAAA, RankAAA}, {timeScoreAA, RankAA}, {timeScoreA, RankA}},
}

// Point values awarded for each duration rank of the time discipline.
const (
	timeScoreAAA = 300
	timeScoreAA  = 225
	timeScoreA   = 150
	timeScoreB   = 75
)

// Classify maps a total score to a rank for the given discipline. It is
// total over the reals: scores below every bound are B, scores beyond the
// discipline maximum still top out at AAA. Unknown disciplines classify
// to the sentinel.
func Classify(score float64, d Discipline) Rank {
	table, ok := rankThresholds[d]
	if !ok {
		return RankNone
	}
	for _, t := range table {
		if score >= t.min {
			return t.rank
		}
	}
	return RankB
}

// ClassifyValue classifies a raw record value: nil or non-numeric values
// yield the sentinel rather than B, since "no score" and "zero score" mean
// different things on a report.
func ClassifyValue(v any, d Discipline) Rank {
	n, ok := coerce(v)
	if !ok {
		return RankNone
	}
	return Classify(n, d)
}

// ClassifyDuration ranks the total assessment duration: AAA within 60
// minutes, AA within 85, A within 90, B beyond. Zero or negative durations
// mean no data.
func ClassifyDuration(minutes float64) Rank {
	switch {
	case minutes <= 0:
		return RankNone
	case minutes <= 60:
		return RankAAA
	case minutes <= 85:
		return RankAA
	case minutes <= 90:
		return RankA
	}
	return RankB
}

// ScoreForTimeRank converts a duration rank to its time-discipline point
// value. The sentinel scores 0.
func ScoreForTimeRank(r Rank) float64 {
	switch r {
	case RankAAA:
		return timeScoreAAA
	case RankAA:
		return timeScoreAA
	case RankA:
		return timeScoreA
	case RankB:
		return timeScoreB
	}
	return 0
}
