package scoring

// TimeSegment is a timed portion of the assessment. Record values for time
// segments are duration strings, not point scores; Allocation is the point
// weight shown in the detail table.
type TimeSegment struct {
	ID         string
	Label      string
	Category   string // table grouping: "total", "breakdown", "one color"
	Key        string
	Allocation int
}

// TimeSegments is the canonical time table: the overall duration plus six
// breakdown segments.
var TimeSegments = []TimeSegment{
	{ID: "29", Label: "total time", Category: "total", Key: "time_29", Allocation: 10},
	{ID: "29-1", Label: "off", Category: "breakdown", Key: "time_29_1", Allocation: 20},
	{ID: "29-2", Label: "fill-in", Category: "breakdown", Key: "time_29_2", Allocation: 10},
	{ID: "29-3", Label: "preparation", Category: "breakdown", Key: "time_29_3", Allocation: 20},
	{ID: "29-4", Label: "base", Category: "one color", Key: "time_29_4", Allocation: 10},
	{ID: "29-5", Label: "color", Category: "one color", Key: "time_29_5", Allocation: 20},
	{ID: "29-6", Label: "top", Category: "one color", Key: "time_29_6", Allocation: 20},
}

// TimetableRow is one row of the reference timetable: inclusive duration
// upper bounds, in minutes, for each rank. A duration above the A bound is
// rank B.
type TimetableRow struct {
	Label string
	Keys  []string // record keys summed to produce the row's duration
	AAA   float64
	AA    float64
	A     float64
}

// ReferenceTimetable carries the per-segment target durations. Off-winding
// time is already excluded from these targets (5 minutes per hand).
var ReferenceTimetable = []TimetableRow{
	{Label: "off/fill-in", Keys: []string{"time_29_1", "time_29_2"}, AAA: 17, AA: 18.5, A: 20},
	{Label: "preparation", Keys: []string{"time_29_3"}, AAA: 22, AA: 23, A: 24},
	{Label: "one color: base", Keys: []string{"time_29_4"}, AAA: 13, AA: 13.5, A: 14},
	{Label: "one color: color", Keys: []string{"time_29_5"}, AAA: 19, AA: 20.5, A: 22},
	{Label: "one color: top", Keys: []string{"time_29_6"}, AAA: 9, AA: 9.5, A: 10},
	{Label: "one color: total", Keys: []string{"time_29_4", "time_29_5", "time_29_6"}, AAA: 41, AA: 43.5, A: 46},
	{Label: "total", Keys: []string{"time_29"}, AAA: 79, AA: 80, A: 90},
}

// Duration returns the row's duration for a record: the sum of its
// segments' parsed durations, 0 when no segment has data.
func (row TimetableRow) Duration(rec Record) float64 {
	var total float64
	for _, k := range row.Keys {
		total += rec.Duration(k)
	}
	return total
}

// ClassifyRow ranks a duration against a timetable row. Zero or negative
// durations mean no data.
func ClassifyRow(row TimetableRow, minutes float64) Rank {
	switch {
	case minutes <= 0:
		return RankNone
	case minutes <= row.AAA:
		return RankAAA
	case minutes <= row.AA:
		return RankAA
	case minutes <= row.A:
		return RankA
	}
	return RankB
}
