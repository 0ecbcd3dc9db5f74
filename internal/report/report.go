// Package report turns stored skill checks into fully-resolved
// presentation values: summary rows, per-item detail tables, radar series
// and the time table. Everything is computed here as plain numbers and
// strings so the HTML layer and the JSON API stay free of scoring logic.
package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kireinail/skillcheck/internal/customer"
	"github.com/kireinail/skillcheck/internal/scoring"
)

// Fixed national-average dataset shown in the summary column.
const (
	NationalOverall   = 692.0
	NationalCare      = 267.0
	NationalOneColor  = 350.0
	NationalTime      = 75.0 // time score points
	NationalGradation = 57.0 // percent
	NationalTotalTime = "104 minutes 54 seconds"
)

// NationalAverage returns the fixed national average for a discipline.
func NationalAverage(d scoring.Discipline) float64 {
	switch d {
	case scoring.Care:
		return NationalCare
	case scoring.OneColor:
		return NationalOneColor
	case scoring.Gradation:
		return NationalGradation
	case scoring.Time:
		return NationalTime
	case scoring.Overall:
		return NationalOverall
	}
	return 0
}

// NationalItemScore is the per-item national value: 75% of the
// allocation, floored.
func NationalItemScore(it scoring.Item) float64 {
	return math.Floor(float64(it.Allocation) * 0.75)
}

// DisciplineLabel is the display heading for a discipline.
func DisciplineLabel(d scoring.Discipline) string {
	switch d {
	case scoring.Care:
		return "Care"
	case scoring.OneColor:
		return "One Color"
	case scoring.Gradation:
		return "Gradation"
	case scoring.Time:
		return "Time"
	case scoring.Overall:
		return "Comprehensive"
	}
	return string(d)
}

// SummaryRow is one line of the report's summary table.
type SummaryRow struct {
	Discipline scoring.Discipline `json:"discipline"`
	Label      string             `json:"label"`
	Score      float64            `json:"score"`
	Max        float64            `json:"max"`
	Rank       scoring.Rank       `json:"rank"`
	National   float64            `json:"national"`
	Previous   float64            `json:"previous,omitempty"`
	Trend      scoring.Trend      `json:"trend"`
	// Display carries the human-readable value; equal to Score except for
	// the time row, which shows the formatted duration.
	Display string `json:"display"`
}

// DetailRow is one item line of a discipline's detail table.
type DetailRow struct {
	Item     scoring.Item  `json:"item"`
	Score    float64       `json:"score"`
	Percent  float64       `json:"percent"`
	National float64       `json:"national"`
	Previous float64       `json:"previous"`
	Trend    scoring.Trend `json:"trend"`
}

// RadarAxis is one spoke of a radar chart, already scaled to its group
// maximum.
type RadarAxis struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Max      float64 `json:"max"`
	National float64 `json:"national"`
}

// DisciplineSection is the full detail page for one discipline.
type DisciplineSection struct {
	Discipline scoring.Discipline `json:"discipline"`
	Label      string             `json:"label"`
	Total      float64            `json:"total"`
	Max        float64            `json:"max"`
	Rank       scoring.Rank       `json:"rank"`
	National   float64            `json:"national"`
	Radar      []RadarAxis        `json:"radar"`
	Rows       []DetailRow        `json:"rows,omitempty"`
}

// TimeRow is one row of the reference-timetable comparison.
type TimeRow struct {
	Label    string       `json:"label"`
	Minutes  float64      `json:"minutes"`
	Display  string       `json:"display"`
	TargetA  float64      `json:"target_a"`
	TargetAA float64      `json:"target_aa"`
	TargetS  float64      `json:"target_aaa"`
	Rank     scoring.Rank `json:"rank"`
}

// TimeSection is the time page: overall duration plus the timetable.
type TimeSection struct {
	TotalMinutes float64      `json:"total_minutes"`
	TotalDisplay string       `json:"total_display"`
	Rank         scoring.Rank `json:"rank"`
	Score        float64      `json:"score"`
	Rows         []TimeRow    `json:"rows"`
}

// HistoryEntry is one past check in the history strip.
type HistoryEntry struct {
	CheckID    int64        `json:"check_id"`
	ImportedAt time.Time    `json:"imported_at"`
	Total      float64      `json:"total"`
	Rank       scoring.Rank `json:"rank"`
	TotalTime  string       `json:"total_time,omitempty"`
}

// Report is the fully-assembled evaluation report for one customer.
type Report struct {
	Customer      customer.Customer   `json:"customer"`
	GeneratedAt   time.Time           `json:"generated_at"`
	Summary       []SummaryRow        `json:"summary"`
	Comprehensive DisciplineSection   `json:"comprehensive"`
	Disciplines   []DisciplineSection `json:"disciplines"`
	Time          TimeSection         `json:"time"`
	History       []HistoryEntry      `json:"history"`
	Comment       string              `json:"counseling_comment,omitempty"`
}

// historyLimit caps the history strip.
const historyLimit = 10

// ErrNoChecks is returned when a customer has no imported evaluations.
var ErrNoChecks = errors.New("report: customer has no skill checks")

// Builder assembles reports from the customer store.
type Builder struct {
	store customer.Store
}

func NewBuilder(store customer.Store) *Builder { return &Builder{store: store} }

// Build assembles the full report for a customer from their newest check,
// trending against the one before it.
func (b *Builder) Build(ctx context.Context, customerID int64) (Report, error) {
	cust, err := b.store.GetCustomer(ctx, customerID)
	if err != nil {
		return Report{}, fmt.Errorf("load customer %d: %w", customerID, err)
	}
	checks, err := b.store.ChecksForCustomer(ctx, customerID)
	if err != nil {
		return Report{}, fmt.Errorf("load checks for customer %d: %w", customerID, err)
	}
	if len(checks) == 0 {
		return Report{}, ErrNoChecks
	}

	cur := checks[0].Record()
	var prev scoring.Record
	if len(checks) > 1 {
		prev = checks[1].Record()
	}

	rep := Report{
		Customer:    cust,
		GeneratedAt: time.Now(),
		Summary:       Summary(cur, prev),
		Comprehensive: Comprehensive(cur),
		Disciplines: []DisciplineSection{
			Section(cur, prev, scoring.Care),
			Section(cur, prev, scoring.OneColor),
			Section(cur, prev, scoring.Gradation),
		},
		Time:    BuildTime(cur),
		History: history(checks),
		Comment: checks[0].Comment,
	}
	return rep, nil
}

// Summary computes the summary table: overall first, then each
// discipline.
func Summary(cur, prev scoring.Record) []SummaryRow {
	order := []scoring.Discipline{
		scoring.Overall, scoring.Care, scoring.OneColor, scoring.Gradation, scoring.Time,
	}
	rows := make([]SummaryRow, 0, len(order))
	for _, d := range order {
		rows = append(rows, summaryRow(cur, prev, d))
	}
	return rows
}

func summaryRow(cur, prev scoring.Record, d scoring.Discipline) SummaryRow {
	score := scoring.DisciplineTotal(cur, d)
	row := SummaryRow{
		Discipline: d,
		Label:      DisciplineLabel(d),
		Score:      score,
		Max:        d.Max(),
		Rank:       scoring.Classify(score, d),
		National:   NationalAverage(d),
		Display:    trimFloat(score),
	}
	if score == 0 {
		row.Rank = scoring.RankNone
	}
	if prev != nil {
		row.Previous = scoring.DisciplineTotal(prev, d)
	}
	if d == scoring.Time {
		// The time row displays and trends on the raw duration, not the
		// derived score; faster is better.
		curMin := scoring.TotalDuration(cur)
		if curMin > 0 {
			row.Display = scoring.FormatDuration(curMin)
		}
		if prev != nil {
			row.Trend = scoring.CompareDurations(curMin, scoring.TotalDuration(prev))
		} else {
			row.Trend = scoring.TrendNone
		}
		return row
	}
	if prev != nil {
		row.Trend = scoring.CompareScores(score, row.Previous)
	} else {
		row.Trend = scoring.TrendNone
	}
	return row
}

// Section builds the detail page for an item-bearing discipline.
func Section(cur, prev scoring.Record, d scoring.Discipline) DisciplineSection {
	total := scoring.DisciplineTotal(cur, d)
	sec := DisciplineSection{
		Discipline: d,
		Label:      DisciplineLabel(d),
		Total:      total,
		Max:        d.Max(),
		Rank:       scoring.Classify(total, d),
		National:   NationalAverage(d),
		Radar:      radar(cur, d),
	}
	if total == 0 {
		sec.Rank = scoring.RankNone
	}
	items := scoring.Items(d)
	sec.Rows = make([]DetailRow, 0, len(items))
	for _, it := range items {
		row := DetailRow{
			Item:     it,
			Score:    scoring.ClampScore(cur.Num(it.Key), it.Allocation),
			Percent:  scoring.ItemPercentage(cur, it),
			National: NationalItemScore(it),
		}
		if prev != nil {
			row.Previous = scoring.ClampScore(prev.Num(it.Key), it.Allocation)
			row.Trend = scoring.CompareScores(row.Score, row.Previous)
		} else {
			row.Trend = scoring.TrendNone
		}
		sec.Rows = append(sec.Rows, row)
	}
	return sec
}

// Comprehensive builds the cross-discipline radar page: one axis per
// scored discipline contributing to the grand total.
func Comprehensive(cur scoring.Record) DisciplineSection {
	total := scoring.DisciplineTotal(cur, scoring.Overall)
	sec := DisciplineSection{
		Discipline: scoring.Overall,
		Label:      DisciplineLabel(scoring.Overall),
		Total:      total,
		Max:        scoring.OverallMax,
		Rank:       scoring.Classify(total, scoring.Overall),
		National:   NationalOverall,
		Radar: []RadarAxis{
			{Label: "Care", Value: scoring.DisciplineTotal(cur, scoring.Care),
				Max: scoring.CareMax, National: NationalCare},
			{Label: "One Color", Value: scoring.DisciplineTotal(cur, scoring.OneColor),
				Max: scoring.OneColorMax, National: NationalOneColor},
			{Label: "Time", Value: scoring.DisciplineTotal(cur, scoring.Time),
				Max: scoring.TimeMax, National: NationalTime},
		},
	}
	if total == 0 {
		sec.Rank = scoring.RankNone
	}
	return sec
}

// Radar group definitions per discipline, mirroring the printed charts.
var careRadarGroups = []struct {
	label      string
	start, end int
	max        float64
}{
	{"preparation", 1, 3, 100},
	{"length & shape", 4, 6, 130},
	{"cuticle care", 7, 13, 180},
}

func radar(rec scoring.Record, d scoring.Discipline) []RadarAxis {
	switch d {
	case scoring.Care:
		axes := make([]RadarAxis, 0, len(careRadarGroups))
		for _, g := range careRadarGroups {
			axes = append(axes, RadarAxis{
				Label:    g.label,
				Value:    scoring.CategorySum(rec, scoring.Items(d), scoring.ByCategoryRange(g.start, g.end)),
				Max:      g.max,
				National: math.Floor(g.max * 0.65),
			})
		}
		return axes
	case scoring.OneColor, scoring.Gradation:
		return groupRadar(rec, d)
	}
	return nil
}

// groupRadar builds one axis per item Group, preserving table order.
func groupRadar(rec scoring.Record, d scoring.Discipline) []RadarAxis {
	items := scoring.Items(d)
	var (
		order []string
		sums  = map[string]*RadarAxis{}
	)
	for _, it := range items {
		ax, ok := sums[it.Group]
		if !ok {
			ax = &RadarAxis{Label: it.Group}
			sums[it.Group] = ax
			order = append(order, it.Group)
		}
		ax.Value += scoring.ClampScore(rec.Num(it.Key), it.Allocation)
		ax.Max += float64(it.Allocation)
	}
	axes := make([]RadarAxis, 0, len(order))
	for _, g := range order {
		ax := sums[g]
		ax.National = math.Floor(ax.Max * 0.65)
		axes = append(axes, *ax)
	}
	return axes
}

// BuildTime assembles the time page from the record's duration strings.
func BuildTime(rec scoring.Record) TimeSection {
	total := scoring.TotalDuration(rec)
	rank := scoring.ClassifyDuration(total)
	sec := TimeSection{
		TotalMinutes: total,
		Rank:         rank,
		Score:        scoring.DisciplineTotal(rec, scoring.Time),
	}
	if total > 0 {
		sec.TotalDisplay = scoring.FormatDuration(total)
	}
	for _, row := range scoring.ReferenceTimetable {
		minutes := row.Duration(rec)
		tr := TimeRow{
			Label:    row.Label,
			Minutes:  minutes,
			TargetS:  row.AAA,
			TargetAA: row.AA,
			TargetA:  row.A,
			Rank:     scoring.ClassifyRow(row, minutes),
		}
		if minutes > 0 {
			tr.Display = scoring.FormatDuration(minutes)
		}
		sec.Rows = append(sec.Rows, tr)
	}
	return sec
}

func history(checks []customer.SkillCheck) []HistoryEntry {
	n := len(checks)
	if n > historyLimit {
		n = historyLimit
	}
	out := make([]HistoryEntry, 0, n)
	for _, chk := range checks[:n] {
		rec := chk.Record()
		total := scoring.DisciplineTotal(rec, scoring.Overall)
		entry := HistoryEntry{
			CheckID:    chk.ID,
			ImportedAt: time.Unix(chk.ImportedAt, 0).UTC(),
			Total:      total,
			Rank:       scoring.Classify(total, scoring.Overall),
			TotalTime:  chk.TotalTime,
		}
		if total == 0 {
			entry.Rank = scoring.RankNone
		}
		out = append(out, entry)
	}
	return out
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
