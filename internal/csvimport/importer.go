// Package csvimport ingests skill-check CSV exports. Each row carries a
// customer profile plus that customer's item scores and time strings under
// the canonical column names; one row becomes one appended skill check.
package csvimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kireinail/skillcheck/internal/customer"
	"github.com/kireinail/skillcheck/internal/scoring"
	"github.com/kireinail/skillcheck/internal/storage"
)

// Customer profile columns recognized in the header.
var customerColumns = map[string]struct{}{
	"customer_number":            {},
	"name":                       {},
	"age":                        {},
	"prefecture":                 {},
	"occupation":                 {},
	"nail_technician_experience": {},
	"application_date":           {},
	"google_drive_url":           {},
	"status":                     {},
}

// Aggregate columns stored alongside the item scores.
var aggregateColumns = map[string]struct{}{
	"care_score":         {},
	"color_score":        {},
	"art_score":          {},
	"time_score":         {},
	"total_score":        {},
	"total_time":         {},
	"rank":               {},
	"counseling_comment": {},
}

// itemKeys is every canonical score/duration column: item tables plus the
// time segments.
var itemKeys = func() map[string]struct{} {
	keys := map[string]struct{}{}
	for _, d := range []scoring.Discipline{scoring.Care, scoring.OneColor, scoring.Gradation} {
		for _, it := range scoring.Items(d) {
			keys[it.Key] = struct{}{}
		}
	}
	for _, seg := range scoring.TimeSegments {
		keys[seg.Key] = struct{}{}
	}
	return keys
}()

// RowError describes one skipped row. Line is 1-based and counts the
// header.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result summarizes one import run.
type Result struct {
	Customers  int        `json:"customers"`
	Checks     int        `json:"checks"`
	Skipped    []RowError `json:"skipped,omitempty"`
	ArchiveKey string     `json:"archive_key,omitempty"`
}

// Importer parses CSV uploads into customers and skill checks.
type Importer struct {
	store customer.Store
	blobs storage.BlobStore // nil disables archiving
	now   func() time.Time
}

func New(store customer.Store, blobs storage.BlobStore) *Importer {
	return &Importer{store: store, blobs: blobs, now: time.Now}
}

// Import reads the whole CSV, archives the raw bytes, then processes rows.
// Rows without a customer_number are skipped and reported, not fatal; a
// malformed header or unreadable input is.
func (im *Importer) Import(ctx context.Context, r io.Reader, filename string) (Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read upload: %w", err)
	}

	var res Result
	if im.blobs != nil {
		key := storage.ArchiveKey("imports", filename, im.now())
		if stored, err := im.blobs.Put(key, bytes.NewReader(raw)); err == nil {
			res.ArchiveKey = stored
		} else {
			return Result{}, fmt.Errorf("archive upload: %w", err)
		}
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}
	cols := normalizeHeader(header)
	if _, ok := indexOf(cols, "customer_number"); !ok {
		return Result{}, fmt.Errorf("header missing customer_number column")
	}

	seen := map[string]int64{} // customer number -> id, counts unique upserts
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if isEmptyRow(row) {
			continue
		}
		if err := im.importRow(ctx, cols, row, seen, &res); err != nil {
			res.Skipped = append(res.Skipped, RowError{Line: line, Reason: err.Error()})
		}
	}
	res.Customers = len(seen)
	return res, nil
}

func (im *Importer) importRow(ctx context.Context, cols []string, row []string, seen map[string]int64, res *Result) error {
	get := func(name string) string {
		if i, ok := indexOf(cols, name); ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	number := get("customer_number")
	if number == "" {
		return fmt.Errorf("missing customer_number")
	}

	cust := customer.Customer{
		Number:          number,
		Name:            get("name"),
		Prefecture:      get("prefecture"),
		Occupation:      get("occupation"),
		Experience:      get("nail_technician_experience"),
		ApplicationDate: get("application_date"),
		DriveURL:        get("google_drive_url"),
		Status:          get("status"),
	}
	if age, err := strconv.Atoi(get("age")); err == nil {
		cust.Age = age
	}
	stored, err := im.store.UpsertCustomer(ctx, cust)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", number, err)
	}
	seen[number] = stored.ID

	chk := buildCheck(cols, row)
	chk.CustomerID = stored.ID
	if _, err := im.store.AddSkillCheck(ctx, chk); err != nil {
		return fmt.Errorf("add check for %s: %w", number, err)
	}
	res.Checks++
	return nil
}

// buildCheck assembles the score record and aggregates from one row.
// Aggregates missing from the CSV are recomputed from the items.
func buildCheck(cols []string, row []string) customer.SkillCheck {
	rec := scoring.Record{}
	chk := customer.SkillCheck{Scores: rec}

	for i, name := range cols {
		if i >= len(row) {
			break
		}
		val := strings.TrimSpace(row[i])
		if val == "" {
			continue
		}
		if _, ok := itemKeys[name]; ok {
			if strings.HasPrefix(name, "time_") {
				rec[name] = val // duration strings stay verbatim
			} else if f, err := strconv.ParseFloat(val, 64); err == nil {
				rec[name] = f
			}
			continue
		}
		if _, ok := aggregateColumns[name]; !ok {
			continue
		}
		switch name {
		case "total_time":
			chk.TotalTime = val
		case "rank":
			chk.Rank = val
		case "counseling_comment":
			chk.Comment = val
		default:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				switch name {
				case "care_score":
					chk.CareScore = &f
				case "color_score":
					chk.ColorScore = &f
				case "art_score":
					chk.ArtScore = &f
				case "time_score":
					chk.TimeScore = &f
				case "total_score":
					chk.TotalScore = &f
				}
			}
		}
	}

	fill := func(dst **float64, d scoring.Discipline) {
		if *dst == nil {
			v := scoring.DisciplineTotal(rec, d)
			*dst = &v
		}
	}
	fill(&chk.CareScore, scoring.Care)
	fill(&chk.ColorScore, scoring.OneColor)
	fill(&chk.ArtScore, scoring.Gradation)
	fill(&chk.TimeScore, scoring.Time)
	if chk.TotalScore == nil {
		v := *chk.CareScore + *chk.ColorScore + *chk.TimeScore
		chk.TotalScore = &v
	}
	if chk.TotalTime == "" {
		if min := rec.Duration("time_29"); min > 0 {
			chk.TotalTime = scoring.FormatDuration(min)
		}
	}
	if chk.Rank == "" {
		if *chk.TotalScore > 0 {
			chk.Rank = string(scoring.Classify(*chk.TotalScore, scoring.Overall))
		}
	}
	return chk
}

func normalizeHeader(header []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF") // BOM from spreadsheet exports
		}
		cols[i] = strings.ToLower(h)
	}
	return cols
}

func indexOf(cols []string, name string) (int, bool) {
	for i, c := range cols {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

func isEmptyRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
