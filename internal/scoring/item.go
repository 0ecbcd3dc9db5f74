package scoring

import "strings"

// Item is the static descriptor for one scored checkpoint. Item tables are
// fixed configuration: defined once per discipline, never mutated at
// runtime, safe for concurrent reads.
type Item struct {
	ID         string // stable identifier, e.g. "14-1"
	Heading    string // numbered checkpoint heading, e.g. "14. protrusion"
	Label      string // deduction criterion shown in the detail table
	Category   string // leading numeric grouping, e.g. "14"
	Group      string // section umbrella, e.g. "base", "cuticle care"
	Key        string // record key, derived per DeriveKey
	Allocation int    // maximum points for this checkpoint
	Required   bool   // must-pass checkpoint, highlighted in reports
}

// DeriveKey maps an item ID to its record key: the discipline prefix plus
// the ID with dashes flattened to underscores ("care" + "4-1" → "care_4_1").
// This is the single key scheme; the underscore/dash guessing the legacy
// importers did is deliberately unsupported.
func DeriveKey(prefix, id string) string {
	return prefix + "_" + strings.ReplaceAll(id, "-", "_")
}

// keyPrefix is the record-key prefix for each item-bearing discipline.
func (d Discipline) keyPrefix() string {
	switch d {
	case Care:
		return "care"
	case OneColor:
		return "color"
	case Gradation:
		return "grad"
	case Time:
		return "time"
	}
	return ""
}

// Items returns the canonical item table for a discipline. The returned
// slice is shared; callers must not modify it. Time has no point-scored
// items (see TimeSegments).
func Items(d Discipline) []Item {
	switch d {
	case Care:
		return careItems
	case OneColor:
		return oneColorItems
	case Gradation:
		return gradationItems
	}
	return nil
}
