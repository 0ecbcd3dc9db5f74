package scoring

import "testing"

func fullRecord(d Discipline) Record {
	rec := Record{}
	for _, it := range Items(d) {
		rec[it.Key] = float64(it.Allocation)
	}
	return rec
}

func TestCategorySumEmptyRecord(t *testing.T) {
	var nilRec Record
	for _, sel := range []Selector{ByCategory("4"), ByCategoryRange(1, 13), AllItems()} {
		if got := CategorySum(nilRec, Items(Care), sel); got != 0 {
			t.Errorf("nil record sums to %v, want 0", got)
		}
		if got := CategorySum(Record{}, Items(Care), sel); got != 0 {
			t.Errorf("empty record sums to %v, want 0", got)
		}
	}
}

func TestCategorySumExactAndRange(t *testing.T) {
	rec := Record{
		"care_4_1": 20.0,
		"care_4_2": 10.0,
		"care_4_3": 30.0,
		"care_5_1": 5.0,
	}
	if got := CategorySum(rec, Items(Care), ByCategory("4")); got != 60 {
		t.Errorf("category 4 sum = %v, want 60", got)
	}
	if got := CategorySum(rec, Items(Care), ByCategoryRange(4, 5)); got != 65 {
		t.Errorf("categories 4-5 sum = %v, want 65", got)
	}
	if got := CategorySum(rec, Items(Care), ByCategory("13")); got != 0 {
		t.Errorf("untouched category sum = %v, want 0", got)
	}
}

func TestCategorySumToleratesJunkValues(t *testing.T) {
	rec := Record{
		"care_4_1": nil,
		"care_4_2": "not a number",
		"care_4_3": "15", // numeric strings come from CSV imports
		"bogus":    99.0, // unrecognized keys are ignored
	}
	if got := CategorySum(rec, Items(Care), ByCategory("4")); got != 15 {
		t.Errorf("sum = %v, want 15", got)
	}
}

func TestCategorySumMissingItemsContributeZero(t *testing.T) {
	// one-color record missing 10 of its 36 items: untouched categories
	// still report their full value.
	rec := fullRecord(OneColor)
	removed := 0
	for _, it := range Items(OneColor) {
		if it.Group == "top" && removed < 10 {
			delete(rec, it.Key)
			removed++
		}
	}
	if removed != 10 {
		t.Fatalf("removed %d items, want 10", removed)
	}
	if got := CategorySum(rec, Items(OneColor), ByCategory("20")); got != 50 {
		t.Errorf("category 20 sum = %v, want 50", got)
	}
	if got := CategorySum(rec, Items(OneColor), ByCategory("21")); got != 40 {
		t.Errorf("category 21 sum = %v, want 40", got)
	}
}

func TestDisciplineTotalPrefersStoredAggregate(t *testing.T) {
	rec := fullRecord(Care)
	rec["care_score"] = 333.0 // manual override beats summation
	if got := DisciplineTotal(rec, Care); got != 333 {
		t.Errorf("total = %v, want stored 333", got)
	}
	delete(rec, "care_score")
	if got := DisciplineTotal(rec, Care); got != CareMax {
		t.Errorf("fallback total = %v, want %v", got, float64(CareMax))
	}
}

func TestDisciplineTotalFullRecordHitsMaxAndAAA(t *testing.T) {
	for _, d := range []Discipline{Care, OneColor} {
		total := DisciplineTotal(fullRecord(d), d)
		if total != d.Max() {
			t.Errorf("%s full-record total = %v, want %v", d, total, d.Max())
		}
		if r := Classify(total, d); r != RankAAA {
			t.Errorf("%s full-record rank = %s, want AAA", d, r)
		}
	}
}

func TestDisciplineTotalGradationNormalizes(t *testing.T) {
	if got := DisciplineTotal(fullRecord(Gradation), Gradation); got != 100 {
		t.Errorf("full gradation percent = %v, want 100", got)
	}
	rec := Record{"grad_28_1": 10.0, "grad_28_2": 7.0} // raw 17 of 170
	if got := DisciplineTotal(rec, Gradation); got != 10 {
		t.Errorf("gradation percent = %v, want 10", got)
	}
	rec["art_score"] = 85.0
	if got := DisciplineTotal(rec, Gradation); got != 85 {
		t.Errorf("stored gradation percent = %v, want 85", got)
	}
}

func TestDisciplineTotalTimeDerivesFromDuration(t *testing.T) {
	rec := Record{"time_29": "58 minutes 00 seconds"}
	if got := DisciplineTotal(rec, Time); got != 300 {
		t.Errorf("time total = %v, want 300", got)
	}
	rec["time_29"] = "88 minutes 00 seconds"
	if got := DisciplineTotal(rec, Time); got != 150 {
		t.Errorf("time total = %v, want 150", got)
	}
	rec["time_score"] = 225.0
	if got := DisciplineTotal(rec, Time); got != 225 {
		t.Errorf("time total = %v, want stored 225", got)
	}
	if got := DisciplineTotal(Record{}, Time); got != 0 {
		t.Errorf("empty time total = %v, want 0", got)
	}
}

func TestDisciplineTotalTimeFallsBackToTotalTime(t *testing.T) {
	rec := Record{"total_time": "75 minutes 00 seconds"}
	if got := DisciplineTotal(rec, Time); got != 225 {
		t.Errorf("time total from total_time = %v, want 225", got)
	}
	if got := TotalDuration(rec); got != 75 {
		t.Errorf("total duration = %v, want 75", got)
	}
	rec["time_29"] = "58:00"
	if got := TotalDuration(rec); got != 58 {
		t.Errorf("total duration = %v, want time_29 to win with 58", got)
	}
}

func TestDisciplineTotalOverall(t *testing.T) {
	rec := Record{
		"care_score":  410.0,
		"color_score": 610.0,
		"time_score":  300.0,
	}
	if got := DisciplineTotal(rec, Overall); got != OverallMax {
		t.Errorf("overall total = %v, want %v", got, float64(OverallMax))
	}
	rec["total_score"] = 1200.0
	if got := DisciplineTotal(rec, Overall); got != 1200 {
		t.Errorf("overall total = %v, want stored 1200", got)
	}
}

func TestCareScenarioTotalsAndRanks(t *testing.T) {
	// All 26 items at allocation → 410 → AAA.
	full := fullRecord(Care)
	if got := DisciplineTotal(full, Care); got != 410 {
		t.Fatalf("total = %v, want 410", got)
	}
	if r := Classify(DisciplineTotal(full, Care), Care); r != RankAAA {
		t.Errorf("rank = %s, want AAA", r)
	}
	// Everything zero except one 20-point item → 20 → B.
	rec := Record{"care_4_1": 20.0}
	if got := DisciplineTotal(rec, Care); got != 20 {
		t.Fatalf("total = %v, want 20", got)
	}
	if r := Classify(20, Care); r != RankB {
		t.Errorf("rank = %s, want B", r)
	}
}

func TestItemPercentageAlwaysInRange(t *testing.T) {
	it := Item{Key: "care_4_1", Allocation: 20}
	cases := []struct {
		raw  any
		want float64
	}{
		{nil, 0},
		{0.0, 0},
		{10.0, 50},
		{20.0, 100},
		{250.0, 100},   // absurdly large clamps to 100
		{-5.0, 0},      // negative clamps to 0
		{"garbage", 0}, // junk reads as zero
	}
	for _, tc := range cases {
		rec := Record{}
		if tc.raw != nil {
			rec["care_4_1"] = tc.raw
		}
		got := ItemPercentage(rec, it)
		if got != tc.want {
			t.Errorf("raw %v: percentage = %v, want %v", tc.raw, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Errorf("raw %v: percentage %v outside [0,100]", tc.raw, got)
		}
	}
	if got := ItemPercentage(Record{"x": 5.0}, Item{Key: "x", Allocation: 0}); got != 0 {
		t.Errorf("zero allocation percentage = %v, want 0", got)
	}
	if got := ItemPercentage(nil, it); got != 0 {
		t.Errorf("nil record percentage = %v, want 0", got)
	}
}
