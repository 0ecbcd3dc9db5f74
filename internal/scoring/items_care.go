package scoring

// careItems is the canonical care checkpoint table: 26 items across
// categories 1-13, allocations summing to CareMax (410). Categories 1-3
// carry 100 points, 4-6 carry 130, 7-13 carry 180; the radar chart groups
// follow those ranges.
var careItems = []Item{
	// filing
	{ID: "1-1", Heading: "1. off sharpening", Label: "too much scraping", Category: "1", Group: "file", Key: "care_1_1", Allocation: 10},
	{ID: "1-2", Heading: "1. off sharpening", Label: "insufficient cut", Category: "1", Group: "file", Key: "care_1_2", Allocation: 20},
	{ID: "2-1", Heading: "2. off finish", Label: "remaining gel", Category: "2", Group: "file", Key: "care_2_1", Allocation: 20},
	{ID: "3-1", Heading: "3. fill-in finish", Label: "root step", Category: "3", Group: "file", Key: "care_3_1", Allocation: 10},
	{ID: "3-2", Heading: "3. fill-in finish", Label: "surface unevenness", Category: "3", Group: "file", Key: "care_3_2", Allocation: 10},
	{ID: "3-3", Heading: "3. fill-in finish", Label: "side shaving", Category: "3", Group: "file", Key: "care_3_3", Allocation: 20},
	{ID: "3-4", Heading: "3. fill-in finish", Label: "thickness", Category: "3", Group: "file", Key: "care_3_4", Allocation: 10},

	{ID: "4-1", Heading: "4. length/shape", Label: "rattling", Category: "4", Group: "file", Key: "care_4_1", Allocation: 20, Required: true},
	{ID: "4-2", Heading: "4. length/shape", Label: "balance", Category: "4", Group: "file", Key: "care_4_2", Allocation: 20},
	{ID: "4-3", Heading: "4. length/shape", Label: "unity of form", Category: "4", Group: "file", Key: "care_4_3", Allocation: 20, Required: true},
	{ID: "5-1", Heading: "5. side straight", Label: "side drop", Category: "5", Group: "file", Key: "care_5_1", Allocation: 10},
	{ID: "5-2", Heading: "5. side straight", Label: "side rise", Category: "5", Group: "file", Key: "care_5_2", Allocation: 20},
	{ID: "5-3", Heading: "5. side straight", Label: "remaining corner", Category: "5", Group: "file", Key: "care_5_3", Allocation: 10},
	{ID: "6-1", Heading: "6. symmetry", Label: "center", Category: "6", Group: "file", Key: "care_6_1", Allocation: 10},
	{ID: "6-2", Heading: "6. symmetry", Label: "left-right symmetry", Category: "6", Group: "file", Key: "care_6_2", Allocation: 20},

	// cuticle care
	{ID: "7-1", Heading: "7. right corner", Label: "loose cuticle", Category: "7", Group: "cuticle care", Key: "care_7_1", Allocation: 20},
	{ID: "8-1", Heading: "8. left corner", Label: "loose cuticle", Category: "8", Group: "cuticle care", Key: "care_8_1", Allocation: 20},
	{ID: "9-1", Heading: "9. right side", Label: "loose cuticle", Category: "9", Group: "cuticle care", Key: "care_9_1", Allocation: 20, Required: true},
	{ID: "10-1", Heading: "10. left side", Label: "loose cuticle", Category: "10", Group: "cuticle care", Key: "care_10_1", Allocation: 20, Required: true},
	{ID: "11-1", Heading: "11. side wall", Label: "small nail", Category: "11", Group: "cuticle care", Key: "care_11_1", Allocation: 10},
	{ID: "11-2", Heading: "11. side wall", Label: "hard skin", Category: "11", Group: "cuticle care", Key: "care_11_2", Allocation: 10},
	{ID: "12-1", Heading: "12. cuticle line", Label: "loose cuticle", Category: "12", Group: "cuticle care", Key: "care_12_1", Allocation: 20, Required: true},
	{ID: "12-2", Heading: "12. cuticle line", Label: "rattling", Category: "12", Group: "cuticle care", Key: "care_12_2", Allocation: 10},
	{ID: "13-1", Heading: "13. nipper processing", Label: "rattling", Category: "13", Group: "cuticle care", Key: "care_13_1", Allocation: 20},
	{ID: "13-2", Heading: "13. nipper processing", Label: "cut too much", Category: "13", Group: "cuticle care", Key: "care_13_2", Allocation: 20},
	{ID: "13-3", Heading: "13. nipper processing", Label: "hangnail", Category: "13", Group: "cuticle care", Key: "care_13_3", Allocation: 10},
}
