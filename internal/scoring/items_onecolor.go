package scoring

// oneColorItems is the canonical one-color checkpoint table: 36 items
// across categories 14-28, allocations summing to OneColorMax (610). The
// group subtotals match the radar axis maxima: base 200, color 230,
// top 180.
var oneColorItems = []Item{
	// base
	{ID: "14-1", Heading: "14. protrusion", Label: "too much scraping", Category: "14", Group: "base", Key: "color_14_1", Allocation: 10, Required: true},
	{ID: "14-2", Heading: "14. protrusion", Label: "insufficient cutting", Category: "14", Group: "base", Key: "color_14_2", Allocation: 20, Required: true},
	{ID: "15-1", Heading: "15. cuticle line", Label: "remaining gel", Category: "15", Group: "base", Key: "color_15_1", Allocation: 20},
	{ID: "15-2", Heading: "15. cuticle line", Label: "root step", Category: "15", Group: "base", Key: "color_15_2", Allocation: 10, Required: true},
	{ID: "16-1", Heading: "16. corner", Label: "too much scraping", Category: "16", Group: "base", Key: "color_16_1", Allocation: 10},
	{ID: "16-2", Heading: "16. corner", Label: "insufficient cutting", Category: "16", Group: "base", Key: "color_16_2", Allocation: 20, Required: true},
	{ID: "17-1", Heading: "17. side", Label: "remaining gel", Category: "17", Group: "base", Key: "color_17_1", Allocation: 10},
	{ID: "17-2", Heading: "17. side", Label: "root step", Category: "17", Group: "base", Key: "color_17_2", Allocation: 20, Required: true},
	{ID: "18-1", Heading: "18. high point", Label: "too much scraping", Category: "18", Group: "base", Key: "color_18_1", Allocation: 20},
	{ID: "18-2", Heading: "18. high point", Label: "insufficient cutting", Category: "18", Group: "base", Key: "color_18_2", Allocation: 30, Required: true},
	{ID: "19-1", Heading: "19. pooling dent", Label: "remaining gel", Category: "19", Group: "base", Key: "color_19_1", Allocation: 10},
	{ID: "19-2", Heading: "19. pooling dent", Label: "root step", Category: "19", Group: "base", Key: "color_19_2", Allocation: 20},

	// color
	{ID: "20-1", Heading: "20. cuticle line", Label: "gap/missed coverage", Category: "20", Group: "color", Key: "color_20_1", Allocation: 20},
	{ID: "20-2", Heading: "20. cuticle line", Label: "rattling", Category: "20", Group: "color", Key: "color_20_2", Allocation: 30, Required: true},
	{ID: "21-1", Heading: "21. right corner", Label: "gap/missed coverage", Category: "21", Group: "color", Key: "color_21_1", Allocation: 30},
	{ID: "21-2", Heading: "21. right corner", Label: "rattling", Category: "21", Group: "color", Key: "color_21_2", Allocation: 10, Required: true},
	{ID: "22-1", Heading: "22. left corner", Label: "gap/missed coverage", Category: "22", Group: "color", Key: "color_22_1", Allocation: 10},
	{ID: "22-2", Heading: "22. left corner", Label: "rattling", Category: "22", Group: "color", Key: "color_22_2", Allocation: 20, Required: true},
	{ID: "23-1", Heading: "23. right side", Label: "gap/missed coverage", Category: "23", Group: "color", Key: "color_23_1", Allocation: 20},
	{ID: "23-2", Heading: "23. right side", Label: "rattling", Category: "23", Group: "color", Key: "color_23_2", Allocation: 20, Required: true},
	{ID: "24-1", Heading: "24. left side", Label: "gap/missed coverage", Category: "24", Group: "color", Key: "color_24_1", Allocation: 20},
	{ID: "24-2", Heading: "24. left side", Label: "rattling", Category: "24", Group: "color", Key: "color_24_2", Allocation: 10, Required: true},
	{ID: "25-1", Heading: "25. edge", Label: "missed coverage", Category: "25", Group: "color", Key: "color_25_1", Allocation: 10},
	{ID: "25-2", Heading: "25. edge", Label: "rattling", Category: "25", Group: "color", Key: "color_25_2", Allocation: 10},
	{ID: "25-3", Heading: "25. edge", Label: "underflow", Category: "25", Group: "color", Key: "color_25_3", Allocation: 20},

	// top
	{ID: "26-1", Heading: "26. high point", Label: "position", Category: "26", Group: "top", Key: "color_26_1", Allocation: 10},
	{ID: "26-2", Heading: "26. high point", Label: "arch rattling", Category: "26", Group: "top", Key: "color_26_2", Allocation: 20},
	{ID: "27-1", Heading: "27. surface", Label: "cuticle area", Category: "27", Group: "top", Key: "color_27_1", Allocation: 10},
	{ID: "27-2", Heading: "27. surface", Label: "corner", Category: "27", Group: "top", Key: "color_27_2", Allocation: 10},
	{ID: "27-3", Heading: "27. surface", Label: "pooling dent", Category: "27", Group: "top", Key: "color_27_3", Allocation: 10},
	{ID: "27-4", Heading: "27. surface", Label: "tip", Category: "27", Group: "top", Key: "color_27_4", Allocation: 10},
	{ID: "27-5", Heading: "27. surface", Label: "yellow line", Category: "27", Group: "top", Key: "color_27_5", Allocation: 30},
	{ID: "27-6", Heading: "27. surface", Label: "side straight", Category: "27", Group: "top", Key: "color_27_6", Allocation: 30},
	{ID: "28-1", Heading: "28. protrusion", Label: "cuticle line", Category: "28", Group: "top", Key: "color_28_1", Allocation: 10, Required: true},
	{ID: "28-2", Heading: "28. protrusion", Label: "corner side", Category: "28", Group: "top", Key: "color_28_2", Allocation: 20, Required: true},
	{ID: "28-3", Heading: "28. protrusion", Label: "tip edge", Category: "28", Group: "top", Key: "color_28_3", Allocation: 20},
}
