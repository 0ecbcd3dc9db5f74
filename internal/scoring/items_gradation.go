package scoring

// gradationItems is the canonical gradient-application table: 17 items
// across categories 28-32, 10 points each, raw sum GradationRawMax (170).
// Gradation totals are reported as a percentage of the raw maximum.
var gradationItems = []Item{
	{ID: "28-1", Heading: "28. gradient blend", Label: "vertical streaks", Category: "28", Group: "gradation", Key: "grad_28_1", Allocation: 10},
	{ID: "28-2", Heading: "28. gradient blend", Label: "brush marks", Category: "28", Group: "gradation", Key: "grad_28_2", Allocation: 10},
	{ID: "28-3", Heading: "28. gradient blend", Label: "left-right difference", Category: "28", Group: "gradation", Key: "grad_28_3", Allocation: 10},
	{ID: "28-4", Heading: "28. gradient blend", Label: "color pooling", Category: "28", Group: "gradation", Key: "grad_28_4", Allocation: 10},

	{ID: "29-1", Heading: "29. color depth", Label: "mid transparency", Category: "29", Group: "gradation", Key: "grad_29_1", Allocation: 10},
	{ID: "29-2", Heading: "29. color depth", Label: "tip color depth", Category: "29", Group: "gradation", Key: "grad_29_2", Allocation: 10},

	{ID: "30-1", Heading: "30. edge line", Label: "overflow", Category: "30", Group: "gradation", Key: "grad_30_1", Allocation: 10},
	{ID: "30-2", Heading: "30. edge line", Label: "missed coverage", Category: "30", Group: "gradation", Key: "grad_30_2", Allocation: 10},
	{ID: "30-3", Heading: "30. edge line", Label: "rattling", Category: "30", Group: "gradation", Key: "grad_30_3", Allocation: 10},

	{ID: "31-1", Heading: "31. high point", Label: "position", Category: "31", Group: "gradation", Key: "grad_31_1", Allocation: 10},
	{ID: "31-2", Heading: "31. high point", Label: "arch rattling", Category: "31", Group: "gradation", Key: "grad_31_2", Allocation: 10},

	{ID: "32-1", Heading: "32. form", Label: "cuticle area", Category: "32", Group: "gradation", Key: "grad_32_1", Allocation: 10},
	{ID: "32-2", Heading: "32. form", Label: "corner", Category: "32", Group: "gradation", Key: "grad_32_2", Allocation: 10},
	{ID: "32-3", Heading: "32. form", Label: "yellow line", Category: "32", Group: "gradation", Key: "grad_32_3", Allocation: 10},
	{ID: "32-4", Heading: "32. form", Label: "tip", Category: "32", Group: "gradation", Key: "grad_32_4", Allocation: 10},
	{ID: "32-5", Heading: "32. form", Label: "side", Category: "32", Group: "gradation", Key: "grad_32_5", Allocation: 10},
	{ID: "32-6", Heading: "32. form", Label: "side straight", Category: "32", Group: "gradation", Key: "grad_32_6", Allocation: 10},
}
