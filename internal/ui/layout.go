package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the header drops the tagline.
	LayoutCompactWidth = 80
)

// Form layout.
const (
	// formLabelWidth is the column width reserved for field labels.
	formLabelWidth = 12
)
