package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the split layout
	// falls back to stacked panels.
	LayoutCompactWidth = 80

	// LayoutFormRatio is the share of the width given to the form and
	// preview in the split layout, in percent.
	LayoutFormRatio = 55

	// LayoutMinListHeight is the smallest list viewport height.
	LayoutMinListHeight = 3
)

// Display limits.
const (
	// TitleInputLimit caps the title input length.
	TitleInputLimit = 120

	// HelpModalWidth is the width of the help overlay.
	HelpModalWidth = 52
)

// Timing constants.
const (
	// DefaultLookupTimeout bounds a lookup when no timeout is configured.
	DefaultLookupTimeout = 5 * time.Second
)
