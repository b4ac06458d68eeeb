package ui

import "time"

// Pane proportions, in percent of the content height.
const (
	patternTablePercent  = 40
	sampleSummaryPercent = 20
)

// Timing constants.
const (
	// DefaultUIInterval is how often the store is checked while loading.
	DefaultUIInterval = 100 * time.Millisecond
)

// Chrome heights: tab header (3 lines) plus command bar.
const (
	headerHeight  = 3
	cmdBarHeight  = 1
	chromeHeight  = headerHeight + cmdBarHeight
	minPaneHeight = 3
)
