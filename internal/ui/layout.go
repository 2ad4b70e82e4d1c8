package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100
)

// Fixed chrome around the content pane.
const (
	// chromeHeight is the header plus the command bar.
	chromeHeight = 2

	// boxChrome is the top and bottom border of a titled box.
	boxChrome = 2

	// cardHeight is the number of lines one list card occupies.
	cardHeight = 2
)
