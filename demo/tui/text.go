package tui

// UI Text Constants
const (
	// Footer
	TextFooterBrowsing = "j/k: move | 1-4: rate | s: summarize | r: refresh | q: quit"
	TextFooterError    = "Press 'r' to retry | Press 'q' to quit"
)
