package tui

// Messages for the tea program

// NewsLoadedMsg is sent when the feed request finishes
type NewsLoadedMsg struct {
	News *NewsResponse
	Err  error
}

// RatedMsg is sent when a rating request finishes
type RatedMsg struct {
	Result *RateResponse
	Rating int
	Err    error
}

// SummaryMsg is sent when a summary request finishes
type SummaryMsg struct {
	Summary string
	Err     error
}
