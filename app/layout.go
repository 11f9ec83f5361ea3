package app

const (
	// compactBreakpoint is the terminal width below which meta columns are
	// dropped from list rows.
	compactBreakpoint = 80

	headerHeight = 2 // brand line + separator
	tabsHeight   = 1
	statusHeight = 1
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth  int
	TermHeight int
	BodyWidth  int
	BodyHeight int
	Compact    bool
}

// ComputeLayout calculates frame dimensions from the terminal size. The body
// gets everything not claimed by the fixed chrome.
func ComputeLayout(termW, termH int) Layout {
	l := Layout{
		TermWidth:  termW,
		TermHeight: termH,
		BodyWidth:  termW,
		Compact:    termW < compactBreakpoint,
	}
	l.BodyHeight = termH - headerHeight - tabsHeight - statusHeight
	if l.BodyHeight < 3 {
		l.BodyHeight = 3
	}
	return l
}
