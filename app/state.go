package app

// State represents the current application state.
type State int

const (
	StateConnecting State = iota // Waiting for backend health check
	StateReady                   // Browsing a content view
	StateDetail                  // Reading one item's detail
	StateSearch                  // School search palette overlay
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateDetail:
		return "detail"
	case StateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// View identifies one of the content views.
type View int

const (
	ViewSchools View = iota
	ViewCases
	ViewRecommendations
	ViewNotifications
	ViewPrompts // admin-only review queue
)

func (v View) Title() string {
	switch v {
	case ViewSchools:
		return "Schools"
	case ViewCases:
		return "Cases"
	case ViewRecommendations:
		return "For You"
	case ViewNotifications:
		return "Inbox"
	case ViewPrompts:
		return "Review"
	default:
		return "?"
	}
}

// RecState enumerates the recommendation generation flow.
type RecState int

const (
	RecIdle RecState = iota
	RecLoading
	RecReady
	RecFailed
)

func (s RecState) String() string {
	switch s {
	case RecIdle:
		return "idle"
	case RecLoading:
		return "loading"
	case RecReady:
		return "ready"
	case RecFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// recTransitions is the legal move table for the recommendation flow. A new
// generation can be requested from any settled state, never while one is
// in flight.
var recTransitions = map[RecState][]RecState{
	RecIdle:    {RecLoading},
	RecLoading: {RecReady, RecFailed},
	RecReady:   {RecLoading},
	RecFailed:  {RecLoading},
}
