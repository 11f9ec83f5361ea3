// Package msg defines all tea.Msg types dispatched within the Studyport TUI.
// It has no upstream imports (client, app) to avoid import cycles.
package msg

// -- Lifecycle --

// HealthResult from the initial health check.
type HealthResult struct {
	Status  string
	Version string
	Err     error
}

// -- Schools --

// School mirrors client.School for the msg layer.
type School struct {
	ID             string
	Name           string
	Country        string
	City           string
	Ranking        int
	TuitionUSD     int
	AcceptanceRate float64
	Summary        string
}

// SchoolPageResult carries one fetched page of the school catalogue.
type SchoolPageResult struct {
	Query   string
	Page    int
	Schools []School
	HasMore bool
	Err     error
}

// -- Admission cases --

// AdmissionCase mirrors client.AdmissionCase for the msg layer.
type AdmissionCase struct {
	ID         string
	Title      string
	SchoolName string
	Program    string
	Outcome    string // admitted, waitlisted, rejected
	GPA        float64
	Year       int
	Highlights []string
}

// CasePageResult carries one fetched page of shared admission cases.
type CasePageResult struct {
	Page    int
	Cases   []AdmissionCase
	HasMore bool
	Err     error
}

// -- Notifications --

// Notification mirrors client.Notification for the msg layer.
type Notification struct {
	ID        string
	Kind      string
	Title     string
	Body      string
	Read      bool
	CreatedAt string
}

// NotificationsResult from the background notification poll.
type NotificationsResult struct {
	Notifications []Notification
	Err           error
}

// NotificationRead reports the outcome of marking one notification read.
type NotificationRead struct {
	ID  string
	Err error
}

// -- Points --

// PointsResult from GET /points.
type PointsResult struct {
	Balance    int
	EarnedThis int
	Err        error
}

// -- Recommendations --

// Recommendation mirrors client.Recommendation for the msg layer.
type Recommendation struct {
	SchoolID   string
	SchoolName string
	Tier       string // reach, match, safety
	Score      float64
	Rationale  string
}

// RecommendationsResult from the recommendation fetch.
type RecommendationsResult struct {
	Recommendations []Recommendation
	GeneratedAt     string
	Err             error
}

// -- Essay-prompt admin pipeline --

// EssayPrompt mirrors client.EssayPrompt for the msg layer.
type EssayPrompt struct {
	ID         string
	SchoolName string
	CycleYear  int
	PromptText string
	WordLimit  int
	SourceURL  string
	Status     string // pending, verified, rejected
	Diff       string // server-computed diff against the prior cycle's prompt
}

// PromptsResult carries scraped prompts awaiting review.
type PromptsResult struct {
	Prompts []EssayPrompt
	Err     error
}

// ScrapeTriggered reports the outcome of starting a scraper run.
type ScrapeTriggered struct {
	JobID    string
	SchoolID string
	Err      error
}

// PromptVerified reports the outcome of a verify decision.
type PromptVerified struct {
	ID       string
	Approved bool
	Err      error
}

// -- UI events --

// ClearStatus resets the transient status-bar message.
type ClearStatus struct{}
