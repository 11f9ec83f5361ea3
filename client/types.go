package client

// Validation tags are enforced by decodeValid at the API boundary: responses
// that do not match the declared shape are rejected before they reach the UI.

// HealthResponse from GET /health.
type HealthResponse struct {
	Status  string `json:"status" validate:"required"`
	Version string `json:"version"`
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// -- Schools --------------------------------------------------------------

// School is one institution in the catalogue.
type School struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Country        string   `json:"country"`
	City           string   `json:"city"`
	Ranking        int      `json:"ranking" validate:"gte=0"`
	TuitionUSD     int      `json:"tuition_usd" validate:"gte=0"`
	AcceptanceRate float64  `json:"acceptance_rate" validate:"gte=0,lte=1"`
	Tags           []string `json:"tags"`
	Summary        string   `json:"summary"`
}

// SchoolPage is one page of the school catalogue.
type SchoolPage struct {
	Schools    []School `json:"schools" validate:"dive"`
	Page       int      `json:"page" validate:"gte=1"`
	TotalPages int      `json:"total_pages" validate:"gte=0"`
	HasMore    bool     `json:"has_more"`
}

// -- Admission cases --------------------------------------------------------

// AdmissionCase is one shared admission outcome.
type AdmissionCase struct {
	ID         string   `json:"id" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	SchoolName string   `json:"school_name"`
	Program    string   `json:"program"`
	Year       int      `json:"year" validate:"gte=0"`
	Outcome    string   `json:"outcome" validate:"oneof=admitted waitlisted rejected"`
	GPA        float64  `json:"gpa" validate:"gte=0"`
	Highlights []string `json:"highlights"`
}

// CasePage is one page of admission cases.
type CasePage struct {
	Cases      []AdmissionCase `json:"cases" validate:"dive"`
	Page       int             `json:"page" validate:"gte=1"`
	TotalPages int             `json:"total_pages" validate:"gte=0"`
	HasMore    bool            `json:"has_more"`
}

// -- Notifications ------------------------------------------------------------

// Notification is one item in the user's notification feed.
type Notification struct {
	ID        string `json:"id" validate:"required"`
	Kind      string `json:"kind"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}

// -- Points ---------------------------------------------------------------

// PointsSummary from GET /points. The ledger itself is computed server-side;
// the client only displays the summary.
type PointsSummary struct {
	Balance int `json:"balance" validate:"gte=0"`
	Earned  int `json:"earned" validate:"gte=0"`
	Spent   int `json:"spent" validate:"gte=0"`
}

// -- Recommendations -----------------------------------------------------------

// Recommendation is one AI-ranked school suggestion.
type Recommendation struct {
	SchoolID   string   `json:"school_id" validate:"required"`
	SchoolName string   `json:"school_name" validate:"required"`
	FitScore   float64  `json:"fit_score" validate:"gte=0,lte=1"`
	Tier       string   `json:"tier" validate:"oneof=reach match safety"`
	Reasons    []string `json:"reasons"`
}

// RecommendationResponse from GET /recommendations.
type RecommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations" validate:"dive"`
	GeneratedAt     string           `json:"generated_at"`
}

// -- Essay-prompt admin pipeline ------------------------------------------------

// EssayPrompt is one scraped prompt awaiting review. The scraping, extraction
// and diffing happen server-side; the client drives the review workflow.
type EssayPrompt struct {
	ID         string `json:"id" validate:"required"`
	SchoolName string `json:"school_name" validate:"required"`
	Program    string `json:"program"`
	CycleYear  int    `json:"cycle_year" validate:"gte=0"`
	PromptText string `json:"prompt_text" validate:"required"`
	WordLimit  int    `json:"word_limit" validate:"gte=0"`
	SourceURL  string `json:"source_url"`
	ScrapedAt  string `json:"scraped_at"`
	Status     string `json:"status" validate:"oneof=pending verified rejected"`
	Diff       string `json:"diff"`
}

// ScrapeJob from POST /admin/essay-scraper/run.
type ScrapeJob struct {
	JobID  string `json:"job_id" validate:"required"`
	Status string `json:"status"`
}

// VerifyPromptRequest for POST /admin/essay-scraper/prompts/{id}/verify.
type VerifyPromptRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note,omitempty"`
}
