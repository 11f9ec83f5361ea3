// Package client is the REST client for the Studyport backend. Every decoded
// response passes schema validation before being returned, so malformed
// payloads surface as errors at this boundary instead of as broken UI state.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Client talks to the Studyport REST API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New constructs a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token attached to every request.
func (c *Client) SetToken(token string) {
	c.Token = token
}

// Health checks backend availability.
func (c *Client) Health() (*HealthResponse, error) {
	resp, err := c.get("/health")
	if err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	var health HealthResponse
	if err := c.decodeValid(resp, &health); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &health, nil
}

// -- Schools --------------------------------------------------------------

// ListSchools fetches one page of the school catalogue. query is optional.
func (c *Client) ListSchools(query string, page int) (*SchoolPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if query != "" {
		q.Set("q", query)
	}
	resp, err := c.get("/api/v1/schools?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	var result SchoolPage
	if err := c.decodeValid(resp, &result); err != nil {
		return nil, fmt.Errorf("decode schools: %w", err)
	}
	return &result, nil
}

// -- Admission cases --------------------------------------------------------

// ListCases fetches one page of shared admission cases.
func (c *Client) ListCases(page int) (*CasePage, error) {
	resp, err := c.get(fmt.Sprintf("/api/v1/cases?page=%d", page))
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	var result CasePage
	if err := c.decodeValid(resp, &result); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	return &result, nil
}

// -- Notifications ------------------------------------------------------------

// ListNotifications fetches the notification feed.
func (c *Client) ListNotifications() ([]Notification, error) {
	resp, err := c.get("/api/v1/notifications")
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	var wrapper struct {
		Notifications []Notification `json:"notifications" validate:"dive"`
	}
	if err := c.decodeValid(resp, &wrapper); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return wrapper.Notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(id string) error {
	resp, err := c.postJSON(fmt.Sprintf("/api/v1/notifications/%s/read", id), nil)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	resp.Body.Close()
	return nil
}

// -- Points ---------------------------------------------------------------

// GetPoints fetches the user's points summary.
func (c *Client) GetPoints() (*PointsSummary, error) {
	resp, err := c.get("/api/v1/points")
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	var result PointsSummary
	if err := c.decodeValid(resp, &result); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	return &result, nil
}

// -- Recommendations -----------------------------------------------------------

// GetRecommendations fetches the AI-ranked school suggestions for the current
// user profile. Generation happens server-side.
func (c *Client) GetRecommendations() (*RecommendationResponse, error) {
	resp, err := c.get("/api/v1/recommendations")
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	var result RecommendationResponse
	if err := c.decodeValid(resp, &result); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return &result, nil
}

// -- Essay-prompt admin pipeline ------------------------------------------------

// ListPendingPrompts fetches scraped prompts awaiting review.
func (c *Client) ListPendingPrompts() ([]EssayPrompt, error) {
	resp, err := c.get("/api/v1/admin/essay-scraper/pending")
	if err != nil {
		return nil, fmt.Errorf("list pending prompts: %w", err)
	}
	var wrapper struct {
		Prompts []EssayPrompt `json:"prompts" validate:"dive"`
	}
	if err := c.decodeValid(resp, &wrapper); err != nil {
		return nil, fmt.Errorf("decode prompts: %w", err)
	}
	return wrapper.Prompts, nil
}

// TriggerScrape starts a scraper run for one school.
func (c *Client) TriggerScrape(schoolID string) (*ScrapeJob, error) {
	resp, err := c.postJSON("/api/v1/admin/essay-scraper/run", map[string]string{"school_id": schoolID})
	if err != nil {
		return nil, fmt.Errorf("trigger scrape: %w", err)
	}
	var result ScrapeJob
	if err := c.decodeValid(resp, &result); err != nil {
		return nil, fmt.Errorf("decode scrape job: %w", err)
	}
	return &result, nil
}

// VerifyPrompt approves or rejects one pending prompt.
func (c *Client) VerifyPrompt(id string, approve bool, note string) error {
	resp, err := c.postJSON(
		fmt.Sprintf("/api/v1/admin/essay-scraper/prompts/%s/verify", id),
		VerifyPromptRequest{Approve: approve, Note: note},
	)
	if err != nil {
		return fmt.Errorf("verify prompt: %w", err)
	}
	resp.Body.Close()
	return nil
}

// -- HTTP helpers -------------------------------------------------------------

func (c *Client) get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.checkStatus(c.HTTPClient.Do(req))
}

func (c *Client) postJSON(path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.checkStatus(c.HTTPClient.Do(req))
}

func (c *Client) setHeaders(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

// checkStatus converts non-2xx responses into errors, consuming the body.
func (c *Client) checkStatus(resp *http.Response, err error) (*http.Response, error) {
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return nil, fmt.Errorf("API %d: %s: %s", resp.StatusCode, apiErr.Error, apiErr.Details)
	}
	return nil, fmt.Errorf("API %d: %s", resp.StatusCode, string(body))
}

// decodeValid decodes the response body into out and validates the declared
// schema. The body is always closed.
func (c *Client) decodeValid(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("response schema: %w", err)
	}
	return nil
}
