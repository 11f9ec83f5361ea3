package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/fulldump/biff"
)

func newTestServer(path, body string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestListSchools_DecodesPage(t *testing.T) {
	srv := newTestServer("/api/v1/schools", `{
		"schools": [
			{"id": "s1", "name": "ETH Zurich", "country": "CH", "ranking": 9, "tuition_usd": 1500, "acceptance_rate": 0.27},
			{"id": "s2", "name": "TU Munich", "country": "DE", "ranking": 30, "tuition_usd": 0, "acceptance_rate": 0.8}
		],
		"page": 1, "total_pages": 12, "has_more": true
	}`, http.StatusOK)
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListSchools("", 1)

	AssertNil(err)
	AssertEqual(len(page.Schools), 2)
	AssertEqual(page.Schools[0].Name, "ETH Zurich")
	AssertEqual(page.HasMore, true)
}

func TestListSchools_RejectsInvalidShape(t *testing.T) {
	// Missing required "id" on the first school: the validator must reject
	// the payload at the boundary.
	srv := newTestServer("/api/v1/schools", `{
		"schools": [{"name": "No ID University"}],
		"page": 1, "total_pages": 1, "has_more": false
	}`, http.StatusOK)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListSchools("", 1)
	AssertNotNil(err)
}

func TestListCases_RejectsUnknownOutcome(t *testing.T) {
	srv := newTestServer("/api/v1/cases", `{
		"cases": [{"id": "c1", "title": "My journey", "outcome": "maybe"}],
		"page": 1, "total_pages": 1, "has_more": false
	}`, http.StatusOK)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCases(1)
	AssertNotNil(err)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := newTestServer("/api/v1/points", `{"error": "unauthorized", "details": "token expired"}`, http.StatusUnauthorized)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetPoints()
	AssertNotNil(err)
	AssertEqual(err.Error(), "points: API 401: unauthorized: token expired")
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status": "ok", "version": "1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")
	_, err := c.Health()

	AssertNil(err)
	AssertEqual(gotAuth, "Bearer tok-123")
}

func TestListPendingPrompts_Decodes(t *testing.T) {
	srv := newTestServer("/api/v1/admin/essay-scraper/pending", `{
		"prompts": [{
			"id": "p1", "school_name": "Stanford", "cycle_year": 2027,
			"prompt_text": "What matters to you, and why?", "word_limit": 250,
			"status": "pending"
		}]
	}`, http.StatusOK)
	defer srv.Close()

	c := New(srv.URL)
	prompts, err := c.ListPendingPrompts()

	AssertNil(err)
	AssertEqual(len(prompts), 1)
	AssertEqual(prompts[0].Status, "pending")
}

func TestVerifyPrompt_PostsDecision(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		AssertEqual(r.Method, "POST")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.VerifyPrompt("p1", true, "looks right")

	AssertNil(err)
	AssertEqual(gotPath, "/api/v1/admin/essay-scraper/prompts/p1/verify")
}
