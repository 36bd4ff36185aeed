// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/hr-toolkit/middleware"
	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	sess, _ := testutil.SetupTestSession(t)
	return NewRouter(sess, testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "hr-toolkit API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// 400, 401, 404 and 409 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/roster"},
		{"POST", "/roster/import"},
		{"POST", "/roster/upload"},
		{"GET", "/roster/duplicates"},
		{"POST", "/roster/demo"},
		{"POST", "/roster/dedupe"},
		{"DELETE", "/roster/some-id"},
		{"DELETE", "/roster"},

		{"GET", "/draw"},
		{"POST", "/draw"},
		{"POST", "/draw/reset"},
		{"PUT", "/draw/repeat"},

		{"POST", "/groups"},
		{"GET", "/groups"},
		{"GET", "/groups/export"},
		{"GET", "/groups/print"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},        // Only GET is defined
		{"PUT", "/roster/import"},  // Only POST is defined
		{"GET", "/draw/reset"},     // Only POST is defined
		{"POST", "/draw/repeat"},   // Only PUT is defined
		{"DELETE", "/groups"},      // Only GET and POST are defined
		{"POST", "/groups/export"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestAdminRoutes(t *testing.T) {
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/roster/demo"},
		{"POST", "/roster/dedupe"},
		{"DELETE", "/roster/p1"},
		{"DELETE", "/roster?confirm=true"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			sess, _ := testutil.SetupTestSession(t)
			testutil.SeedRoster(t, sess, "Alice, Alice, Bob")
			mux := NewRouter(sess, testutil.GetTestConfig())

			// Without the key nothing changes
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, nil, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, nil, map[string]string{
				middleware.AdminKeyHeader: "wrong",
			}))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			if n := len(sess.Participants()); n != 3 {
				t.Errorf("Expected roster untouched, got %d participants", n)
			}

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, nil, map[string]string{
				middleware.AdminKeyHeader: testutil.TestAdminKey,
			}))
			testutil.AssertStatus(t, w, http.StatusOK)
		})
	}

	t.Run("no key configured", func(t *testing.T) {
		sess, _ := testutil.SetupTestSession(t)
		testutil.SeedRoster(t, sess, "Alice, Alice")
		cfg := testutil.GetTestConfig()
		cfg.AdminKey = ""
		mux := NewRouter(sess, cfg)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/roster/dedupe", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}

func TestPathParameterExtraction(t *testing.T) {
	sess, _ := testutil.SetupTestSession(t)
	added := testutil.SeedRoster(t, sess, "Alice, Bob")
	mux := NewRouter(sess, testutil.GetTestConfig())

	req := testutil.MakeRequest("DELETE", "/roster/"+added[1].ID, nil, map[string]string{
		middleware.AdminKeyHeader: testutil.TestAdminKey,
	})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.RemovedResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Removed != 1 {
		t.Errorf("Expected 1 removed, got %d", resp.Removed)
	}

	left := sess.Participants()
	if len(left) != 1 || left[0].ID != added[0].ID {
		t.Errorf("Expected only %s to remain, got %+v", added[0].ID, left)
	}
}

func TestRequestIDHeader(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/roster", nil))

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request id header on logged routes")
	}
}

// TestFullWorkflow walks through import, draw and grouping:
// 1. Import names
// 2. Detect and remove duplicates
// 3. Draw every participant once
// 4. Generate and export groups
func TestFullWorkflow(t *testing.T) {
	mux := newTestRouter(t)
	admin := map[string]string{middleware.AdminKeyHeader: testutil.TestAdminKey}

	// Step 1: import
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/roster/import",
		models.ImportRequest{Text: "Alice, Bob\nCarol, Alice\nDave"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 2: duplicates
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/roster", nil, nil))
	var rosterResp models.RosterResponse
	testutil.AssertJSON(t, w, &rosterResp)
	if rosterResp.Count != 5 || len(rosterResp.Duplicates) != 1 || rosterResp.Duplicates[0] != "Alice" {
		t.Fatalf("Step 2 - unexpected roster %+v", rosterResp)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/roster/dedupe", nil, admin))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 3: draw until the pool is empty
	winners := make(map[string]bool)
	for i := 0; i < 4; i++ {
		w = httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/draw", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var drawResp models.DrawResponse
		testutil.AssertJSON(t, w, &drawResp)
		winners[drawResp.Winner.ID] = true
	}
	if len(winners) != 4 {
		t.Errorf("Step 3 - expected 4 distinct winners, got %d", len(winners))
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/draw", nil, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 4: groups
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/groups", map[string]any{"group_size": 3}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/groups/export", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// BOM, header and one row per participant
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("Step 4 - expected 5 CSV lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "\uFEFF") {
		t.Error("Step 4 - expected export to start with a byte order mark")
	}
}
