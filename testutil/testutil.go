// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/hr-toolkit/cliparse"
	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/random"
	"github.com/danielhkuo/hr-toolkit/session"
	"github.com/danielhkuo/hr-toolkit/storage"
)

// TestAdminKey is the admin key set by GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestSession creates a session over a fresh in-memory slot with
// deterministic ids (p1, p2, ...) and a seeded random source.
// Extra options are applied after the defaults.
func SetupTestSession(t *testing.T, opts ...session.Option) (*session.Session, *storage.MemoryStore) {
	t.Helper()

	slot := storage.NewMemoryStore()
	defaults := []session.Option{
		session.WithRand(random.Seeded(42)),
		session.WithIDFunc(SequentialIDs()),
	}

	sess, err := session.Load(context.Background(), slot, append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("Failed to load test session: %v", err)
	}
	return sess, slot
}

// SequentialIDs returns an id generator yielding p1, p2, ...
func SequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("p%d", n), nil
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseType:   cliparse.DatabaseMemory,
		AdminKey:       TestAdminKey,
		SpinTicks:      0,
		MaxUploadBytes: 1 << 20,
	}
}

// SeedRoster ingests names into sess and returns the added participants
func SeedRoster(t *testing.T, sess *session.Session, names string) []models.Participant {
	t.Helper()

	added, err := sess.Ingest(context.Background(), names)
	if err != nil {
		t.Fatalf("Failed to seed roster: %v", err)
	}
	return added
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
