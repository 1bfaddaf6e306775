// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/votesys/auth"
	"github.com/danielhkuo/votesys/cliparse"
	"github.com/danielhkuo/votesys/ledger"
	"github.com/danielhkuo/votesys/models"
	"github.com/danielhkuo/votesys/pollxml"
	"github.com/danielhkuo/votesys/store"
	"github.com/danielhkuo/votesys/users"
	"github.com/danielhkuo/votesys/voting"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            8000,
		DataDir:         "unused",
		JWTSecret:       "test-jwt-secret",
		TokenTTLMinutes: 60,
		AdminUser:       "admin",
		AdminPassword:   "secret",
	}
}

// NewVotingService builds a voting service over a fresh temp data dir
func NewVotingService(t *testing.T) (*voting.Service, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := store.New(dir, pollxml.NewSchema())
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return voting.New(st, ledger.New(dir)), dir
}

// OpenTestRegistry opens a user registry backed by a temp sqlite file
func OpenTestRegistry(t *testing.T) *users.Registry {
	t.Helper()

	reg, err := users.Open(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("Failed to open test registry: %v", err)
	}
	t.Cleanup(func() { reg.Close() })
	return reg
}

// SamplePoll returns a two-option poll with the given id and zero votes
func SamplePoll(id int) models.Poll {
	return models.Poll{
		ID:       id,
		Question: "Test question?",
		Options: []models.Option{
			{ID: 10, Text: "Option A", Votes: 0},
			{ID: 20, Text: "Option B", Votes: 0},
		},
	}
}

// SeedPoll creates a poll owned by the given identity
func SeedPoll(t *testing.T, svc *voting.Service, poll models.Poll, owner string) {
	t.Helper()

	if err := svc.CreatePoll(poll, owner); err != nil {
		t.Fatalf("Failed to seed poll %d: %v", poll.ID, err)
	}
}

// AuthHeader returns an Authorization header map with a fresh token
func AuthHeader(t *testing.T, cfg cliparse.Config, identity, role string) map[string]string {
	t.Helper()

	token, err := auth.CreateAccessToken(cfg.JWTSecret, identity, role, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create test token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
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
