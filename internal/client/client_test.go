package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/leetup/internal/catalog"
)

const catalogFixture = `{
	"user_name": "tester",
	"num_solved": 1,
	"num_total": 3,
	"stat_status_pairs": [
		{
			"stat": {
				"question_id": 2,
				"question__title": "Add Two Numbers",
				"question__title_slug": "add-two-numbers"
			},
			"status": null,
			"difficulty": {"level": 2},
			"paid_only": false,
			"is_favor": true
		},
		{
			"stat": {
				"question_id": 1,
				"question__title": "Two Sum",
				"question__title_slug": "two-sum"
			},
			"status": "ac",
			"difficulty": {"level": 1},
			"paid_only": false,
			"is_favor": false
		},
		{
			"stat": {
				"question_id": 3,
				"question__title": "Longest Substring",
				"question__title_slug": ""
			},
			"status": null,
			"difficulty": {"level": 9},
			"paid_only": true,
			"is_favor": false
		}
	]
}`

// newTestClient wires a Client at a test server that replies with the
// given status and body, capturing request headers.
func newTestClient(t *testing.T, status int, body string, gotHeaders *http.Header) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotHeaders != nil {
			*gotHeaders = r.Header.Clone()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return New(Options{
		ProblemsURL:       srv.URL + "/api/problems/all",
		SessionCookie:     "LEETCODE_SESSION=abc",
		HTTPClient:        srv.Client(),
		RequestsPerSecond: 1000, // no throttling in tests
	})
}

// TestFetchProblems_MapsEnvelope tests decoding and mapping of the
// upstream envelope, response order preserved.
func TestFetchProblems_MapsEnvelope(t *testing.T) {
	var headers http.Header
	c := newTestClient(t, http.StatusOK, catalogFixture, &headers)

	problems, err := c.FetchProblems(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 3)

	// Response order preserved, never re-sorted here.
	assert.Equal(t, []int{2, 1, 3}, []int{problems[0].ID, problems[1].ID, problems[2].ID})

	assert.Equal(t, catalog.Problem{
		ID:        1,
		Title:     "Two Sum",
		TitleSlug: "two-sum",
		Level:     catalog.LevelEasy,
		Done:      true,
	}, problems[1])

	// Starred and locked flags come through.
	assert.True(t, problems[0].Starred)
	assert.True(t, problems[2].Locked)

	// Missing slug is derived from the title; the bogus level is kept
	// as-is for the renderer to flag.
	assert.Equal(t, "longest-substring", problems[2].TitleSlug)
	assert.Equal(t, 9, problems[2].Level)

	// Request carried session cookie and a correlation id.
	assert.Equal(t, "LEETCODE_SESSION=abc", headers.Get("Cookie"))
	assert.NotEmpty(t, headers.Get("X-Request-Id"))
}

// TestFetchProblems_HTTPError tests that non-200 responses surface as
// errors.
func TestFetchProblems_HTTPError(t *testing.T) {
	c := newTestClient(t, http.StatusForbidden, `{"error":"nope"}`, nil)

	_, err := c.FetchProblems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

// TestFetchProblems_BadJSON tests that a malformed body surfaces as a
// decode error.
func TestFetchProblems_BadJSON(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"stat_status_pairs": [`, nil)

	_, err := c.FetchProblems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog response")
}

// TestFetchProblems_ContextCancelled tests that a cancelled context
// aborts at the rate limiter before any request is made.
func TestFetchProblems_ContextCancelled(t *testing.T) {
	c := newTestClient(t, http.StatusOK, catalogFixture, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchProblems(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
