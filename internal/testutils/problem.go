package testutils

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type Problem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func DecodeProblem(t testing.TB, resp *http.Response) Problem {
	t.Helper()

	require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var p Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))

	return p
}

// RequireProblem asserts a problem+json response with the given status,
// type and detail. An empty wantDetail skips the detail check.
func RequireProblem(t testing.TB, resp *http.Response, wantStatus int, wantType, wantDetail string) Problem {
	t.Helper()

	require.Equal(t, wantStatus, resp.StatusCode)

	p := DecodeProblem(t, resp)
	require.Equal(t, wantStatus, p.Status)
	require.Equal(t, wantType, p.Type)
	require.NotEmpty(t, p.Title)

	if wantDetail != "" {
		require.Equal(t, wantDetail, p.Detail)
	}

	return p
}

func DecodeJSON[T any](t testing.TB, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}
