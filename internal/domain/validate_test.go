package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tinyfox/internal/domain"
)

func TestValidateCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"ok/single_char", "a", true},
		{"ok/mixed_case_digits", "aBcD12", true},
		{"ok/dash_underscore", "my-link_2", true},
		{"ok/max_len_16", strings.Repeat("a", 16), true},
		{"ok/reserved_is_case_sensitive", "API", true},

		{"bad/empty", "", false},
		{"bad/spaces_only", "   ", false},
		{"bad/too_long_17", strings.Repeat("a", 17), false},
		{"bad/space_inside", "ab cd", false},
		{"bad/slash", "ab/cd", false},
		{"bad/dot", "ab.cd", false},
		{"bad/unicode", "тест", false},
		{"bad/reserved_api", "api", false},
		{"bad/reserved_stats", "stats", false},
		{"bad/reserved_ping", "ping", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateCode(tc.in)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, domain.ErrInvalidCode)
				require.ErrorIs(t, err, domain.ErrInvalidInput)
			}
		})
	}
}

func TestValidateDestinationURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"ok/https", "https://example.com", true},
		{"ok/http", "http://example.com", true},
		{"ok/with_path_query_fragment", "https://example.com/a/b?x=1#y", true},
		{"ok/port", "http://localhost:8080/x", true},

		{"bad/empty", "", false},
		{"bad/space", " ", false},
		{"bad/not_url", "not-a-url", false},
		{"bad/relative", "/just/a/path", false},
		{"bad/missing_scheme", "example.com", false},
		{"bad/ftp", "ftp://example.com", false},
		{"bad/javascript", "javascript:alert(1)", false},
		{"bad/no_host", "https://", false},
		{"bad/too_long", "https://example.com/" + strings.Repeat("a", domain.MaxDestinationURLLen), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateDestinationURL(tc.in)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, domain.ErrInvalidURL)
			}
		})
	}
}

func TestValidateExpiresInDays(t *testing.T) {
	require.NoError(t, domain.ValidateExpiresInDays(0))
	require.NoError(t, domain.ValidateExpiresInDays(7))
	require.NoError(t, domain.ValidateExpiresInDays(domain.MaxExpiresInDays))

	require.ErrorIs(t, domain.ValidateExpiresInDays(-1), domain.ErrInvalidExpiry)
	require.ErrorIs(t, domain.ValidateExpiresInDays(domain.MaxExpiresInDays+1), domain.ErrInvalidExpiry)
}

func TestValidateNote(t *testing.T) {
	require.NoError(t, domain.ValidateNote(""))
	require.NoError(t, domain.ValidateNote(strings.Repeat("ж", domain.MaxNoteLen)))
	require.ErrorIs(t, domain.ValidateNote(strings.Repeat("a", domain.MaxNoteLen+1)), domain.ErrInvalidNote)
}
