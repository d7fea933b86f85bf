package domain

import (
	"net/url"
	"regexp"
	"unicode/utf8"
)

const (
	MaxCodeLen           = 16
	MaxDestinationURLLen = 2048
	MaxNoteLen           = 200
	MaxExpiresInDays     = 3650
)

var codeRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,16}$`)

// reservedCodes shadow top-level routes and can never be allocated.
var reservedCodes = map[string]struct{}{
	"api":     {},
	"ping":    {},
	"stats":   {},
	"shorten": {},
	"healthz": {},
}

func ValidateDestinationURL(s string) error {
	if s == "" || len(s) > MaxDestinationURLLen {
		return ErrInvalidURL
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return ErrInvalidURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}

	if u.Hostname() == "" {
		return ErrInvalidURL
	}

	return nil
}

// ValidateCode checks charset, length and reserved words. Codes are
// case-sensitive and are never normalized.
func ValidateCode(s string) error {
	if !codeRe.MatchString(s) {
		return ErrInvalidCode
	}

	if IsReservedCode(s) {
		return ErrInvalidCode
	}

	return nil
}

func IsReservedCode(s string) bool {
	_, ok := reservedCodes[s]

	return ok
}

func ValidateExpiresInDays(days int) error {
	if days < 0 || days > MaxExpiresInDays {
		return ErrInvalidExpiry
	}

	return nil
}

func ValidateNote(s string) error {
	if utf8.RuneCountInString(s) > MaxNoteLen {
		return ErrInvalidNote
	}

	return nil
}
