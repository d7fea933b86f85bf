package domain

import "time"

type Link struct {
	ID             int64
	Code           string
	DestinationURL string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	Note           *string
	ClickCount     int64
	LastAccessedAt *time.Time
}

// NewLink is the insert payload for a link; counters start at zero.
type NewLink struct {
	Code           string
	DestinationURL string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	Note           *string
}

// ExpiredAt reports whether the link refuses resolution at now.
// A link is expired once now reaches expires_at.
func (l Link) ExpiredAt(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
