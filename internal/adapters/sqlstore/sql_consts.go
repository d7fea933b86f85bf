package sqlstore

const (
	sqlTableLinks = "links"
	sqlAliasLinks = "l"

	sqlColID             = "id"
	sqlColCode           = "code"
	sqlColDestinationURL = "destination_url"
	sqlColCreatedAt      = "created_at"
	sqlColExpiresAt      = "expires_at"
	sqlColNote           = "note"
	sqlColClickCount     = "click_count"
	sqlColLastAccessedAt = "last_accessed_at"

	errOpFmt = "sqlstore: %s: %w"
)
