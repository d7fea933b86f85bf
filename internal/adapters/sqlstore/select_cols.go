package sqlstore

import "strings"

func qualify(alias, col string) string {
	return alias + "." + col
}

// linkCols order matches scanLink.
var linkCols = []string{
	sqlColID,
	sqlColCode,
	sqlColDestinationURL,
	sqlColCreatedAt,
	sqlColExpiresAt,
	sqlColNote,
	sqlColClickCount,
	sqlColLastAccessedAt,
}

var sqlLinksSelectCols = qualifyAll(sqlAliasLinks, linkCols)

var sqlReturningLinkCols = "RETURNING " + strings.Join(linkCols, ", ")

func qualifyAll(alias string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, qualify(alias, col))
	}

	return out
}
