package sqlstore

import "tinyfox/internal/app/links"

func normalizeOrder(o links.SortOrder) (links.SortOrder, bool) {
	switch o {
	case links.SortAsc, links.SortDesc:
		return o, true
	default:
		return "", false
	}
}

func orderExpr(alias, col string, ord links.SortOrder) string {
	return qualify(alias, col) + " " + string(ord)
}

func orderExprWithTie(alias, col string, ord links.SortOrder) string {
	return orderExpr(alias, col, ord) + ", " + orderExpr(alias, sqlColID, ord)
}

func orderByLinks(sort links.Sort) (string, error) {
	ord, ok := normalizeOrder(sort.Order)
	if !ok {
		return "", links.ErrInvalidSort
	}

	switch sort.Field {
	case links.SortFieldID:
		return orderExpr(sqlAliasLinks, sqlColID, ord), nil
	case links.SortFieldCode:
		return orderExprWithTie(sqlAliasLinks, sqlColCode, ord), nil
	case links.SortFieldDestinationURL:
		return orderExprWithTie(sqlAliasLinks, sqlColDestinationURL, ord), nil
	case links.SortFieldCreatedAt:
		return orderExprWithTie(sqlAliasLinks, sqlColCreatedAt, ord), nil
	case links.SortFieldClickCount:
		return orderExprWithTie(sqlAliasLinks, sqlColClickCount, ord), nil
	default:
		return "", links.ErrInvalidSort
	}
}
