package links

import "errors"

var ErrInvalidSort = errors.New("invalid sort")

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

type SortField string

const (
	SortFieldID             SortField = "id"
	SortFieldCode           SortField = "code"
	SortFieldDestinationURL SortField = "destination_url"
	SortFieldCreatedAt      SortField = "created_at"
	SortFieldClickCount     SortField = "click_count"
)

type Sort struct {
	Field SortField
	Order SortOrder
}

var DefaultLinksSort = Sort{Field: SortFieldID, Order: SortAsc}
var RecentLinksSort = Sort{Field: SortFieldCreatedAt, Order: SortDesc}
