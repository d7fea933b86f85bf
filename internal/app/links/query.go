package links

// Range is a zero-based window over an ordered listing.
type Range struct {
	Start int
	Count int
}

type LinksQuery struct {
	Sort  Sort
	Range *Range
}

// CreateInput carries the optional fields as pointers: nil means absent,
// which is distinct from an empty custom code.
type CreateInput struct {
	URL           string
	CustomCode    *string
	ExpiresInDays *int
	Note          *string
}
