package problems

const (
	ContentTypeProblemJSON    = "application/problem+json"
	StatusClientClosedRequest = 499

	ProblemTypeValidation          = "validation_error"
	ProblemTypeInvalidJSON         = "invalid_json"
	ProblemTypeNotFound            = "about:blank"
	ProblemTypeGone                = "gone"
	ProblemTypeConflict            = "conflict"
	ProblemTypeAllocationExhausted = "allocation_exhausted"
	ProblemTypeTimeout             = "timeout"
	ProblemTypeInternal            = "internal_error"
	ProblemTypeCanceled            = "client_cancelled"

	TitleBadRequest         = "Bad Request"
	TitleValidation         = "Validation error"
	TitleConflict           = "Conflict"
	TitleNotFound           = "Not Found"
	TitleGone               = "Gone"
	TitleServiceUnavailable = "Service Unavailable"
	TitleGatewayTimeout     = "Gateway Timeout"
	TitleRequestCanceled    = "Request Canceled"
	TitleInternalError      = "Internal Server Error"

	DetailInvalidURL          = "invalid url"
	DetailInvalidCode         = "invalid custom_code"
	DetailInvalidExpiry       = "invalid expires_in_days"
	DetailInvalidNote         = "invalid note"
	DetailInvalidInput        = "invalid input"
	DetailInvalidJSON         = "invalid json"
	DetailInvalidRange        = "invalid range"
	DetailInvalidSort         = "invalid sort"
	DetailCodeConflict        = "code already exists"
	DetailAllocationExhausted = "could not allocate a code, retry later"
	DetailNotFound            = "not found"
	DetailExpired             = "link expired"
	DetailTimeout             = "timeout"
	DetailRequestCanceled     = "request canceled"
	DetailInternalError       = "internal error"
)
