package listpager

// RawPageRequest is intended for API payloads and query strings. Inline it
// into endpoint-specific requests:
//
//	type ListSubscribersRequest struct {
//	    listpager.RawPageRequest
//	    ListID int64 `form:"list_id"`
//	}
type RawPageRequest struct {
	// Limit - maximum number of records to return in the response.
	Limit int `form:"limit" json:"limit"`
	// AfterID - identifier of the last record of the previous page.
	// If zero, the first page with Limit records is returned.
	AfterID int64 `form:"after_id" json:"after_id"`
}

// Decode converts RawPageRequest into PageRequest, normalizing Limit against
// maxLimit. A negative AfterID is rejected with ErrInvalidArgument.
func (r RawPageRequest) Decode(maxLimit int) (PageRequest, error) {
	if r.AfterID < 0 {
		return PageRequest{}, invalidArgumentf("after_id must not be negative, got %d", r.AfterID)
	}

	return PageRequest{
		LastID: r.AfterID,
		Limit:  NormalizeLimitMax(r.Limit, maxLimit),
	}, nil
}

// PageRequest addresses one page: the rows following LastID, at most Limit of them.
type PageRequest struct {
	LastID int64
	Limit  int

	lookahead bool
}

// WithLookahead makes the request fetch one extra row to find out whether the
// current page is the last one.
func (r PageRequest) WithLookahead() PageRequest {
	r.lookahead = true

	return r
}

// IsLookahead returns true if lookahead pagination is enabled.
func (r PageRequest) IsLookahead() bool {
	return r.lookahead
}

// Cursor returns the request position as an IDCursor.
func (r PageRequest) Cursor() *IDCursor {
	return NewIDCursor(r.LastID)
}

// GetDatasetLimit returns the limit adjusted for lookahead:
//   - if Lookahead = true → Limit + 1
//   - if Lookahead = false → Limit
func (r PageRequest) GetDatasetLimit() int {
	if r.lookahead {
		return r.Limit + 1
	}

	return r.Limit
}

func (r PageRequest) validate(maxLimit int) error {
	if err := validateLimit(r.Limit, maxLimit); err != nil {
		return err
	}

	return r.Cursor().validate()
}

// PaginationResult is a generic paginated result container.
type PaginationResult[T any] struct {
	// Items result elements.
	Items []T
	// Total number of elements matching the filter, regardless of the cursor.
	Total int64
	// AppliedLimit effective limit used for the query.
	AppliedLimit int
	// HasMore is true when rows follow the last item.
	HasMore bool
	// NextPageToken cursor for the next page, nil on the last page.
	NextPageToken *IDCursor
}

// IsLastPage returns true if the result set is the last page in the dataset.
//
// The last page is determined by one of two conditions:
//  1. The number of returned records is less than Limit.
//  2. Lookahead = true and the number of returned records is less than or equal to Limit.
func IsLastPage[T any](req PageRequest, resultSet []T) bool {
	return len(resultSet) < req.Limit ||
		(req.lookahead && len(resultSet) <= req.Limit)
}

// TrimResultSet trims the result set to what should be returned to the client.
// With lookahead the extra row is dropped, so [a, b, c] with Limit 2 becomes [a, b].
func TrimResultSet[T any](req PageRequest, resultSet []T) []T {
	if req.lookahead && len(resultSet) > req.Limit {
		resultSet = resultSet[:req.Limit]
	}

	return resultSet
}

// NextPageCursor trims the result set and returns the cursor for the next
// page, or nil when resultSet is the last page. idOf extracts the identifier
// of an element.
func NextPageCursor[T any](req PageRequest, resultSet []T, idOf func(T) int64) ([]T, *IDCursor) {
	if IsLastPage(req, resultSet) {
		return resultSet, nil
	}

	resultSet = TrimResultSet(req, resultSet)
	if len(resultSet) == 0 {
		return resultSet, nil
	}

	return resultSet, NewIDCursor(idOf(resultSet[len(resultSet)-1]))
}
