package api

import (
	"github.com/Alp4ka/listpager"
)

// Pagination describes the position of a page within its dataset. Clients
// request the next page with after_id=next_cursor.
type Pagination struct {
	Total      int64  `json:"total"`
	Limit      int    `json:"limit"`
	HasMore    bool   `json:"has_more"`
	NextCursor *int64 `json:"next_cursor,omitempty"`
}

type PageResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func newPageResponse[T any](res *listpager.PaginationResult[T]) PageResponse[T] {
	ret := PageResponse[T]{
		Items: res.Items,
		Pagination: Pagination{
			Total:   res.Total,
			Limit:   res.AppliedLimit,
			HasMore: res.HasMore,
		},
	}

	if ret.Items == nil {
		ret.Items = []T{}
	}

	if res.NextPageToken != nil {
		next := res.NextPageToken.GetLastID()
		ret.Pagination.NextCursor = &next
	}

	return ret
}
