package models

// PagedResponse is the generic pagination envelope for list endpoints.
type PagedResponse[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"currentPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// NewPagedResponse builds a PagedResponse for one page of items.
// TotalPages is ceil(total/size); size must be positive (validated upstream).
func NewPagedResponse[T any](items []T, page, size int, total int64) PagedResponse[T] {
	totalPages := int((total + int64(size) - 1) / int64(size))

	return PagedResponse[T]{
		Items:       items,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  totalPages,
	}
}
