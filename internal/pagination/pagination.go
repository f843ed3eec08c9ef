// Package pagination computes page windows and page counts for list queries.
//
// Page numbers are 1-indexed. Paginate does not sanitize its input: callers
// are responsible for rejecting non-positive page numbers before a window
// reaches the store.
package pagination

// DefaultLimit is the page size used by every list endpoint.
const DefaultLimit = 10

// Window is the LIMIT/OFFSET pair for one page.
type Window struct {
	Offset int
	Limit  int
}

// Paginate returns the window for the given 1-indexed page number.
func Paginate(pageNum, limit int) Window {
	return Window{
		Offset: (pageNum - 1) * limit,
		Limit:  limit,
	}
}

// LastPage returns ceil(totalCount/limit). Zero means there are no pages.
func LastPage(totalCount, limit int) int {
	if totalCount <= 0 || limit <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// Page is one window of results together with the paging metadata.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	LastPage int  `json:"lastPage"`
	HasNext  bool `json:"hasNext"`
}

// NewPage assembles a Page. Items is never nil so it encodes as [] in JSON.
func NewPage[T any](items []T, total, pageNum, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	last := LastPage(total, limit)
	return Page[T]{
		Items:    items,
		Total:    total,
		Page:     pageNum,
		LastPage: last,
		HasNext:  pageNum < last,
	}
}
