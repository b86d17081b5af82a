package response

import "sales-analytics-srv/pkg/paginator"

// Envelope is the uniform response body: data, optional meta, and links.
type Envelope struct {
	Data  any   `json:"data"`
	Meta  *Meta `json:"meta,omitempty"`
	Links Links `json:"links,omitempty"`
}

// Meta carries pagination metadata and the resolved filter values applied to
// the query. Filters echo resolved values, not raw request input, so that
// resubmitting them reproduces the same result set.
type Meta struct {
	Pagination *paginator.PaginatorResponse `json:"pagination,omitempty"`
	Filters    map[string]any               `json:"filters,omitempty"`
}

// Links maps relation names (self, first, last, next, prev, ...) to URLs.
type Links map[string]string

// ErrResp is the error response body.
type ErrResp struct {
	Error string `json:"error"`
}
