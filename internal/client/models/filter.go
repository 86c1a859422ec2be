package models

import (
	"net/url"
	"strconv"
)

// ListFilter holds the optional query parameters accepted by list endpoints.
// Zero values are omitted from the encoded query.
type ListFilter struct {
	Page       int
	Limit      int
	From       string // YYYY-MM-DD, inclusive
	To         string // YYYY-MM-DD, inclusive
	CategoryID string
	Search     string
}

// Query encodes the filter as URL query parameters.
func (f ListFilter) Query() url.Values {
	v := url.Values{}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.From != "" {
		v.Set("from", f.From)
	}
	if f.To != "" {
		v.Set("to", f.To)
	}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

// StatsRange restricts stats aggregation to a date window.
type StatsRange struct {
	From string
	To   string
}

// Query encodes the range as URL query parameters.
func (r StatsRange) Query() url.Values {
	v := url.Values{}
	if r.From != "" {
		v.Set("from", r.From)
	}
	if r.To != "" {
		v.Set("to", r.To)
	}
	return v
}

// Paged is the uniform list payload: one page of items plus totals.
type Paged[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}
