package api

import (
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/query"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Term  string `json:"term" validate:"required"`
	Scope string `json:"scope,omitempty" validate:"omitempty,oneof=all skills experience education"`
}

// SearchResponse lists ranked matches, best first.
type SearchResponse struct {
	Results []*core.SearchResult `json:"results"`
	Total   int                  `json:"total"`
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Question string `json:"question" validate:"required"`
}

// QueryResponse carries the generated answer with the records behind it.
type QueryResponse struct {
	Response string               `json:"response"`
	Results  []*core.SearchResult `json:"results"`
	Intent   query.Intent         `json:"intent"`
}

// TagRequest is the body of POST /cvs/{id}/tags.
type TagRequest struct {
	Tag string `json:"tag" validate:"required,max=64"`
}

// RecordsResponse lists records in collection order.
type RecordsResponse struct {
	Records []*core.CVRecord `json:"records"`
	Total   int              `json:"total"`
}

// UploadResponse reports the records created from an upload and the
// documents that could not be processed.
type UploadResponse struct {
	Records []*core.CVRecord `json:"records"`
	Errors  []string         `json:"errors,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
