package query

import "errors"

var (
	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrEmptyQuery is returned when a question is empty or whitespace only.
	ErrEmptyQuery = errors.New("empty question")
)
