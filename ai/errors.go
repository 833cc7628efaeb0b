package ai

import "errors"

var (
	// ErrUnsupportedFormat is returned when a document type cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyResponse is returned when a model produces no usable output.
	ErrEmptyResponse = errors.New("empty model response")
)
