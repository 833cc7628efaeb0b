package ai

import (
	"context"

	"github.com/poiesic/cvfind/core"
)

// Document is an uploaded CV file.
type Document struct {
	// Name is the original file name.
	Name string

	// MimeType is the declared content type, e.g. "application/pdf".
	MimeType string

	// URI locates the stored file. It becomes the record's file URL.
	URI string

	// Content holds the raw file bytes, if they were read.
	Content []byte
}

// TextExtractor turns an uploaded document into plain text.
// Implementations must be thread-safe for concurrent use.
type TextExtractor interface {
	// ExtractText returns the text content of doc.
	// Returns ErrUnsupportedFormat if the document type cannot be read.
	ExtractText(ctx context.Context, doc Document) (string, error)
}

// CVParser extracts structured CV fields from plain text.
// Implementations must be thread-safe for concurrent use.
type CVParser interface {
	// ParseCV returns whatever fields could be identified in text.
	// Fields that cannot be found are left empty.
	ParseCV(ctx context.Context, text string) (*core.CVDraft, error)
}

// AIProvider aggregates the document understanding services for convenient
// initialization and lifecycle management.
type AIProvider interface {
	// TextExtractor returns the text extraction service.
	TextExtractor() TextExtractor

	// CVParser returns the structured-field parsing service.
	CVParser() CVParser

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
