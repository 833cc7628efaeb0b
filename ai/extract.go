package ai

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// SupportedMimeTypes lists the document types accepted for upload.
var SupportedMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

// IsSupported reports whether mimeType is accepted for upload.
func IsSupported(mimeType string) bool {
	return slices.Contains(SupportedMimeTypes, strings.ToLower(mimeType))
}

// PlainTextExtractor reads text documents verbatim. Binary formats are
// rejected with ErrUnsupportedFormat.
type PlainTextExtractor struct{}

var _ TextExtractor = PlainTextExtractor{}

func (PlainTextExtractor) ExtractText(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !isPlainText(doc) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.MimeType)
	}
	if !utf8.Valid(doc.Content) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrUnsupportedFormat, doc.Name)
	}
	return string(doc.Content), nil
}

func isPlainText(doc Document) bool {
	if doc.MimeType == "" {
		ext := strings.ToLower(filepath.Ext(doc.Name))
		return ext == ".txt" || ext == ".md"
	}
	return strings.HasPrefix(strings.ToLower(doc.MimeType), "text/")
}
