// Package ingestion provides pipeline orchestration for uploaded CV documents.
// The Pipeline type manages the upload workflow, including:
//   - Extracting text from the document
//   - Parsing structured fields from the text
//   - Assembling a complete record with upload defaults
//   - Adding records to storage
//
// Batches are processed concurrently using a worker pool. A failed document
// does not prevent the rest of its batch from being stored.
package ingestion
