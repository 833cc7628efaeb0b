// Package importer bulk-loads CV records from YAML or JSON files into a
// record repository.
//
// Records are written in batches. A batch that fails is retried with
// exponential backoff; a batch rejected because of a duplicate ID is
// replayed one record at a time so the duplicates can be skipped. Progress
// is written to an optional io.Writer.
package importer
