// Package store persists raw fetched documents so the archive only has to
// be scraped once per corpus. It sits with the source collaborator, not
// the analysis core: records flow out of it exactly as they were fetched.
package store

import "context"

// Store is the interface for persisting and reading raw documents.
type Store interface {
	Close() error

	// UpsertDocument inserts or replaces a raw document, keyed by ID.
	UpsertDocument(ctx context.Context, d Document) error

	// GetDocument returns a raw document by ID. The bool reports whether
	// the document exists.
	GetDocument(ctx context.Context, id string) (Document, bool, error)

	// ListIDs returns all stored document IDs in insertion order.
	ListIDs(ctx context.Context) ([]string, error)
}

// Document is a stored raw document: byline text, date line, and body
// paragraphs in delivery order.
type Document struct {
	ID         string
	Title      string
	Date       string
	Paragraphs []string
}
