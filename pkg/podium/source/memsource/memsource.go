// Package memsource provides an in-memory source.Source for tests and
// examples.
package memsource

import (
	"context"
	"fmt"
	"sync"

	"github.com/cognicore/podium/pkg/podium/internalerr"
	"github.com/cognicore/podium/pkg/podium/source"
)

// Source holds documents in memory. The catalog order is the order
// documents were added.
type Source struct {
	mu   sync.RWMutex
	ids  []string
	docs map[string]source.RawDocument
}

// New creates an empty in-memory source.
func New() *Source {
	return &Source{docs: make(map[string]source.RawDocument)}
}

// Add registers a document. Re-adding an ID replaces the document but
// keeps its original catalog position.
func (s *Source) Add(doc source.RawDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.ID]; !ok {
		s.ids = append(s.ids, doc.ID)
	}
	s.docs[doc.ID] = copyDoc(doc)
}

// ListDocumentIDs implements source.Source. The catalog argument is
// ignored; an in-memory source has exactly one catalog.
func (s *Source) ListDocumentIDs(ctx context.Context, catalog string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out, nil
}

// Fetch implements source.Source.
func (s *Source) Fetch(ctx context.Context, id string) (source.RawDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return source.RawDocument{}, fmt.Errorf("%w: document %s", internalerr.ErrNotFound, id)
	}
	return copyDoc(doc), nil
}

func copyDoc(d source.RawDocument) source.RawDocument {
	out := d
	out.Paragraphs = make([]string, len(d.Paragraphs))
	copy(out.Paragraphs, d.Paragraphs)
	return out
}
