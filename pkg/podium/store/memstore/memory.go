// Package memstore is an in-memory implementation of store.Store for
// tests.
package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/podium/pkg/podium/store"
)

// Store keeps raw documents in a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	ids  []string
	docs map[string]store.Document
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{docs: make(map[string]store.Document)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDocument inserts or replaces a document, keeping the original
// insertion position on replace.
func (s *Store) UpsertDocument(ctx context.Context, d store.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[d.ID]; !ok {
		s.ids = append(s.ids, d.ID)
	}
	s.docs[d.ID] = copyDoc(d)
	return nil
}

// GetDocument returns a document by ID.
func (s *Store) GetDocument(ctx context.Context, id string) (store.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.docs[id]; ok {
		return copyDoc(doc), true, nil
	}
	return store.Document{}, false, nil
}

// ListIDs returns stored IDs in insertion order.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out, nil
}

func copyDoc(d store.Document) store.Document {
	out := d
	out.Paragraphs = make([]string, len(d.Paragraphs))
	copy(out.Paragraphs, d.Paragraphs)
	return out
}
