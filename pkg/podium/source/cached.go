package source

import (
	"context"

	"github.com/cognicore/podium/pkg/podium/store"
)

// CachedSource is a read-through cache: fetches hit the store first and
// fall back to the underlying source, persisting what they find. Catalog
// listing always goes to the underlying source, since the catalog is the
// authority on ordering.
type CachedSource struct {
	src   Source
	cache store.Store
}

// NewCachedSource wraps src with the given store.
func NewCachedSource(src Source, cache store.Store) *CachedSource {
	return &CachedSource{src: src, cache: cache}
}

// ListDocumentIDs implements Source.
func (c *CachedSource) ListDocumentIDs(ctx context.Context, catalog string) ([]string, error) {
	return c.src.ListDocumentIDs(ctx, catalog)
}

// Fetch implements Source.
func (c *CachedSource) Fetch(ctx context.Context, id string) (RawDocument, error) {
	stored, ok, err := c.cache.GetDocument(ctx, id)
	if err != nil {
		return RawDocument{}, err
	}
	if ok {
		return RawDocument{
			ID:         stored.ID,
			Title:      stored.Title,
			Date:       stored.Date,
			Paragraphs: stored.Paragraphs,
		}, nil
	}

	raw, err := c.src.Fetch(ctx, id)
	if err != nil {
		return RawDocument{}, err
	}

	err = c.cache.UpsertDocument(ctx, store.Document{
		ID:         raw.ID,
		Title:      raw.Title,
		Date:       raw.Date,
		Paragraphs: raw.Paragraphs,
	})
	if err != nil {
		return RawDocument{}, err
	}
	return raw, nil
}
