// Package podium turns an archive of presidential annual messages into a
// speech statistics table. It wires a document source, an exclusion list,
// and a keyword rule registry into a single batch pipeline: catalog →
// fetch → parse → per-speech analysis → one record per speech in catalog
// order.
package podium

import (
	"context"
	"fmt"

	"github.com/cognicore/podium/pkg/podium/internalerr"
	"github.com/cognicore/podium/pkg/podium/keyword"
	"github.com/cognicore/podium/pkg/podium/source"
	"github.com/cognicore/podium/pkg/podium/table"
)

// Podium is the main pipeline facade
type Podium struct {
	source  source.Source
	builder table.Builder
	exclude map[string]struct{}
}

// Options configures a Podium instance
type Options struct {
	// Source supplies the catalog and the documents.
	Source source.Source

	// Rules is the keyword registry applied to every speech.
	Rules *keyword.Registry

	// Exclude lists catalog identifiers to drop before fetching, for
	// known defective or duplicate upstream entries.
	Exclude []string

	// Workers bounds per-document concurrency. Zero means sequential.
	Workers int
}

// New creates a Podium instance with the given dependencies
func New(opts Options) *Podium {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, id := range opts.Exclude {
		exclude[id] = struct{}{}
	}
	return &Podium{
		source: opts.Source,
		builder: table.Builder{
			Rules:   opts.Rules,
			Workers: opts.Workers,
		},
		exclude: exclude,
	}
}

// BuildTable runs the full pipeline over one catalog. It returns either a
// complete table in catalog order or an error naming the first document
// that failed; there is no partially populated result.
func (p *Podium) BuildTable(ctx context.Context, catalog string) ([]table.SpeechRecord, error) {
	docs, err := p.FetchDocuments(ctx, catalog)
	if err != nil {
		return nil, err
	}
	return p.builder.Build(ctx, docs)
}

// FetchDocuments lists the catalog, drops excluded identifiers, and
// fetches and parses every remaining document in catalog order.
func (p *Podium) FetchDocuments(ctx context.Context, catalog string) ([]source.Document, error) {
	ids, err := p.source.ListDocumentIDs(ctx, catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: list catalog %s: %v", internalerr.ErrSourceUnavailable, catalog, err)
	}

	docs := make([]source.Document, 0, len(ids))
	for _, id := range ids {
		if _, skip := p.exclude[id]; skip {
			continue
		}
		raw, err := p.source.Fetch(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch document %s: %w", id, err)
		}
		doc, err := source.BuildDocument(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
