// Package source defines the document source contract: something that can
// enumerate a catalog of speech identifiers and fetch the raw structural
// pieces of one speech. The HTML archive client in the presidency
// subpackage is the production implementation; memsource backs tests.
package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/podium/pkg/podium/internalerr"
)

// Source provides access to a document archive.
type Source interface {
	// ListDocumentIDs returns one identifier per discoverable document
	// in the given catalog, in catalog order.
	ListDocumentIDs(ctx context.Context, catalog string) ([]string, error)

	// Fetch returns the raw structural representation of one document.
	Fetch(ctx context.Context, id string) (RawDocument, error)
}

// RawDocument is the unparsed material for one speech: the byline text,
// the date line, and the body paragraphs in delivery order.
type RawDocument struct {
	ID         string
	Title      string
	Date       string
	Paragraphs []string
}

// Document is a parsed speech, immutable once built.
type Document struct {
	ID         string
	Speaker    string
	Year       int
	Paragraphs []string
}

// BuildDocument parses a raw document's metadata. The year is the text
// after the last comma of the date line; anything unparseable fails loudly
// with the offending identifier rather than defaulting.
func BuildDocument(raw RawDocument) (Document, error) {
	year, err := YearFromDate(raw.Date)
	if err != nil {
		return Document{}, fmt.Errorf("document %s: %w", raw.ID, err)
	}
	return Document{
		ID:         raw.ID,
		Speaker:    strings.TrimSpace(raw.Title),
		Year:       year,
		Paragraphs: raw.Paragraphs,
	}, nil
}

// YearFromDate extracts the trailing year from a date line such as
// "January 20, 2021". The fragment after the final comma must parse as an
// integer.
func YearFromDate(date string) (int, error) {
	idx := strings.LastIndex(date, ",")
	if idx < 0 || idx == len(date)-1 {
		return 0, fmt.Errorf("%w: %q has no trailing year", internalerr.ErrMalformedDate, date)
	}
	fragment := strings.TrimSpace(date[idx+1:])
	year, err := strconv.Atoi(fragment)
	if err != nil {
		return 0, fmt.Errorf("%w: %q after last comma of %q", internalerr.ErrMalformedDate, fragment, date)
	}
	return year, nil
}
