// Package table assembles one typed record per speech: reaction counts,
// lexical statistics, and keyword tallies joined with the speech metadata.
package table

import (
	"context"
	"math"

	"github.com/cognicore/podium/internal/workers"
	"github.com/cognicore/podium/pkg/podium/keyword"
	"github.com/cognicore/podium/pkg/podium/source"
	"github.com/cognicore/podium/pkg/podium/transcript"
)

// SpeechRecord is one aggregated row. Keywords holds one count per
// configured rule label; AverageWordLength is NaN when the speech has no
// words.
type SpeechRecord struct {
	ID                string
	Speaker           string
	Year              int
	Laughter          int
	Applause          int
	Words             int
	Characters        int
	AverageWordLength float64
	Keywords          map[string]int
}

// AverageDefined reports whether AverageWordLength carries a value. It is
// false exactly when the speech has zero words.
func (r SpeechRecord) AverageDefined() bool {
	return !math.IsNaN(r.AverageWordLength)
}

// Builder turns parsed documents into speech records.
type Builder struct {
	// Rules is the keyword registry applied to every document.
	Rules *keyword.Registry

	// Workers bounds the per-document fan-out. Zero or one means
	// sequential.
	Workers int
}

// Build processes every document and returns records in the same order as
// the input. Per-document work is independent; it runs on a worker pool
// and is reassembled positionally, so output order never depends on
// scheduling.
func (b *Builder) Build(ctx context.Context, docs []source.Document) ([]SpeechRecord, error) {
	return workers.Map(ctx, b.Workers, docs, func(ctx context.Context, doc source.Document) (SpeechRecord, error) {
		return b.buildOne(doc), nil
	})
}

// buildOne computes one record. Pure: reads only the given document.
func (b *Builder) buildOne(doc source.Document) SpeechRecord {
	anns := transcript.ExtractAnnotations(doc.ID, doc.Paragraphs)
	clean := transcript.Clean(doc.Paragraphs)
	words := transcript.Words(clean)
	sentences := transcript.Sentences(clean)
	chars := transcript.Characters(clean)

	avg := math.NaN()
	if len(words) > 0 {
		avg = float64(chars) / float64(len(words))
	}

	rec := SpeechRecord{
		ID:                doc.ID,
		Speaker:           doc.Speaker,
		Year:              doc.Year,
		Laughter:          transcript.CountOccurrences(anns, "Laughter"),
		Applause:          transcript.CountOccurrences(anns, "Applause"),
		Words:             len(words),
		Characters:        chars,
		AverageWordLength: avg,
	}
	if b.Rules != nil {
		rec.Keywords = b.Rules.Tally(words, sentences)
	}
	return rec
}
