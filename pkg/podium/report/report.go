// Package report derives subset views from the speech table and renders
// report artifacts: CSV, JSONL-friendly records, and chart pages. It owns
// nothing the core computes; every view is a pure function of the records
// and the injected party reference list.
package report

import (
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/podium/pkg/podium/table"
)

// Report is one generated artifact: the full record set plus a ULID and
// timestamp identifying the run that produced it.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Records     []table.SpeechRecord
	Labels      []string
}

// Builder stamps reports with monotonic ULIDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Build wraps records into a stamped report. Labels fixes the keyword
// column order; pass the registry's Labels().
func (b *Builder) Build(records []table.SpeechRecord, labels []string) Report {
	return Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Records:     records,
		Labels:      labels,
	}
}

// After returns the records with Year strictly greater than year, in the
// original order.
func After(records []table.SpeechRecord, year int) []table.SpeechRecord {
	var out []table.SpeechRecord
	for _, r := range records {
		if r.Year > year {
			out = append(out, r)
		}
	}
	return out
}

// PartyStats aggregates records for one party.
type PartyStats struct {
	Party    string
	Speeches int
	Words    int
	Laughter int
	Applause int
	Keywords map[string]int
}

// ByParty groups records by the speaker's party using the injected
// president-to-party list. Speakers absent from the list are skipped.
// Output is sorted by party name for stable rendering.
func ByParty(records []table.SpeechRecord, parties map[string]string) []PartyStats {
	byName := make(map[string]*PartyStats)
	for _, r := range records {
		party, ok := parties[r.Speaker]
		if !ok {
			continue
		}
		stats, ok := byName[party]
		if !ok {
			stats = &PartyStats{Party: party, Keywords: make(map[string]int)}
			byName[party] = stats
		}
		stats.Speeches++
		stats.Words += r.Words
		stats.Laughter += r.Laughter
		stats.Applause += r.Applause
		for label, n := range r.Keywords {
			stats.Keywords[label] += n
		}
	}

	out := make([]PartyStats, 0, len(byName))
	for _, stats := range byName {
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Party < out[j].Party })
	return out
}

// WriteCSV emits the table with the documented column set: metadata and
// lexical statistics first, then one column per keyword label in registry
// order. An undefined average word length is written as NA, never zero.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"speaker", "year", "laughter", "applause", "words", "characters", "avg_word_length"}
	header = append(header, r.Labels...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range r.Records {
		avg := "NA"
		if rec.AverageDefined() {
			avg = strconv.FormatFloat(rec.AverageWordLength, 'f', 4, 64)
		}
		row := []string{
			rec.Speaker,
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.Laughter),
			strconv.Itoa(rec.Applause),
			strconv.Itoa(rec.Words),
			strconv.Itoa(rec.Characters),
			avg,
		}
		for _, label := range r.Labels {
			row = append(row, strconv.Itoa(rec.Keywords[label]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
