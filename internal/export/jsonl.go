// Package export reads and writes the speech table as JSONL, one record
// per line, for downstream tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cognicore/podium/pkg/podium/table"
)

// record is the wire form of a SpeechRecord. The average is a pointer so
// an undefined value (empty speech) serializes as null rather than a
// number that JSON cannot carry (NaN).
type record struct {
	ID            string         `json:"id"`
	Speaker       string         `json:"speaker"`
	Year          int            `json:"year"`
	Laughter      int            `json:"laughter"`
	Applause      int            `json:"applause"`
	Words         int            `json:"words"`
	Characters    int            `json:"characters"`
	AvgWordLength *float64       `json:"avg_word_length"`
	Keywords      map[string]int `json:"keywords"`
}

// Write emits one JSON line per record.
func Write(w io.Writer, records []table.SpeechRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		out := record{
			ID:         r.ID,
			Speaker:    r.Speaker,
			Year:       r.Year,
			Laughter:   r.Laughter,
			Applause:   r.Applause,
			Words:      r.Words,
			Characters: r.Characters,
			Keywords:   r.Keywords,
		}
		if r.AverageDefined() {
			avg := r.AverageWordLength
			out.AvgWordLength = &avg
		}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode record %s: %w", r.ID, err)
		}
	}
	return nil
}

// Load reads records from a JSONL file.
func Load(path string) ([]table.SpeechRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []table.SpeechRecord
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var in record
		if err := json.Unmarshal([]byte(line), &in); err != nil {
			return nil, fmt.Errorf("malformed JSON at line %d in %s: %w", i+1, path, err)
		}

		rec := table.SpeechRecord{
			ID:                in.ID,
			Speaker:           in.Speaker,
			Year:              in.Year,
			Laughter:          in.Laughter,
			Applause:          in.Applause,
			Words:             in.Words,
			Characters:        in.Characters,
			AverageWordLength: math.NaN(),
			Keywords:          in.Keywords,
		}
		if in.AvgWordLength != nil {
			rec.AverageWordLength = *in.AvgWordLength
		}
		records = append(records, rec)
	}
	return records, nil
}
