package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cognicore/podium/pkg/podium/table"
)

func sampleRecords() []table.SpeechRecord {
	return []table.SpeechRecord{
		{
			Speaker: "Barack Obama", Year: 2011,
			Laughter: 2, Applause: 80, Words: 7000, Characters: 35000,
			AverageWordLength: 5.0,
			Keywords:          map[string]int{"war": 3, "jobs": 25},
		},
		{
			Speaker: "George W. Bush", Year: 2002,
			Laughter: 1, Applause: 77, Words: 3800, Characters: 19000,
			AverageWordLength: 5.0,
			Keywords:          map[string]int{"war": 12, "jobs": 4},
		},
		{
			Speaker: "Barack Obama", Year: 2013,
			Laughter: 0, Applause: 62, Words: 6400, Characters: 32000,
			AverageWordLength: 5.0,
			Keywords:          map[string]int{"war": 2, "jobs": 31},
		},
	}
}

var testParties = map[string]string{
	"Barack Obama":   "Democratic",
	"George W. Bush": "Republican",
}

func TestAfter(t *testing.T) {
	got := After(sampleRecords(), 2002)

	if len(got) != 2 {
		t.Fatalf("Expected 2 records after 2002, got %d", len(got))
	}
	for _, r := range got {
		if r.Year <= 2002 {
			t.Errorf("Record from %d should have been filtered", r.Year)
		}
	}
	// Original order preserved.
	if got[0].Year != 2011 || got[1].Year != 2013 {
		t.Errorf("Order changed: %d, %d", got[0].Year, got[1].Year)
	}
}

func TestByParty(t *testing.T) {
	stats := ByParty(sampleRecords(), testParties)

	if len(stats) != 2 {
		t.Fatalf("Expected 2 parties, got %d", len(stats))
	}
	// Sorted by party name.
	if stats[0].Party != "Democratic" || stats[1].Party != "Republican" {
		t.Fatalf("Parties = %q, %q", stats[0].Party, stats[1].Party)
	}

	dem := stats[0]
	if dem.Speeches != 2 {
		t.Errorf("Democratic speeches = %d, want 2", dem.Speeches)
	}
	if dem.Words != 13400 {
		t.Errorf("Democratic words = %d, want 13400", dem.Words)
	}
	if dem.Keywords["jobs"] != 56 {
		t.Errorf("Democratic jobs = %d, want 56", dem.Keywords["jobs"])
	}

	rep := stats[1]
	if rep.Keywords["war"] != 12 {
		t.Errorf("Republican war = %d, want 12", rep.Keywords["war"])
	}
}

func TestByPartySkipsUnknownSpeakers(t *testing.T) {
	records := []table.SpeechRecord{{Speaker: "Unknown Person", Year: 1999, Words: 10}}

	stats := ByParty(records, testParties)
	if len(stats) != 0 {
		t.Errorf("Expected no stats for unlisted speakers, got %v", stats)
	}
}

func TestBuildStampsReport(t *testing.T) {
	b := NewBuilder()

	first := b.Build(sampleRecords(), []string{"war", "jobs"})
	second := b.Build(sampleRecords(), []string{"war", "jobs"})

	if first.ID == "" {
		t.Error("Report ID should be set")
	}
	if first.ID == second.ID {
		t.Error("Report IDs should be unique")
	}
	if first.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}

func TestWriteCSV(t *testing.T) {
	rep := NewBuilder().Build(sampleRecords(), []string{"war", "jobs"})

	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d lines", len(lines))
	}

	header := "speaker,year,laughter,applause,words,characters,avg_word_length,war,jobs"
	if lines[0] != header {
		t.Errorf("Header = %q, want %q", lines[0], header)
	}
	if !strings.HasPrefix(lines[1], "Barack Obama,2011,2,80,7000,35000,5.0000,3,25") {
		t.Errorf("Row 1 = %q", lines[1])
	}
}

func TestWriteCSVUndefinedAverage(t *testing.T) {
	records := []table.SpeechRecord{{
		Speaker: "Silent Speaker", Year: 1900,
		AverageWordLength: math.NaN(),
	}}
	rep := NewBuilder().Build(records, nil)

	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), ",NA") {
		t.Errorf("Undefined average should serialize as NA: %q", buf.String())
	}
	if strings.Contains(buf.String(), "NaN") {
		t.Errorf("NaN must not leak into CSV: %q", buf.String())
	}
}

func TestRenderCharts(t *testing.T) {
	rep := NewBuilder().Build(sampleRecords(), []string{"war", "jobs"})

	var buf bytes.Buffer
	if err := rep.RenderCharts(&buf, testParties); err != nil {
		t.Fatal(err)
	}

	html := buf.String()
	for _, want := range []string{"Words per annual message", "Audience reactions", "Keyword totals by party"} {
		if !strings.Contains(html, want) {
			t.Errorf("Chart page missing %q", want)
		}
	}
}
