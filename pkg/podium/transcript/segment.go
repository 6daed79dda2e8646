package transcript

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// A sentence ends at .?! followed by whitespace and an uppercase letter.
// Lowercase continuations ("vs. the", "Mr. smith") do not split.
var sentenceBoundary = regexp.MustCompile(`[.?!]\s+[A-Z]`)

// Sentence punctuation is stripped from words entirely; the em-dash acts
// as a word separator in this corpus, unlike the hyphen-minus.
var wordSeparators = strings.NewReplacer(
	".", "", "?", "", ",", "", "!", "", ":", "", ";", "",
	"—", " ",
)

// Sentences splits clean paragraphs into sentences. Paragraph breaks are
// always sentence breaks; empty fragments are discarded.
func Sentences(paragraphs []string) []string {
	var out []string
	for _, p := range paragraphs {
		out = append(out, splitSentences(p)...)
	}
	return out
}

func splitSentences(text string) []string {
	var out []string
	start := 0
	for _, m := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// m[0] is the terminator byte, m[1] is just past the uppercase
		// letter that opens the next sentence. Both are single bytes.
		frag := strings.TrimSpace(text[start : m[0]+1])
		if frag != "" {
			out = append(out, frag)
		}
		start = m[1] - 1
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

// Words splits clean paragraphs into word tokens: sentence punctuation
// removed, em-dashes treated as whitespace, split on whitespace runs.
// Tokens keep their original casing, apostrophes, and hyphens.
func Words(paragraphs []string) []string {
	var out []string
	for _, p := range paragraphs {
		out = append(out, strings.Fields(wordSeparators.Replace(p))...)
	}
	return out
}

// Characters sums the rune count of each paragraph. Call it on cleaned
// paragraphs so annotations never contribute.
func Characters(paragraphs []string) int {
	total := 0
	for _, p := range paragraphs {
		total += utf8.RuneCountInString(p)
	}
	return total
}
