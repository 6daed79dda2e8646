package transcript

import (
	"regexp"
	"strings"
)

// Bracketed fragments are stage directions, not spoken text. The lazy
// quantifier keeps adjacent brackets from collapsing into one match.
var annotationPattern = regexp.MustCompile(`\[.*?\]`)

// Annotation is a bracketed fragment lifted from a document body, such as
// "[Applause]". Text includes the brackets.
type Annotation struct {
	DocumentID string
	Text       string
}

// ExtractAnnotations returns every bracketed fragment in the body
// paragraphs, in encounter order. A body with no brackets yields nil.
func ExtractAnnotations(documentID string, paragraphs []string) []Annotation {
	var anns []Annotation
	for _, p := range paragraphs {
		for _, match := range annotationPattern.FindAllString(p, -1) {
			anns = append(anns, Annotation{
				DocumentID: documentID,
				Text:       match,
			})
		}
	}
	return anns
}

// CountOccurrences sums the times needle appears as a substring across all
// annotation texts. Case-sensitive; "[Laughter and applause]" counts once
// for "Laughter" and zero times for "Applause".
func CountOccurrences(anns []Annotation, needle string) int {
	if needle == "" {
		return 0
	}
	total := 0
	for _, a := range anns {
		total += strings.Count(a.Text, needle)
	}
	return total
}
