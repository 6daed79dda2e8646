package transcript

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	clean := []string{"The economy is strong.  We must act now."}
	got := Sentences(clean)

	want := []string{"The economy is strong.", "We must act now."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %q, want %q", got, want)
	}
}

func TestSentencesNoSplitOnLowercase(t *testing.T) {
	// Terminator followed by a lowercase letter is not a boundary.
	got := Sentences([]string{"We act now. and we act together. Then we rest."})

	want := []string{"We act now. and we act together.", "Then we rest."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %q, want %q", got, want)
	}
}

func TestSentencesQuestionAndExclamation(t *testing.T) {
	got := Sentences([]string{"Will we act? Yes! We will."})

	want := []string{"Will we act?", "Yes!", "We will."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %q, want %q", got, want)
	}
}

func TestSentencesParagraphBoundary(t *testing.T) {
	got := Sentences([]string{"First paragraph", "second paragraph."})

	want := []string{"First paragraph", "second paragraph."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %q, want %q", got, want)
	}
}

func TestSentencesEmpty(t *testing.T) {
	if got := Sentences([]string{"", "   "}); len(got) != 0 {
		t.Errorf("Expected no sentences, got %q", got)
	}
}

func TestWords(t *testing.T) {
	clean := []string{"The economy is strong.  We must act now."}
	got := Words(clean)

	want := []string{"The", "economy", "is", "strong", "We", "must", "act", "now"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestWordsEmDash(t *testing.T) {
	got := Words([]string{"freedom—and liberty"})

	want := []string{"freedom", "and", "liberty"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestWordsKeepsApostrophesAndHyphens(t *testing.T) {
	got := Words([]string{"We're a well-governed nation; truly."})

	want := []string{"We're", "a", "well-governed", "nation", "truly"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestWordsStripPunctuation(t *testing.T) {
	got := Words([]string{"one: two; three, four! five? six."})

	want := []string{"one", "two", "three", "four", "five", "six"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestWordsEmpty(t *testing.T) {
	if got := Words([]string{"", "  ", "—"}); len(got) != 0 {
		t.Errorf("Expected no words, got %q", got)
	}
}

func TestCharacters(t *testing.T) {
	got := Characters([]string{"abc", "de"})
	if got != 5 {
		t.Errorf("Characters = %d, want 5", got)
	}
}

func TestCharactersRunes(t *testing.T) {
	// Em-dash is one character, not its UTF-8 byte length.
	got := Characters([]string{"a—b"})
	if got != 3 {
		t.Errorf("Characters = %d, want 3", got)
	}
}
