// Package keyword counts configured pattern rules against a speech.
//
// Two rule kinds exist. Token rules match individual words and count
// qualifying tokens; the registry anchors their patterns so a token
// matches only as a whole word. Phrase rules match whole sentences and
// count non-overlapping occurrences, which is how multi-word targets like
// "God bless" are found regardless of word segmentation.
package keyword

import (
	"fmt"
	"regexp"

	"github.com/cognicore/podium/pkg/podium/internalerr"
)

// Kind distinguishes token rules from phrase rules.
type Kind int

const (
	// TokenRule matches against each word, whole-string.
	TokenRule Kind = iota
	// PhraseRule matches within each sentence, counted per occurrence.
	PhraseRule
)

// Rule is a (pattern, label) pair. Patterns are Go regular expressions;
// case folding only happens when the pattern encodes it.
type Rule struct {
	Label   string
	Pattern string
	Kind    Kind
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Registry holds an ordered list of compiled rules. Construction fails on
// the first bad pattern so misconfiguration surfaces before any document
// is processed.
type Registry struct {
	rules []compiledRule
}

// NewRegistry compiles the given rules in order.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{}
	for _, rule := range rules {
		if err := r.Add(rule); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add compiles and appends one rule. Token patterns are anchored to the
// whole token; a pattern can therefore never match a substring of a word.
func (r *Registry) Add(rule Rule) error {
	if rule.Label == "" {
		return fmt.Errorf("%w: rule with empty label", internalerr.ErrInvalidConfig)
	}
	pattern := rule.Pattern
	if rule.Kind == TokenRule {
		pattern = `\A(?:` + pattern + `)\z`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: rule %q: %v", internalerr.ErrInvalidConfig, rule.Label, err)
	}
	r.rules = append(r.rules, compiledRule{Rule: rule, re: re})
	return nil
}

// Len returns the number of configured rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Labels returns rule labels in registration order. This fixes the column
// order of tabular output.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.rules))
	for i, rule := range r.rules {
		labels[i] = rule.Label
	}
	return labels
}

// Tally counts every rule against one document's words and sentences.
// The result has exactly one entry per configured label, each >= 0.
func (r *Registry) Tally(words, sentences []string) map[string]int {
	counts := make(map[string]int, len(r.rules))
	for _, rule := range r.rules {
		switch rule.Kind {
		case TokenRule:
			n := 0
			for _, w := range words {
				if rule.re.MatchString(w) {
					n++
				}
			}
			counts[rule.Label] = n
		case PhraseRule:
			n := 0
			for _, s := range sentences {
				n += len(rule.re.FindAllStringIndex(s, -1))
			}
			counts[rule.Label] = n
		}
	}
	return counts
}
