package transcript

// Clean removes every bracketed annotation from the body, paragraph by
// paragraph. Paragraph count and order are preserved. Idempotent: clean
// text contains no bracket patterns, so a second pass is a no-op.
func Clean(paragraphs []string) []string {
	if paragraphs == nil {
		return nil
	}
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = annotationPattern.ReplaceAllString(p, "")
	}
	return out
}
